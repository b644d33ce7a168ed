package hooks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
)

// MakoHook recolors the notification daemon by mutating named keys of
// ~/.config/mako/config in place. The rest of the user's configuration is
// preserved byte for byte; a missing config file is created with just the
// color keys. Reload goes through makoctl and is best-effort.
type MakoHook struct {
	Runner proc.Runner

	// ReloadTimeout bounds the makoctl invocation separately from the
	// hook timeout. Zero means no extra bound.
	ReloadTimeout time.Duration
}

func (MakoHook) Name() string { return "mako" }
func (MakoHook) Order() int   { return 40 }

func (h MakoHook) Apply(ctx context.Context, ec Context, pal palette.Palette) error {
	path := filepath.Join(ec.ConfigHome, "mako", "config")

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	doc := parseConfDoc(string(existing))
	doc.Set("background-color", pal.Background)
	doc.Set("text-color", pal.Foreground)
	doc.Set("border-color", pal.Accent)
	doc.Set("progress-color", "over "+pal.Accent)

	if err := writeFileIfChanged(path, []byte(doc.String()), 0o644); err != nil {
		return err
	}

	if h.Runner != nil {
		reloadCtx, cancel := reloadContext(ctx, h.ReloadTimeout)
		defer cancel()
		if err := h.Runner.Run(reloadCtx, nil, "makoctl", "reload"); err != nil {
			logger := logging.Component("mako")
			logger.Debug().Err(err).Msg("reload failed, config applies on next start")
		}
	}
	return nil
}
