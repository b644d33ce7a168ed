package hooks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/theme"
)

// KittyHook installs ~/.config/kitty/theme.conf, preferring a native
// kitty.conf fragment, then signals running kitty processes with SIGUSR1
// so they re-read their configuration. The signal is best-effort: kitty
// picks the file up on next launch regardless.
type KittyHook struct {
	Controller proc.Controller
}

func (KittyHook) Name() string { return "kitty" }
func (KittyHook) Order() int   { return 25 }

func (h KittyHook) Apply(_ context.Context, ec Context, pal palette.Palette) error {
	dst := filepath.Join(ec.ConfigHome, "kitty", "theme.conf")

	var err error
	if fragment := theme.Fragment(ec.ThemeDir, "kitty.conf"); fragment != "" {
		err = copyFile(fragment, dst, 0o644)
	} else {
		err = writeFileIfChanged(dst, []byte(kittyTheme(pal)), 0o644)
	}
	if err != nil {
		return err
	}

	h.reload()
	return nil
}

func (h KittyHook) reload() {
	if h.Controller == nil {
		return
	}
	logger := logging.Component("kitty")
	for _, pid := range h.Controller.Find("kitty") {
		if err := h.Controller.Signal(pid, syscall.SIGUSR1); err != nil {
			logger.Debug().Err(err).Int("pid", pid).Msg("reload signal failed")
		}
	}
}

func kittyTheme(pal palette.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "foreground %s\n", pal.Foreground)
	fmt.Fprintf(&b, "background %s\n", pal.Background)
	fmt.Fprintf(&b, "cursor %s\n", pal.Cursor)
	fmt.Fprintf(&b, "selection_foreground %s\n", pal.SelectionForeground)
	fmt.Fprintf(&b, "selection_background %s\n", pal.SelectionBackground)
	for i, color := range pal.ANSI {
		fmt.Fprintf(&b, "color%d %s\n", i, color)
	}
	return b.String()
}
