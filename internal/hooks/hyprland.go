package hooks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cruzalex/shade/internal/contrast"
	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/theme"
)

// HyprlandHook writes the window manager's border colors to
// ~/.config/hypr/colors.conf (sourced from the main hyprland.conf) and
// asks a running compositor to reload. It runs late in the pipeline so
// the visible window-chrome change lands after terminals and the bar are
// already consistent.
type HyprlandHook struct {
	Runner proc.Runner

	// ReloadTimeout bounds the hyprctl invocation separately from the
	// hook timeout. Zero means no extra bound.
	ReloadTimeout time.Duration
}

func (HyprlandHook) Name() string { return "hyprland" }
func (HyprlandHook) Order() int   { return 70 }

func (h HyprlandHook) Apply(ctx context.Context, ec Context, pal palette.Palette) error {
	dst := filepath.Join(ec.ConfigHome, "hypr", "colors.conf")

	var err error
	if fragment := theme.Fragment(ec.ThemeDir, "hyprland.conf"); fragment != "" {
		err = copyFile(fragment, dst, 0o644)
	} else {
		err = writeFileIfChanged(dst, []byte(hyprlandTheme(pal)), 0o644)
	}
	if err != nil {
		return err
	}

	if h.Runner != nil {
		reloadCtx, cancel := reloadContext(ctx, h.ReloadTimeout)
		defer cancel()
		if err := h.Runner.Run(reloadCtx, nil, "hyprctl", "reload"); err != nil {
			logger := logging.Component("hyprland")
			logger.Debug().Err(err).Msg("reload failed, config applies on next start")
		}
	}
	return nil
}

func hyprlandTheme(pal palette.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "general {\n")
	fmt.Fprintf(&b, "    col.active_border = rgb(%s)\n", hyprColor(pal.Accent))
	fmt.Fprintf(&b, "    col.inactive_border = rgb(%s)\n", hyprColor(contrast.Darken(pal.Accent, 50)))
	fmt.Fprintf(&b, "}\n\n")
	fmt.Fprintf(&b, "decoration {\n")
	fmt.Fprintf(&b, "    shadow {\n")
	fmt.Fprintf(&b, "        color = rgb(%s)\n", hyprColor(contrast.Darken(pal.Background, 30)))
	fmt.Fprintf(&b, "    }\n")
	fmt.Fprintf(&b, "}\n")
	return b.String()
}

// hyprColor strips the leading # since hyprland writes rgb(rrggbb).
func hyprColor(hex string) string {
	return strings.TrimPrefix(hex, "#")
}
