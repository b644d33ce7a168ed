package hooks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cruzalex/shade/internal/contrast"
	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/theme"
)

// WaybarHook generates the status bar's color definitions at
// ~/.config/waybar/colors.css and signals waybar with SIGUSR2 to reload
// its stylesheet. Accent-colored segments get a contrast-checked
// foreground so text stays legible whatever the theme's accent is.
type WaybarHook struct {
	Controller proc.Controller
}

func (WaybarHook) Name() string { return "waybar" }
func (WaybarHook) Order() int   { return 30 }

func (h WaybarHook) Apply(_ context.Context, ec Context, pal palette.Palette) error {
	dst := filepath.Join(ec.ConfigHome, "waybar", "colors.css")

	var err error
	if fragment := theme.Fragment(ec.ThemeDir, "waybar.css"); fragment != "" {
		err = copyFile(fragment, dst, 0o644)
	} else {
		err = writeFileIfChanged(dst, []byte(waybarTheme(pal)), 0o644)
	}
	if err != nil {
		return err
	}

	h.reload()
	return nil
}

func (h WaybarHook) reload() {
	if h.Controller == nil {
		return
	}
	logger := logging.Component("waybar")
	for _, pid := range h.Controller.Find("waybar") {
		if err := h.Controller.Signal(pid, syscall.SIGUSR2); err != nil {
			logger.Debug().Err(err).Int("pid", pid).Msg("reload signal failed")
		}
	}
}

func waybarTheme(pal palette.Palette) string {
	var b strings.Builder
	define := func(name, value string) {
		fmt.Fprintf(&b, "@define-color %s %s;\n", name, value)
	}
	define("foreground", pal.Foreground)
	define("background", pal.Background)
	define("accent", pal.Accent)
	define("accent-foreground", contrast.ContrastingForeground(pal.Accent))
	define("warning", pal.ANSI[3])
	define("warning-foreground", contrast.ContrastingForeground(pal.ANSI[3]))
	define("critical", pal.ANSI[1])
	define("critical-foreground", contrast.ContrastingForeground(pal.ANSI[1]))
	define("muted", contrast.Darken(pal.Foreground, 40))
	for i, color := range pal.ANSI {
		define(fmt.Sprintf("color%d", i), color)
	}
	return b.String()
}
