package hooks

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/theme"
)

// AlacrittyHook installs the terminal color scheme at
// ~/.config/alacritty/theme.toml. A native alacritty.toml fragment shipped
// by the theme is preferred; otherwise the file is synthesized from the
// palette. Alacritty watches its config files, so no reload signal is
// needed.
type AlacrittyHook struct{}

func (AlacrittyHook) Name() string { return "alacritty" }
func (AlacrittyHook) Order() int   { return 20 }

func (AlacrittyHook) Apply(_ context.Context, ec Context, pal palette.Palette) error {
	dst := filepath.Join(ec.ConfigHome, "alacritty", "theme.toml")

	if fragment := theme.Fragment(ec.ThemeDir, "alacritty.toml"); fragment != "" {
		return copyFile(fragment, dst, 0o644)
	}

	data, err := alacrittyTheme(pal)
	if err != nil {
		return err
	}
	return writeFileIfChanged(dst, data, 0o644)
}

// alacrittyColors mirrors alacritty's [colors] schema.
type alacrittyColors struct {
	Colors struct {
		Primary struct {
			Foreground string `toml:"foreground"`
			Background string `toml:"background"`
		} `toml:"primary"`
		Cursor struct {
			Text   string `toml:"text"`
			Cursor string `toml:"cursor"`
		} `toml:"cursor"`
		Selection struct {
			Text       string `toml:"text"`
			Background string `toml:"background"`
		} `toml:"selection"`
		Normal map[string]string `toml:"normal"`
		Bright map[string]string `toml:"bright"`
	} `toml:"colors"`
}

var ansiNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func alacrittyTheme(pal palette.Palette) ([]byte, error) {
	var scheme alacrittyColors
	scheme.Colors.Primary.Foreground = pal.Foreground
	scheme.Colors.Primary.Background = pal.Background
	scheme.Colors.Cursor.Text = pal.Background
	scheme.Colors.Cursor.Cursor = pal.Cursor
	scheme.Colors.Selection.Text = pal.SelectionForeground
	scheme.Colors.Selection.Background = pal.SelectionBackground
	scheme.Colors.Normal = make(map[string]string, 8)
	scheme.Colors.Bright = make(map[string]string, 8)
	for i, name := range ansiNames {
		scheme.Colors.Normal[name] = pal.ANSI[i]
		scheme.Colors.Bright[name] = pal.ANSI[i+8]
	}

	data, err := toml.Marshal(scheme)
	if err != nil {
		return nil, fmt.Errorf("marshal alacritty theme: %w", err)
	}
	return data, nil
}
