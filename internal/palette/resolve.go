package palette

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/cruzalex/shade/internal/contrast"
	"github.com/cruzalex/shade/internal/logging"
)

// source mirrors the colors.toml schema: flat string assignments, every
// key optional. Unknown keys are ignored by the decoder.
type source struct {
	Foreground          *string `toml:"foreground"`
	Background          *string `toml:"background"`
	Accent              *string `toml:"accent"`
	Cursor              *string `toml:"cursor"`
	SelectionBackground *string `toml:"selection_background"`
	SelectionForeground *string `toml:"selection_foreground"`
	Color0              *string `toml:"color0"`
	Color1              *string `toml:"color1"`
	Color2              *string `toml:"color2"`
	Color3              *string `toml:"color3"`
	Color4              *string `toml:"color4"`
	Color5              *string `toml:"color5"`
	Color6              *string `toml:"color6"`
	Color7              *string `toml:"color7"`
	Color8              *string `toml:"color8"`
	Color9              *string `toml:"color9"`
	Color10             *string `toml:"color10"`
	Color11             *string `toml:"color11"`
	Color12             *string `toml:"color12"`
	Color13             *string `toml:"color13"`
	Color14             *string `toml:"color14"`
	Color15             *string `toml:"color15"`
}

// Resolve loads the palette for a theme directory. It never fails: a
// missing or unparseable colors.toml, or any individual key that is absent
// or not a valid hex color, resolves to the documented default for that
// key. Worst case the result is exactly Default().
func Resolve(themeDir string) Palette {
	logger := logging.Component("palette")
	pal := Default()

	path := filepath.Join(themeDir, "colors.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("palette source unreadable, using defaults")
		}
		return pal
	}

	var src source
	if err := toml.Unmarshal(data, &src); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("palette source unparseable, using defaults")
		return pal
	}

	apply(&pal.Foreground, src.Foreground)
	apply(&pal.Background, src.Background)
	apply(&pal.Accent, src.Accent)
	apply(&pal.Cursor, src.Cursor)
	apply(&pal.SelectionBackground, src.SelectionBackground)
	apply(&pal.SelectionForeground, src.SelectionForeground)

	indexed := []*string{
		src.Color0, src.Color1, src.Color2, src.Color3,
		src.Color4, src.Color5, src.Color6, src.Color7,
		src.Color8, src.Color9, src.Color10, src.Color11,
		src.Color12, src.Color13, src.Color14, src.Color15,
	}
	for i, value := range indexed {
		apply(&pal.ANSI[i], value)
	}

	return pal
}

// apply overwrites dst when value parses as a hex color, normalizing to
// lowercase #rrggbb form.
func apply(dst *string, value *string) {
	if value == nil {
		return
	}
	r, g, b, err := contrast.ParseHex(*value)
	if err != nil {
		return
	}
	*dst = contrast.FormatHex(r, g, b)
}

// Shell renders the palette as shell variable assignments, one per line,
// for consumption by prompt and script collaborators.
func (p Palette) Shell() string {
	out := fmt.Sprintf("SHADE_FOREGROUND=%q\n", p.Foreground)
	out += fmt.Sprintf("SHADE_BACKGROUND=%q\n", p.Background)
	out += fmt.Sprintf("SHADE_ACCENT=%q\n", p.Accent)
	out += fmt.Sprintf("SHADE_CURSOR=%q\n", p.Cursor)
	out += fmt.Sprintf("SHADE_SELECTION_BACKGROUND=%q\n", p.SelectionBackground)
	out += fmt.Sprintf("SHADE_SELECTION_FOREGROUND=%q\n", p.SelectionForeground)
	for i, color := range p.ANSI {
		out += fmt.Sprintf("SHADE_COLOR%d=%q\n", i, color)
	}
	return out
}
