// Package palette resolves a theme's color palette from its colors.toml.
package palette

// Palette is the fully resolved set of named colors for one theme.
// Every field is always populated: resolution fills anything the theme
// source leaves out with the documented defaults.
type Palette struct {
	Foreground          string
	Background          string
	Accent              string
	Cursor              string
	SelectionBackground string
	SelectionForeground string

	// ANSI holds the 16 indexed terminal colors, slots 0-15.
	ANSI [16]string
}

// Default returns the built-in palette used for every field a theme does
// not define. It is a neutral dark scheme so a broken theme still produces
// a usable look.
func Default() Palette {
	return Palette{
		Foreground:          "#c0caf5",
		Background:          "#1a1b26",
		Accent:              "#7aa2f7",
		Cursor:              "#c0caf5",
		SelectionBackground: "#33467c",
		SelectionForeground: "#c0caf5",
		ANSI: [16]string{
			"#15161e", "#f7768e", "#9ece6a", "#e0af68",
			"#7aa2f7", "#bb9af7", "#7dcfff", "#a9b1d6",
			"#414868", "#f7768e", "#9ece6a", "#e0af68",
			"#7aa2f7", "#bb9af7", "#7dcfff", "#c0caf5",
		},
	}
}
