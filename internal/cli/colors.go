package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/theme"
)

func init() {
	rootCmd.AddCommand(colorsCmd)
}

var colorsCmd = &cobra.Command{
	Use:   "colors [theme]",
	Short: "Show a theme's resolved palette",
	Long: `Show the fully resolved palette of a theme (the active theme when
none is given), including every default filled in for keys the theme
does not define.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		} else {
			name = theme.Current(env.cfg.ConfigDir)
			if name == "" {
				name = env.store.Theme()
			}
		}
		if name == "" {
			return fmt.Errorf("no theme applied yet; pass a theme name")
		}

		themeDir, err := theme.Dir(env.cfg.ThemesRoot, name)
		if err != nil {
			return err
		}
		pal := palette.Resolve(themeDir)

		fmt.Printf("Palette for %q\n\n", name)
		printColor("foreground", pal.Foreground)
		printColor("background", pal.Background)
		printColor("accent", pal.Accent)
		printColor("cursor", pal.Cursor)
		printColor("selection_background", pal.SelectionBackground)
		printColor("selection_foreground", pal.SelectionForeground)
		for i, color := range pal.ANSI {
			printColor(fmt.Sprintf("color%d", i), color)
		}
		return nil
	},
}

// printColor renders one palette entry, with a colored swatch on a TTY.
func printColor(name, hex string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("%-22s %s\n", name, hex)
		return
	}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", 6))
	fmt.Printf("%-22s %s %s\n", name, hex, swatch)
}
