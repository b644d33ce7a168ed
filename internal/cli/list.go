package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cruzalex/shade/internal/theme"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(currentCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		themes, err := theme.List(env.cfg.ThemesRoot)
		if err != nil {
			return err
		}
		if len(themes) == 0 {
			fmt.Printf("No themes installed under %s\n", env.cfg.ThemesRoot)
			return nil
		}

		active := theme.Current(env.cfg.ConfigDir)
		rows := make([][]string, 0, len(themes))
		for _, th := range themes {
			marker := ""
			if th.Name == active {
				marker = "*"
			}
			mode := "dark"
			if th.Light {
				mode = "light"
			}
			rows = append(rows, []string{
				marker, th.Name, th.DisplayName, mode, strconv.Itoa(len(th.Wallpapers)),
			})
		}
		return writeTable(os.Stdout, []string{"", "NAME", "DISPLAY NAME", "MODE", "WALLPAPERS"}, rows)
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the active theme name",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		name := theme.Current(env.cfg.ConfigDir)
		if name == "" {
			// Fall back to the durable state for a broken link.
			name = env.store.Theme()
		}
		if name == "" {
			return fmt.Errorf("no theme applied yet")
		}
		fmt.Println(name)
		return nil
	},
}
