package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/orchestrator"
)

func init() {
	bgCmd.AddCommand(bgNextCmd)
	rootCmd.AddCommand(bgCmd)
}

var bgCmd = &cobra.Command{
	Use:   "bg",
	Short: "Manage the active theme's wallpaper rotation",
}

var bgNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance to the next wallpaper of the active theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.Component("cli")

		env, err := buildEnv()
		if err != nil {
			return err
		}

		rot := orchestrator.NewRotator(env.cfg, env.store, env.renderer)
		wallpaper, err := rot.Next()
		if err != nil {
			if errors.Is(err, orchestrator.ErrNoActiveTheme) {
				return fmt.Errorf("no theme applied yet; run 'shade set' first")
			}
			if errors.Is(err, orchestrator.ErrNoWallpapers) {
				return fmt.Errorf("active theme has no wallpapers")
			}
			return err
		}

		log.Debug().Str("wallpaper", wallpaper).Msg("wallpaper advanced")
		fmt.Println(wallpaper)
		return nil
	},
}
