package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(hooksCmd)
}

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "List hooks in execution order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		hookList := env.registry.Hooks()
		if len(hookList) == 0 {
			fmt.Println("No hooks registered.")
			return nil
		}

		rows := make([][]string, 0, len(hookList))
		for _, hook := range hookList {
			rows = append(rows, []string{
				fmt.Sprintf("%d", hook.Order()),
				hook.Name(),
			})
		}
		return writeTable(os.Stdout, []string{"ORDER", "NAME"}, rows)
	},
}
