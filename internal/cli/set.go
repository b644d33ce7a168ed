package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cruzalex/shade/internal/orchestrator"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Apply a theme to all configured applications",
	Long: `Apply the named theme: resolve its palette, run every hook in
order, and record the result. Individual hook failures are reported but
never abort the switch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		jnl := env.openJournal()
		if jnl != nil {
			defer jnl.Close()
		}

		o := orchestrator.New(env.cfg, env.registry, env.store, jnl)
		result, err := o.Switch(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Theme %q applied (%d hooks", result.Theme, len(result.Applied))
		if len(result.Failed) > 0 {
			fmt.Printf(", %d failed", len(result.Failed))
		}
		fmt.Println(")")

		for _, failure := range result.Failed {
			fmt.Fprintf(os.Stderr, "  hook %s: %v\n", failure.Hook, failure.Err)
		}
		return nil
	},
}
