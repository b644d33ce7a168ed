package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of switches to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent theme switches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		jnl := env.openJournal()
		if jnl == nil {
			return fmt.Errorf("switch history unavailable")
		}
		defer jnl.Close()

		records, err := jnl.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No switches recorded yet.")
			return nil
		}

		rows := make([][]string, 0, len(records))
		for _, rec := range records {
			failed := "-"
			if len(rec.Failed) > 0 {
				failed = strings.Join(rec.Failed, ",")
			}
			rows = append(rows, []string{
				rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
				rec.Theme,
				fmt.Sprintf("%d", len(rec.Applied)),
				failed,
				rec.Duration.Round(time.Millisecond).String(),
			})
		}
		return writeTable(os.Stdout, []string{"WHEN", "THEME", "APPLIED", "FAILED", "DURATION"}, rows)
	},
}
