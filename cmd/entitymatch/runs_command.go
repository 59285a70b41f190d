package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"entitymatch/internal/runs"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show past enrichment runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := runs.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			history, err := store.List(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(history))
			for _, run := range history {
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.InputPath,
					strconv.Itoa(run.Total),
					strconv.Itoa(run.Matched),
					fmt.Sprintf("%.1f%%", 100*run.MatchRate()),
					run.Duration().Round(time.Second).String(),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Input", "Rows", "Matched", "Rate", "Duration"},
				rows, 2, 3, 4, 5))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum runs to show (0 for all)")
	return cmd
}
