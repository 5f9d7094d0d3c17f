package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"plugvault/internal/plugin"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scan summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open scan history: %w", err)
			}
			defer history.Close()

			summaries, err := history.ListScans(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No scans recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(summaries))
			for _, summary := range summaries {
				rows = append(rows, []string{
					strconv.FormatInt(summary.ID, 10),
					summary.ScannedAt.Local().Format("2006-01-02 15:04:05"),
					strconv.Itoa(summary.Total),
					strconv.Itoa(summary.ByFormat[plugin.FormatVST2]),
					strconv.Itoa(summary.ByFormat[plugin.FormatVST3]),
					strconv.Itoa(summary.ByFormat[plugin.FormatAU]),
					strconv.Itoa(summary.ByFormat[plugin.FormatCLAP]),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Scanned", "Total", "VST2", "VST3", "AU", "CLAP"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of scans to show (0 for all)")
	return cmd
}
