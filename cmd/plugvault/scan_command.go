package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"plugvault/internal/logging"
	"plugvault/internal/plugin"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan plugin directories and rebuild the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog(cmd.Context())
			if err != nil {
				return err
			}

			if !noHistory {
				if err := recordScanHistory(ctx, cmd, cat); err != nil {
					return err
				}
			}

			counts := cat.FormatCounts()
			rows := make([][]string, 0, len(plugin.AllFormats())+1)
			for _, format := range plugin.AllFormats() {
				rows = append(rows, []string{format.String(), strconv.Itoa(counts[format])})
			}
			rows = append(rows, []string{"Total plugins", strconv.Itoa(len(cat.Records))})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %s across %s\n",
				pluralize(len(cat.Records), "plugin"), pluralize(len(cat.Roots), "scan root"))
			fmt.Fprintln(out, renderTable(
				[]string{"Format", "Installed"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this scan in the history database")
	return cmd
}

func recordScanHistory(ctx *commandContext, cmd *cobra.Command, cat *plugin.Catalog) error {
	history, err := ctx.openHistory()
	if err != nil {
		return fmt.Errorf("open scan history: %w", err)
	}
	defer history.Close()

	if _, err := history.RecordScan(cmd.Context(), cat); err != nil {
		if logger, logErr := ctx.ensureLogger(); logErr == nil {
			logger.Warn("record scan history", logging.Error(err))
		}
		return fmt.Errorf("record scan history: %w", err)
	}
	return nil
}
