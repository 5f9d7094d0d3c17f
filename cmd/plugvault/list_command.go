package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plugvault/internal/plugin"
)

type pluginListing struct {
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Version      string   `json:"version,omitempty"`
	Formats      []string `json:"formats"`
	Paths        []string `json:"paths"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var filters filterOptions
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog(cmd.Context())
			if err != nil {
				return err
			}
			records, err := filters.apply(cat.Records)
			if err != nil {
				return err
			}

			if asJSON {
				listings := make([]pluginListing, 0, len(records))
				for _, rec := range records {
					listings = append(listings, newPluginListing(rec))
				}
				return writeJSON(cmd, listings)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No plugins matched")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.Name,
					rec.FormatLabel(),
					rec.Manufacturer,
					rec.Version,
					sizeLabel(rec),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Formats", "Manufacturer", "Version", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintln(out, pluralize(len(records), "plugin"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filters.format, "format", "f", "", "Only plugins installed in this format (vst2, vst3, au, clap)")
	cmd.Flags().BoolVarP(&filters.multi, "multi", "m", false, "Only plugins installed in more than one format")
	cmd.Flags().StringVarP(&filters.search, "search", "s", "", "Only plugins whose name contains this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newPluginListing(rec *plugin.Record) pluginListing {
	formats := rec.Formats()
	labels := make([]string, 0, len(formats))
	for _, f := range formats {
		labels = append(labels, f.String())
	}
	return pluginListing{
		Name:         rec.Name,
		Manufacturer: rec.Manufacturer,
		Version:      rec.Version,
		Formats:      labels,
		Paths:        rec.Paths(),
	}
}
