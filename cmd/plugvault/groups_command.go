package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plugvault/internal/catalog"
)

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List plugins grouped by manufacturer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog(cmd.Context())
			if err != nil {
				return err
			}
			groups := catalog.GroupByManufacturer(cat.Records)

			if asJSON {
				type jsonGroup struct {
					Manufacturer string          `json:"manufacturer"`
					Plugins      []pluginListing `json:"plugins"`
				}
				payload := make([]jsonGroup, 0, len(groups))
				for _, group := range groups {
					listings := make([]pluginListing, 0, len(group.Records))
					for _, rec := range group.Records {
						listings = append(listings, newPluginListing(rec))
					}
					payload = append(payload, jsonGroup{Manufacturer: group.Manufacturer, Plugins: listings})
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No plugins found")
				return nil
			}
			for _, group := range groups {
				fmt.Fprintf(out, "%s (%s)\n", group.Manufacturer, pluralize(len(group.Records), "plugin"))
				for _, rec := range group.Records {
					fmt.Fprintf(out, "  %s [%s]\n", rec.Name, rec.FormatLabel())
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}
