package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <plugin>",
		Short: "Show details for one plugin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog(cmd.Context())
			if err != nil {
				return err
			}
			rec, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("no plugin named %q", args[0])
			}

			if asJSON {
				return writeJSON(cmd, newPluginListing(rec))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:         %s\n", rec.Name)
			manufacturer := rec.Manufacturer
			if manufacturer == "" {
				manufacturer = "(unknown)"
			}
			fmt.Fprintf(out, "Manufacturer: %s\n", manufacturer)
			if rec.Version != "" {
				fmt.Fprintf(out, "Version:      %s\n", rec.Version)
			}
			fmt.Fprintf(out, "Formats:      %s\n", rec.FormatLabel())
			fmt.Fprintf(out, "Multi-format: %s\n", yesNo(rec.FormatCount() > 1))
			fmt.Fprintf(out, "Size:         %s\n", sizeLabel(rec))
			fmt.Fprintln(out, "Locations:")
			for _, format := range rec.Formats() {
				if path, ok := rec.PathForFormat(format); ok {
					fmt.Fprintf(out, "  %s: %s\n", format, path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}
