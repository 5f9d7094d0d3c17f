package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"plugvault/internal/report"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plain-text catalog export",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.ensureCatalog(cmd.Context())
			if err != nil {
				return err
			}
			rendered := report.RenderCatalog(cat.Records)

			target := strings.TrimSpace(output)
			if target == "" {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			if err := os.WriteFile(target, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote catalog export to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the export to this file instead of stdout")
	return cmd
}
