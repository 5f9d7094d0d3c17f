package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"plugvault/internal/ops"
	"plugvault/internal/plugin"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var filters filterOptions
	var permanent bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <plugin> [plugin ...]",
		Short: "Remove plugins, moving them to the trash directory by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && filters.search == "" && filters.format == "" && !filters.multi {
				return errors.New("name at least one plugin or pass --search, --format, or --multi")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cat, err := ctx.ensureCatalog(cmd.Context())
			if err != nil {
				return err
			}
			records, err := selectRecords(cat, args, filters)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plugins matched")
				return nil
			}

			mode := ops.ModeTrash
			if permanent || cfg.Removal.Permanent {
				mode = ops.ModePermanent
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Removing %s (%s):\n", pluralize(len(records), "plugin"), mode)
			for _, rec := range records {
				fmt.Fprintf(out, "  %s [%s]\n", rec.Name, rec.FormatLabel())
			}
			if !yes && !confirm(cmd, "Continue?") {
				fmt.Fprintln(out, "Aborted")
				return nil
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			progress := func(processed, total int, rec *plugin.Record) {
				fmt.Fprintf(out, "[%d/%d] %s\n", processed, total, rec.Name)
			}

			result := ops.NewRemover(cfg.Paths.TrashDir, logger).Remove(cmd.Context(), records, mode, progress)
			if !result.Succeeded() {
				reportItemFailures(cmd, result.Items)
				return errors.New("removal finished with errors")
			}
			fmt.Fprintf(out, "Removed %s\n", pluralize(len(records), "plugin"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&permanent, "permanent", false, "Delete outright instead of moving to the trash directory")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVarP(&filters.format, "format", "f", "", "Only plugins installed in this format (vst2, vst3, au, clap)")
	cmd.Flags().BoolVarP(&filters.multi, "multi", "m", false, "Only plugins installed in more than one format")
	cmd.Flags().StringVarP(&filters.search, "search", "s", "", "Only plugins whose name contains this text")
	return cmd
}
