package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plugvault/internal/ops"
	"plugvault/internal/plugin"
)

func newBackupCommand(ctx *commandContext) *cobra.Command {
	var filters filterOptions
	var dest string

	cmd := &cobra.Command{
		Use:   "backup [plugin ...]",
		Short: "Copy plugins into a timestamped backup directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			destDir := strings.TrimSpace(dest)
			if destDir == "" {
				destDir = cfg.Backup.DestinationDir
			}
			if destDir == "" {
				return errors.New("no backup destination configured (set backup.destination_dir or pass --dest)")
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

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			progress := func(processed, total int, rec *plugin.Record) {
				fmt.Fprintf(out, "[%d/%d] %s\n", processed, total, rec.Name)
			}

			result, err := ops.NewBackuper(logger).Backup(cmd.Context(), records, destDir, progress)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Backup written to %s\n", result.Dir)
			fmt.Fprintf(out, "Manifest: %s\n", result.ManifestPath)
			if !result.Succeeded() {
				reportItemFailures(cmd, result.Items)
				return errors.New("backup finished with errors")
			}
			fmt.Fprintf(out, "Backed up %s\n", pluralize(len(records), "plugin"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", "", "Backup destination directory (overrides configuration)")
	cmd.Flags().StringVarP(&filters.format, "format", "f", "", "Only plugins installed in this format (vst2, vst3, au, clap)")
	cmd.Flags().BoolVarP(&filters.multi, "multi", "m", false, "Only plugins installed in more than one format")
	cmd.Flags().StringVarP(&filters.search, "search", "s", "", "Only plugins whose name contains this text")
	return cmd
}

// selectRecords resolves the operation target set: explicit names when given,
// the filtered catalog otherwise. Unknown names fail the whole command rather
// than silently shrinking the set.
func selectRecords(cat *plugin.Catalog, names []string, filters filterOptions) ([]*plugin.Record, error) {
	if len(names) > 0 {
		records := make([]*plugin.Record, 0, len(names))
		for _, name := range names {
			rec, ok := cat.Find(name)
			if !ok {
				return nil, fmt.Errorf("no plugin named %q", name)
			}
			records = append(records, rec)
		}
		return records, nil
	}
	return filters.apply(cat.Records)
}

func reportItemFailures(cmd *cobra.Command, items []ops.ItemResult) {
	out := cmd.OutOrStdout()
	for _, item := range items {
		if item.Err != nil {
			fmt.Fprintf(out, "  failed: %s: %v\n", item.Record.Name, item.Err)
		}
	}
}
