package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"plugvault/internal/catalog"
	"plugvault/internal/plugin"
)

// parseFormat maps user-facing format spellings onto a plugin format. The
// empty string means no filter.
func parseFormat(value string) (plugin.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return "", nil
	case "vst", "vst2":
		return plugin.FormatVST2, nil
	case "vst3":
		return plugin.FormatVST3, nil
	case "au", "audio-unit", "component":
		return plugin.FormatAU, nil
	case "clap":
		return plugin.FormatCLAP, nil
	default:
		return "", fmt.Errorf("unknown plugin format %q (expected vst2, vst3, au, or clap)", value)
	}
}

// filterOptions are the record selectors shared by list, backup, and remove.
type filterOptions struct {
	format string
	multi  bool
	search string
}

func (o filterOptions) apply(records []*plugin.Record) ([]*plugin.Record, error) {
	format, err := parseFormat(o.format)
	if err != nil {
		return nil, err
	}
	out := catalog.FilterByFormat(records, format)
	if o.multi {
		out = catalog.MultiFormat(out)
	}
	return catalog.Search(out, o.search), nil
}

func sizeLabel(rec *plugin.Record) string {
	return humanize.IBytes(uint64(rec.TotalSize()))
}

// confirm prompts on stdout and reads a single line from the command's
// stdin. Anything other than y or yes declines.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func pluralize(count int, singular string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %ss", count, singular)
}
