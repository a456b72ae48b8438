package cmd

import (
	"errors"
	"fmt"

	"github.com/cortesi/snips/internal/snips"
	"github.com/spf13/cobra"
)

// errOutOfSync signals the exit-1 path of check mode; it is never printed.
var errOutOfSync = errors.New("files out of sync")

func renderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "render [files...]",
		Aliases: []string{"r"},
		Short:   "Update fenced code blocks in place",
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := syncRun(opts, args, true)

			return err
		},
	}
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "check [files...]",
		Aliases: []string{"c"},
		Short:   "Report stale code blocks without writing",
		RunE: func(_ *cobra.Command, args []string) error {
			stale, err := syncRun(opts, args, false)
			if err != nil {
				return err
			}

			if stale {
				return errOutOfSync
			}

			return nil
		},
	}
}

// syncRun drives render and check: the same scan, differing only in
// whether updated documents are written back. Returns whether any
// marker's content was stale. Byte-only normalization (marker
// whitespace, fence length) is written by render but never counts as
// stale, keeping check's exit code in agreement with diff.
func syncRun(opts *options, args []string, write bool) (bool, error) {
	files, err := resolveFiles(args, opts.exclude)
	if err != nil {
		return false, err
	}

	stale := false

	for _, path := range files {
		opts.log.Debug().Str("file", path).Bool("write", write).Msg("processing")

		outcome, err := snips.RenderFile(path, write, snips.OS)
		if err != nil {
			return false, err
		}

		for _, report := range outcome.Reports {
			if report.Updated {
				stale = true
			}
		}

		if opts.quiet {
			continue
		}

		fmt.Fprintln(opts.stdout, fileColor.Sprint(path))

		if len(outcome.Reports) == 0 {
			fmt.Fprintf(opts.stdout, "  %s\n", noneColor.Sprint("(no snippets found)"))

			continue
		}

		for _, report := range outcome.Reports {
			fmt.Fprintf(opts.stdout, "  %s %s\n", bulletColor.Sprint("↳"), markerStatus(report, write))
		}
	}

	return stale, nil
}

func markerStatus(report snips.Report, write bool) string {
	marker := report.Locator.Marker()

	switch {
	case report.Updated && write:
		return updatedColor.Sprint(marker) + " [updated]"
	case report.Updated:
		return staleColor.Sprint(marker) + " [out of sync]"
	default:
		return dimColor.Sprint(marker)
	}
}
