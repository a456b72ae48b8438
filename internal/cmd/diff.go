package cmd

import (
	"fmt"
	"io"

	"github.com/cortesi/snips/internal/snips"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

func diffCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "diff [files...]",
		Aliases: []string{"d"},
		Short:   "Show differences between embedded and current content",
		RunE: func(_ *cobra.Command, args []string) error {
			files, err := resolveFiles(args, opts.exclude)
			if err != nil {
				return err
			}

			for _, path := range files {
				opts.log.Debug().Str("file", path).Msg("diffing")

				entries, err := snips.DiffFile(path, snips.OS)
				if err != nil {
					return err
				}

				for _, entry := range entries {
					if err := printDiff(opts.stdout, entry); err != nil {
						return err
					}
				}
			}

			return nil
		},
	}
}

func printDiff(w io.Writer, entry snips.DiffEntry) error {
	name := entry.Path
	if entry.Name != "" {
		name += "#" + entry.Name
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(entry.Old),
		B:        difflib.SplitLines(entry.New),
		FromFile: name,
		ToFile:   name,
		Context:  3,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(w, text)
	fmt.Fprintln(w)

	return nil
}
