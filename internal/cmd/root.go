// Package cmd implements the snips command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &options{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "snips",
		Short: "Keep markdown code blocks synchronized with source files",
		Long: "Snips scans markdown files for <!-- snips: path --> markers and keeps the\n" +
			"fenced code block below each marker synchronized with the referenced\n" +
			"source file, or with a named snips-start/snips-end region inside it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			opts.setup()
		},
	}

	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status output")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	root.PersistentFlags().StringArrayVar(&opts.exclude, "exclude", nil, "glob pattern of files to skip (repeatable)")

	root.AddCommand(renderCmd(opts), checkCmd(opts), diffCmd(opts), listCmd(opts))

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if errors.Is(err, errOutOfSync) {
			return 1
		}

		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}
