package cmd

import (
	"fmt"
	"strings"

	"github.com/cortesi/snips/internal/fence"
	"github.com/cortesi/snips/internal/snips"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list [files...]",
		Aliases: []string{"ls"},
		Short:   "List fenced code blocks and their snips sources",
		RunE: func(_ *cobra.Command, args []string) error {
			files, err := resolveFiles(args, opts.exclude)
			if err != nil {
				return err
			}

			tbl := table.New("FILE", "LINES", "LANG", "SOURCE", "BYTES").WithWriter(opts.stdout)

			for _, path := range files {
				doc, err := snips.ReadDocument(path, snips.OS)
				if err != nil {
					return err
				}

				blocks, err := fence.Scan(doc)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				lines := strings.Split(string(doc), "\n")

				for _, block := range blocks {
					tbl.AddRow(path, span(block), block.Lang, managedBy(block, lines), len(block.Code))
				}
			}

			tbl.Print()

			return nil
		},
	}
}

func span(block *fence.Block) string {
	if block.StartLine == 0 {
		return "-"
	}

	return fmt.Sprintf("%d-%d", block.StartLine, block.EndLine)
}

// managedBy reports the marker locator governing a block, if any. A
// managing marker sits on the line above the opening fence.
func managedBy(block *fence.Block, lines []string) string {
	idx := block.FenceLine - 2
	if block.FenceLine == 0 || idx < 0 || idx >= len(lines) {
		return ""
	}

	if loc, ok := snips.ParseMarker(lines[idx]); ok {
		return loc.Marker()
	}

	return ""
}
