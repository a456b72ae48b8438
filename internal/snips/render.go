// Package snips keeps fenced code blocks in markdown documents
// synchronized with the source files their markers reference.
package snips

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cortesi/snips/internal/lang"
	"github.com/cortesi/snips/internal/region"
)

// Report records whether a single marker's embedded content matched the
// current source content.
type Report struct {
	Locator Locator
	Updated bool
}

// Outcome is the result of rendering one document. Text is only set when
// Updated is true, and holds the full re-rendered document.
type Outcome struct {
	Updated bool
	Text    string
	Reports []Report
}

// DiffEntry pairs a stale marker's embedded content with the content the
// source currently provides. New carries the marker's indentation, so the
// two strings compare like-for-like.
type DiffEntry struct {
	Path string
	Name string
	Old  string
	New  string
}

// result is the shared product of one document pass. Render, check and
// diff all read from it, which keeps their staleness decisions identical.
type result struct {
	outcome Outcome
	diffs   []DiffEntry
}

// process runs the single scan pass over a document. Non-marker lines are
// copied verbatim; every marker block is re-emitted from its resolved
// source. Marker paths resolve against baseDir, the directory containing
// the document. docPath only labels errors.
func process(doc []byte, baseDir string, docPath string, reader FileReader) (*result, error) {
	text := string(doc)
	c := newCursor(text)
	res := &result{}

	var out []string

	for {
		line, ok := c.next()
		if !ok {
			break
		}

		if !isMarkerLine(line) {
			out = append(out, line)

			continue
		}

		blk, err := parseBlock(c, line, docPath)
		if err != nil {
			return nil, err
		}

		target := filepath.Join(baseDir, filepath.FromSlash(blk.loc.Path))

		src, err := reader.ReadFile(target)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &FileNotFoundError{Path: target}
			}

			return nil, err
		}

		content, err := region.Extract(src, blk.loc.Name, target)
		if err != nil {
			return nil, err
		}

		indented := applyIndent(content, blk.indent)

		out = append(out, blk.indent+"<!-- snips: "+blk.loc.Marker()+" -->")
		out = append(out, blk.indent+"```"+lang.Hint(blk.loc.Path))
		out = append(out, indented)
		out = append(out, blk.indent+"```")

		updated := strings.TrimSpace(blk.old) != strings.TrimSpace(indented)

		res.outcome.Reports = append(res.outcome.Reports, Report{Locator: blk.loc, Updated: updated})

		if updated {
			res.diffs = append(res.diffs, DiffEntry{
				Path: blk.loc.Path,
				Name: blk.loc.Name,
				Old:  blk.old,
				New:  indented,
			})
		}
	}

	rendered := strings.Join(out, "\n")
	if strings.HasSuffix(text, "\n") {
		rendered += "\n"
	}

	if rendered != text {
		res.outcome.Updated = true
		res.outcome.Text = rendered
	}

	return res, nil
}

// applyIndent prefixes every non-blank line with indent. Blank lines stay
// exactly blank.
func applyIndent(content string, indent string) string {
	if indent == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = indent + line
		}
	}

	return strings.Join(lines, "\n")
}

// Render scans a document and re-renders every marker block from its
// current source content. The document itself is not written; see
// RenderFile.
func Render(doc []byte, baseDir string, docPath string, reader FileReader) (Outcome, error) {
	res, err := process(doc, baseDir, docPath, reader)
	if err != nil {
		return Outcome{}, err
	}

	return res.outcome, nil
}

// Diff reports, per stale marker, the embedded and current content. It
// shares Render's scan, so Diff returns no entries exactly when no
// marker's content is stale.
func Diff(doc []byte, baseDir string, docPath string, reader FileReader) ([]DiffEntry, error) {
	res, err := process(doc, baseDir, docPath, reader)
	if err != nil {
		return nil, err
	}

	return res.diffs, nil
}
