package snips

import "strings"

// cursor is a position-tracked iterator over a document's lines. The
// trailing newline, if any, is not part of the line sequence; callers
// restore it when joining output.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(text string) *cursor {
	return &cursor{lines: strings.Split(strings.TrimSuffix(text, "\n"), "\n")}
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}

	line := c.lines[c.pos]
	c.pos++

	return line, true
}

// line returns the one-based number of the line most recently returned by next.
func (c *cursor) line() int {
	return c.pos
}
