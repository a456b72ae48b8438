package snips

import (
	"regexp"
	"strings"
)

// markerPrefix is the left-trimmed prefix that makes a line a marker
// candidate. A candidate that fails the full grammar is an error, never
// plain text.
const markerPrefix = "<!-- snips:"

var reMarker = regexp.MustCompile(`^(\s*)<!--\s*snips:\s*([^#\s]+)(?:#([\w-]+))?\s*-->\s*$`)

// Locator identifies the content a marker refers to: a source path as
// written in the marker, plus an optional region name.
type Locator struct {
	Path string
	Name string
}

// Marker returns the locator in marker notation: "path" or "path#name".
func (l Locator) Marker() string {
	if l.Name != "" {
		return l.Path + "#" + l.Name
	}

	return l.Path
}

// ParseMarker parses a marker line into a Locator. The bool return
// indicates whether the line matched the marker grammar.
func ParseMarker(line string) (Locator, bool) {
	m := reMarker.FindStringSubmatch(line)
	if m == nil {
		return Locator{}, false
	}

	return Locator{Path: m[2], Name: m[3]}, true
}

func isMarkerLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), markerPrefix)
}

// parsedBlock is one marker plus its fenced block, as found in the document.
type parsedBlock struct {
	indent string
	loc    Locator
	old    string
	line   int
}

// parseBlock consumes a marker line and its fenced block. The fence must
// open on the very next line; the block closes on the first line whose
// trimmed text is exactly the opening run of backticks. An unclosed fence
// consumes to end of input.
func parseBlock(c *cursor, line string, docPath string) (*parsedBlock, error) {
	m := reMarker.FindStringSubmatch(line)
	if m == nil {
		return nil, &InvalidMarkerError{File: docPath, Line: c.line(), Content: line}
	}

	blk := &parsedBlock{
		indent: m[1],
		loc:    Locator{Path: m[2], Name: m[3]},
		line:   c.line(),
	}

	fence, ok := c.next()
	if !ok {
		return nil, &MissingFenceError{Line: blk.line}
	}

	trimmed := strings.TrimLeft(fence, " \t")
	if !strings.HasPrefix(trimmed, "`") {
		return nil, &MissingFenceError{Line: blk.line}
	}

	ticks := 0
	for ticks < len(trimmed) && trimmed[ticks] == '`' {
		ticks++
	}

	closing := strings.Repeat("`", ticks)

	var body []string

	for {
		inner, ok := c.next()
		if !ok {
			break
		}

		if strings.TrimSpace(inner) == closing {
			break
		}

		body = append(body, inner)
	}

	blk.old = strings.Join(body, "\n")

	return blk, nil
}
