// Package region extracts named snips-start/snips-end sections from source files.
package region

import (
	"fmt"
	"regexp"
	"strings"
)

// idChars is the character class allowed in region identifiers.
const idChars = `[A-Za-z0-9_-]`

var (
	reStart = regexp.MustCompile(`snips-start:\s*(` + idChars + `+)\s*$`)
	reEnd   = regexp.MustCompile(`snips-end(?::(?:\s*(` + idChars + `+))?)?\s*$`)
)

// NotFoundError is returned when a requested region is not declared in the
// source file. Available lists the names that were declared.
type NotFoundError struct {
	File      string
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}

	return fmt.Sprintf("snippet `%s` not found in %s\nAvailable snippets: %s", e.Name, e.File, available)
}

// UnterminatedError is returned when a start marker has no matching end
// marker before the end of the file.
type UnterminatedError struct {
	File string
	Name string
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated snippet `%s` in %s", e.Name, e.File)
}

// Extract returns the content of the named region in source, dedented. An
// empty name selects the whole file. An end marker may repeat the region
// name, carry no name, or omit the colon entirely; an unnamed end always
// closes the open region, while an end naming a different region does not.
// sourceID identifies the file in error messages.
func Extract(source []byte, name string, sourceID string) (string, error) {
	content := strings.TrimSuffix(string(source), "\n")

	if name == "" {
		return Dedent(content), nil
	}

	var (
		body  []string
		found bool
	)

	for _, line := range strings.Split(content, "\n") {
		if !found {
			if m := reStart.FindStringSubmatch(line); m != nil && m[1] == name {
				found = true
			}

			continue
		}

		if m := reEnd.FindStringSubmatch(line); m != nil && (m[1] == "" || m[1] == name) {
			return Dedent(strings.Join(body, "\n")), nil
		}

		body = append(body, line)
	}

	if found {
		return "", &UnterminatedError{File: sourceID, Name: name}
	}

	return "", &NotFoundError{File: sourceID, Name: name, Available: Names(source)}
}

// Names returns every region name declared via a start marker, in file order.
func Names(source []byte) []string {
	var names []string

	for _, line := range strings.Split(string(source), "\n") {
		if m := reStart.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}

	return names
}

// Dedent strips the longest whitespace prefix shared by all non-blank lines.
// Blank lines neither contribute to the prefix nor have it stripped.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	prefix := ""
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		if first {
			prefix = indent
			first = false

			continue
		}

		prefix = commonPrefix(prefix, indent)
		if prefix == "" {
			break
		}
	}

	if prefix == "" {
		return s
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}

	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}

	return a[:i]
}
