package snips

import "fmt"

// FileNotFoundError is returned when a document or a referenced source
// file does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return "file not found: " + e.Path
}

// InvalidMarkerError is returned when a line starts like a snips marker
// but does not match the marker grammar.
type InvalidMarkerError struct {
	File    string
	Line    int
	Content string
}

func (e *InvalidMarkerError) Error() string {
	return fmt.Sprintf(
		"invalid marker format in %s:%d\n  %s\n  Expected format: <!-- snips: path/to/file.ext --> or <!-- snips: path/to/file.ext#snippet_name -->",
		e.File, e.Line, e.Content,
	)
}

// MissingFenceError is returned when a marker line is not immediately
// followed by a code fence. Line is the marker's one-based line number.
type MissingFenceError struct {
	Line int
}

func (e *MissingFenceError) Error() string {
	return fmt.Sprintf("marker not followed by code fence: line %d", e.Line)
}
