package snips

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const fileMode = 0o644

// FileReader reads a file's full contents. Satisfied by the OS filesystem
// and by memoryfs in tests.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// FileWriter replaces a file's full contents.
type FileWriter interface {
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// FS combines reading and writing.
type FS interface {
	FileReader
	FileWriter
}

type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// OS is the local filesystem.
var OS FS = osFS{}

// RenderFile renders the document at path. Marker paths resolve relative
// to the document's directory. When write is true and the document is
// stale, the rendered text replaces the file.
func RenderFile(path string, write bool, fsys FS) (Outcome, error) {
	doc, err := ReadDocument(path, fsys)
	if err != nil {
		return Outcome{}, err
	}

	outcome, err := Render(doc, filepath.Dir(path), path, fsys)
	if err != nil {
		return Outcome{}, err
	}

	if write && outcome.Updated {
		if err := fsys.WriteFile(path, []byte(outcome.Text), fileMode); err != nil {
			return Outcome{}, err
		}
	}

	return outcome, nil
}

// DiffFile computes the stale-marker diff for the document at path.
func DiffFile(path string, reader FileReader) ([]DiffEntry, error) {
	doc, err := ReadDocument(path, reader)
	if err != nil {
		return nil, err
	}

	return Diff(doc, filepath.Dir(path), path, reader)
}

// ReadDocument reads a document, mapping a missing file to
// FileNotFoundError so every command reports it the same way.
func ReadDocument(path string, reader FileReader) ([]byte, error) {
	doc, err := reader.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path}
		}

		return nil, err
	}

	return doc, nil
}
