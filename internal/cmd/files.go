package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// NoMarkdownFilesError is returned when file discovery finds nothing to
// process in the working directory.
type NoMarkdownFilesError struct {
	Dir string
}

func (e *NoMarkdownFilesError) Error() string {
	return "no markdown files found in " + e.Dir
}

// resolveFiles turns command arguments into the list of documents to
// process. Without arguments it discovers markdown files in the working
// directory, sorted by name. Exclude patterns apply in both cases.
func resolveFiles(args []string, exclude []string) ([]string, error) {
	globs := make([]glob.Glob, 0, len(exclude))

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	files := args

	if len(files) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}

		entries, err := os.ReadDir(cwd)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			if !entry.IsDir() && isMarkdown(entry.Name()) {
				files = append(files, entry.Name())
			}
		}

		sort.Strings(files)

		if len(files) == 0 {
			return nil, &NoMarkdownFilesError{Dir: cwd}
		}
	}

	kept := make([]string, 0, len(files))

	for _, file := range files {
		if !excluded(file, globs) {
			kept = append(kept, file)
		}
	}

	return kept, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}

	return false
}

func excluded(path string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(path) || g.Match(filepath.Base(path)) {
			return true
		}
	}

	return false
}
