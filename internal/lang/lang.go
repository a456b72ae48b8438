// Package lang maps file extensions to fenced code block language hints.
package lang

import (
	"path/filepath"
	"strings"
)

var byExtension = map[string]string{
	"c":     "c",
	"cc":    "cpp",
	"cpp":   "cpp",
	"cs":    "csharp",
	"css":   "css",
	"go":    "go",
	"h":     "c",
	"hpp":   "cpp",
	"hs":    "haskell",
	"html":  "html",
	"java":  "java",
	"js":    "javascript",
	"json":  "json",
	"kt":    "kotlin",
	"lua":   "lua",
	"md":    "markdown",
	"php":   "php",
	"pl":    "perl",
	"py":    "python",
	"rb":    "ruby",
	"rs":    "rust",
	"sh":    "shell",
	"sql":   "sql",
	"swift": "swift",
	"toml":  "toml",
	"ts":    "typescript",
	"tsx":   "typescript",
	"xml":   "xml",
	"yaml":  "yaml",
	"yml":   "yaml",
	"zig":   "zig",
	"zsh":   "shell",
}

// Hint returns the fence language hint for a source path, or an empty
// string when the extension is unknown.
func Hint(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	return byExtension[strings.ToLower(ext)]
}
