package fence

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from a fenced code block's info
// string, either shell-style words (`key=value`) or an inline JSON object.
type Meta map[string]string

// Get returns the metadata value for the given key, or an empty string.
func (m Meta) Get(name string) string {
	return m[name]
}

var (
	reJSON   = regexp.MustCompile(`^\s*{\s*["}]`)
	reBraces = regexp.MustCompile(`^\s*{(.*)}$`)
)

func parseMeta(input []byte) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.Match(input) {
		var meta Meta

		if err := json.Unmarshal(input, &meta); err != nil {
			return nil, err
		}

		return meta, nil
	}

	if subs := reBraces.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, err
	}

	meta := make(Meta)

	for _, word := range words {
		if idx := strings.IndexRune(word, '='); idx >= 0 {
			meta[word[:idx]] = word[idx+1:]
		}
	}

	return meta, nil
}
