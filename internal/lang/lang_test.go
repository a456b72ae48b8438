package lang_test

import (
	"testing"

	"github.com/cortesi/snips/internal/lang"
	"github.com/stretchr/testify/assert"
)

func TestHint(t *testing.T) {
	assert.Equal(t, "go", lang.Hint("cmd/main.go"))
	assert.Equal(t, "rust", lang.Hint("code.rs"))
	assert.Equal(t, "rust", lang.Hint("CODE.RS"))
	assert.Equal(t, "python", lang.Hint("../scripts/run.py"))
	assert.Equal(t, "", lang.Hint("Makefile"))
	assert.Equal(t, "", lang.Hint("data.xyz"))
}
