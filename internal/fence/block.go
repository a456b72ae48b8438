// Package fence inventories the fenced code blocks of a markdown document.
package fence

// Block is one fenced code block. Line numbers are one-based: FenceLine
// is the opening fence, StartLine and EndLine span the fenced content.
// FenceLine is zero when the block's position cannot be determined.
type Block struct {
	Lang      string
	Meta      Meta
	Code      []byte
	FenceLine int
	StartLine int
	EndLine   int
}

// Blocks is an ordered collection of fenced code blocks.
type Blocks []*Block
