package fence

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)

// Scan parses a markdown document and returns every fenced code block, in
// document order. The document is never modified.
func Scan(source []byte) (Blocks, error) {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source)).OwnerDocument()

	var blocks Blocks

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Kind() != ast.KindFencedCodeBlock {
			return ast.WalkContinue, nil
		}

		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block, berr := extractBlock(fcb, source)
		if berr != nil {
			return ast.WalkStop, berr
		}

		blocks = append(blocks, block)

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func extractBlock(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	lang, meta, err := extractInfo(fcb, source)
	if err != nil {
		return nil, err
	}

	block := &Block{Lang: lang, Meta: meta, Code: extractCode(fcb, source)}
	block.FenceLine = fenceLine(fcb, source)
	block.StartLine, block.EndLine = extractLines(fcb, source)

	return block, nil
}

func fenceLine(fcb *ast.FencedCodeBlock, source []byte) int {
	if fcb.Info != nil {
		return lineAt(source, fcb.Info.Segment.Start)
	}

	lines := fcb.Lines()
	if lines.Len() > 0 {
		return lineAt(source, lines.At(0).Start) - 1
	}

	return 0
}

func extractInfo(fcb *ast.FencedCodeBlock, source []byte) (string, Meta, error) {
	if fcb.Info == nil {
		return "", nil, nil
	}

	all := reInfo.FindSubmatch(fcb.Info.Text(source))
	if all == nil {
		return "", nil, nil
	}

	meta, err := parseMeta(all[2])
	if err != nil {
		return "", nil, err
	}

	return string(all[1]), meta, nil
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buff.Write(line.Value(source))
	}

	return buff.Bytes()
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	lines := fcb.Lines()
	if lines.Len() == 0 {
		if fcb.Info != nil {
			start := lineAt(source, fcb.Info.Segment.Start)

			return start, start + 1
		}

		return 0, 0
	}

	return lineAt(source, lines.At(0).Start), lineAt(source, lines.At(lines.Len()-1).Stop)
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}
