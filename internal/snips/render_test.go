package snips_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/cortesi/snips/internal/region"
	"github.com/cortesi/snips/internal/snips"
	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fence = "```"

// doc joins lines into a newline-terminated document.
func doc(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func newFS(t *testing.T, files map[string]string) *memoryfs.FS {
	t.Helper()

	fsys := memoryfs.New()

	for path, content := range files {
		if dir := filepath.Dir(path); dir != "." {
			require.NoError(t, fsys.MkdirAll(dir, 0o755))
		}

		require.NoError(t, fsys.WriteFile(path, []byte(content), 0o644))
	}

	return fsys
}

func TestRenderWholeFile(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn main(){}\n",
		"doc.md":  doc("<!-- snips: code.rs -->", fence, "old", fence),
	})

	outcome, err := snips.RenderFile("doc.md", true, fsys)
	require.NoError(t, err)

	assert.True(t, outcome.Updated)
	require.Len(t, outcome.Reports, 1)
	assert.Equal(t, snips.Locator{Path: "code.rs"}, outcome.Reports[0].Locator)
	assert.True(t, outcome.Reports[0].Updated)

	want := doc("<!-- snips: code.rs -->", fence+"rust", "fn main(){}", fence)
	assert.Equal(t, want, outcome.Text)

	written, err := fsys.ReadFile("doc.md")
	require.NoError(t, err)
	assert.Equal(t, want, string(written))
}

func TestRenderIdempotent(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn main(){}\n",
		"doc.md":  doc("<!-- snips: code.rs -->", fence, "old", fence),
	})

	first, err := snips.RenderFile("doc.md", true, fsys)
	require.NoError(t, err)
	require.True(t, first.Updated)

	second, err := snips.RenderFile("doc.md", true, fsys)
	require.NoError(t, err)

	assert.False(t, second.Updated)
	assert.Empty(t, second.Text)
	require.Len(t, second.Reports, 1)
	assert.False(t, second.Reports[0].Updated)

	diffs, err := snips.DiffFile("doc.md", fsys)
	require.NoError(t, err)
	assert.Empty(t, diffs)
}

func TestRenderNamedRegionDedent(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "// snips-start: foo\n    fn a() {\n        println!(\"hi\");\n    }\n// snips-end: foo\n",
		"doc.md":  doc("<!-- snips: code.rs#foo -->", fence, "old", fence),
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	want := doc("<!-- snips: code.rs#foo -->", fence+"rust", "fn a() {", "    println!(\"hi\");", "}", fence)
	assert.Equal(t, want, outcome.Text)
}

func TestRenderIndentedMarkerSpaces(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn hello() {\n    println!(\"Hello, world!\");\n}\n",
		"doc.md": doc(
			"Some text:",
			"",
			"    <!-- snips: code.rs -->",
			"    "+fence+"rust",
			"    old content",
			"    "+fence,
		),
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	want := doc(
		"Some text:",
		"",
		"    <!-- snips: code.rs -->",
		"    "+fence+"rust",
		"    fn hello() {",
		"        println!(\"Hello, world!\");",
		"    }",
		"    "+fence,
	)
	assert.Equal(t, want, outcome.Text)
}

func TestRenderIndentedMarkerTabs(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn hello() {\n    println!(\"Hello!\");\n}\n",
		"doc.md": doc(
			"\t<!-- snips: code.rs -->",
			"\t"+fence+"rust",
			"\told",
			"\t"+fence,
		),
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	want := doc(
		"\t<!-- snips: code.rs -->",
		"\t"+fence+"rust",
		"\tfn hello() {",
		"\t    println!(\"Hello!\");",
		"\t}",
		"\t"+fence,
	)
	assert.Equal(t, want, outcome.Text)
}

func TestRenderBlankLinesNotPadded(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn test() {\n    let x = 1;\n\n    let y = 2;\n}\n",
		"doc.md": doc(
			"    <!-- snips: code.rs -->",
			"    "+fence,
			"    old",
			"    "+fence,
		),
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	assert.Contains(t, outcome.Text, "        let x = 1;\n\n        let y = 2;")
	assert.NotContains(t, outcome.Text, "\n    \n")
}

func TestRenderRelativePathResolution(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"src/code.rs": "fn x() {}\n",
		"docs/doc.md": doc("<!-- snips: ../src/code.rs -->", fence, "old", fence),
	})

	outcome, err := snips.RenderFile("docs/doc.md", false, fsys)
	require.NoError(t, err)
	assert.Contains(t, outcome.Text, "fn x() {}")
}

func TestRenderTrailingNewlineAbsent(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn main(){}\n",
		"doc.md":  "<!-- snips: code.rs -->\n" + fence + "\nold\n" + fence,
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	assert.True(t, outcome.Updated)
	assert.False(t, strings.HasSuffix(outcome.Text, "\n"))
}

func TestRenderNoMarkers(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"doc.md": "no snippets here\n",
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	assert.False(t, outcome.Updated)
	assert.Empty(t, outcome.Text)
	assert.Empty(t, outcome.Reports)
}

func TestRenderInvalidMarker(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"doc.md": doc("intro", "", "<!-- snips: -->", fence, fence),
	})

	_, err := snips.RenderFile("doc.md", false, fsys)

	var invalid *snips.InvalidMarkerError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "doc.md", invalid.File)
	assert.Equal(t, 3, invalid.Line)
	assert.Equal(t, "<!-- snips: -->", invalid.Content)
}

func TestRenderMissingFence(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn a() {}\n",
		"doc.md":  doc("<!-- snips: code.rs -->", "not a fence"),
	})

	_, err := snips.RenderFile("doc.md", false, fsys)

	var missing *snips.MissingFenceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 1, missing.Line)
}

func TestRenderMarkerAtEndOfInput(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn a() {}\n",
		"doc.md":  "<!-- snips: code.rs -->\n",
	})

	_, err := snips.RenderFile("doc.md", false, fsys)

	var missing *snips.MissingFenceError
	require.ErrorAs(t, err, &missing)
}

func TestRenderMissingSource(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"doc.md": doc("<!-- snips: nope.rs -->", fence, "old", fence),
	})

	_, err := snips.RenderFile("doc.md", false, fsys)

	var notFound *snips.FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope.rs", notFound.Path)
}

func TestRenderMissingDocument(t *testing.T) {
	fsys := newFS(t, nil)

	_, err := snips.RenderFile("missing.md", false, fsys)

	var notFound *snips.FileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing.md", notFound.Path)
}

func TestRenderRegionNotFound(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "// snips-start: alpha\nx\n// snips-end\n",
		"doc.md":  doc("<!-- snips: code.rs#beta -->", fence, "old", fence),
	})

	_, err := snips.RenderFile("doc.md", false, fsys)

	var notFound *region.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "beta", notFound.Name)
	assert.Equal(t, []string{"alpha"}, notFound.Available)
}

func TestRenderUnterminatedRegion(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "// snips-start: foo\nfn a(){}\n",
		"doc.md":  doc("<!-- snips: code.rs#foo -->", fence, "old", fence),
	})

	_, err := snips.RenderFile("doc.md", false, fsys)

	var unterminated *region.UnterminatedError
	require.ErrorAs(t, err, &unterminated)
	assert.Equal(t, "foo", unterminated.Name)
}

func TestRenderClosingFenceTrailingWhitespace(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn main(){}\n",
		"doc.md":  doc("<!-- snips: code.rs -->", fence, "old", fence+"   ", "after"),
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(outcome.Text, "after\n"))
}

func TestRenderLongFenceNormalized(t *testing.T) {
	// A four-backtick block may contain triple backticks; rendering
	// normalizes the pair to triple backticks. The embedded content here
	// is already in sync, so no marker is stale even though the bytes
	// change.
	fsys := newFS(t, map[string]string{
		"code.md": "# Title\n",
		"doc.md":  doc("<!-- snips: code.md -->", fence+"`markdown", "# Title", fence+"`"),
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	assert.True(t, outcome.Updated)
	require.Len(t, outcome.Reports, 1)
	assert.False(t, outcome.Reports[0].Updated)

	want := doc("<!-- snips: code.md -->", fence+"markdown", "# Title", fence)
	assert.Equal(t, want, outcome.Text)
}

func TestRenderUnclosedFenceConsumesToEnd(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn main(){}\n",
		"doc.md":  "<!-- snips: code.rs -->\n" + fence + "\nold\nmore old",
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	assert.True(t, outcome.Updated)
	want := "<!-- snips: code.rs -->\n" + fence + "rust\nfn main(){}\n" + fence
	assert.Equal(t, want, outcome.Text)
}

func TestRenderMultipleMarkers(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "// snips-start: first\nfn first() {}\n// snips-end\n// snips-start: second\nfn second() {}\n// snips-end\n",
		"doc.md": doc(
			"<!-- snips: code.rs#first -->",
			fence+"rust",
			"fn first() {}",
			fence,
			"",
			"<!-- snips: code.rs#second -->",
			fence+"rust",
			"stale",
			fence,
		),
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)

	assert.True(t, outcome.Updated)
	require.Len(t, outcome.Reports, 2)
	assert.False(t, outcome.Reports[0].Updated)
	assert.True(t, outcome.Reports[1].Updated)
	assert.Equal(t, "code.rs#second", outcome.Reports[1].Locator.Marker())
	assert.Contains(t, outcome.Text, "fn second() {}")
}

func TestRenderMarkerWhitespaceNormalized(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"code.rs": "fn main(){}\n",
		"doc.md":  doc("<!-- snips:   code.rs   -->", fence, "old", fence),
	})

	outcome, err := snips.RenderFile("doc.md", false, fsys)
	require.NoError(t, err)
	assert.Contains(t, outcome.Text, "<!-- snips: code.rs -->\n")
}

func TestParseMarker(t *testing.T) {
	loc, ok := snips.ParseMarker("  <!-- snips: src/app.go#setup -->")
	require.True(t, ok)
	assert.Equal(t, snips.Locator{Path: "src/app.go", Name: "setup"}, loc)
	assert.Equal(t, "src/app.go#setup", loc.Marker())

	loc, ok = snips.ParseMarker("<!-- snips: app.go -->")
	require.True(t, ok)
	assert.Equal(t, "app.go", loc.Marker())

	_, ok = snips.ParseMarker("<!-- snips: -->")
	assert.False(t, ok)

	_, ok = snips.ParseMarker("plain text")
	assert.False(t, ok)
}
