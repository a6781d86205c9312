package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderHTML(t *testing.T, src string) string {
	t.Helper()
	out, err := NewRenderer(nil).Render([]byte(src)).HTML()
	require.NoError(t, err)
	return out
}

func TestHTML_Links(t *testing.T) {
	out := renderHTML(t, "[site](https://example.com)")
	assert.Equal(t,
		`<p class="mb-4 text-foreground leading-relaxed"><a class="text-primary hover:underline" href="https://example.com" target="_blank" rel="noopener noreferrer">site</a></p>`,
		out)
}

func TestHTML_Headings(t *testing.T) {
	out := renderHTML(t, "## Setup\n\n#### Deep\n")
	assert.Contains(t, out, `<h2 class="text-2xl font-bold mt-8 mb-4 text-foreground" id="setup">Setup</h2>`)
	assert.Contains(t, out, `<h4 id="deep">Deep</h4>`)
}

func TestHTML_EscapesText(t *testing.T) {
	out := renderHTML(t, "a < b and `<tag>`")
	assert.Contains(t, out, "a &lt; b and ")
	assert.Contains(t, out, "&lt;tag&gt;")
	assert.NotContains(t, out, "<tag>")
}

func TestHTML_ResolvesEntities(t *testing.T) {
	out := renderHTML(t, "Tom &amp; Jerry \\*not em\\*")
	assert.Contains(t, out, "Tom &amp; Jerry *not em*")
	assert.NotContains(t, out, "&amp;amp;")
}

func TestHTML_CodeBlock(t *testing.T) {
	out := renderHTML(t, "```go\npackage main\n```\n")
	assert.True(t, strings.HasPrefix(out, `<div class="relative group"><button class="copy-button" type="button" data-state="idle">Copy</button>`), out)
	assert.Contains(t, out, `<code class="chroma language-go">`)
	assert.Contains(t, out, "package")
	assert.Contains(t, out, "main")
}

func TestHTML_Lists(t *testing.T) {
	out := renderHTML(t, "1. a\n2. b\n")
	assert.Contains(t, out, `<ol class="list-decimal list-inside mb-4 space-y-2 text-foreground"><li class="text-foreground">a</li>`)
	assert.NotContains(t, out, "start=")

	out = renderHTML(t, "5. c\n")
	assert.Contains(t, out, `start="5"`)
}

func TestHTML_Table(t *testing.T) {
	out := renderHTML(t, "| h |\n|:-:|\n| c |\n")
	assert.Contains(t, out, `<th align="center">h</th>`)
	assert.Contains(t, out, `<tbody><tr><td align="center">c</td></tr></tbody>`)
}
