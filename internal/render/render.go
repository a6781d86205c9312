package render

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Renderer turns markdown (CommonMark plus GFM tables, strikethrough,
// autolinks and task lists) into a Document. It holds no per-call state
// and is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
	hl *Highlighter
}

func NewRenderer(hl *Highlighter) *Renderer {
	if hl == nil {
		hl = NewHighlighter(DefaultStyle)
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		hl: hl,
	}
}

func (r *Renderer) Highlighter() *Highlighter {
	return r.hl
}

// Render parses src. The same input always yields the same Document.
func (r *Renderer) Render(src []byte) Document {
	root := r.md.Parser().Parse(text.NewReader(src))
	b := builder{src: src, hl: r.hl}

	return Document{Blocks: b.blocks(root)}
}

type builder struct {
	src []byte
	hl  *Highlighter
}

func (b *builder) blocks(parent ast.Node) []Block {
	var result []Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if blk, ok := b.block(n); ok {
			result = append(result, blk)
		}
	}

	return result
}

func (b *builder) block(n ast.Node) (Block, bool) {
	switch n := n.(type) {
	case *ast.Heading:
		blk := Block{Kind: BlockHeading, Level: n.Level, Inlines: b.inlines(n)}
		if id, ok := n.AttributeString("id"); ok {
			if v, ok := id.([]byte); ok {
				blk.ID = string(v)
			}
		}
		return blk, true
	case *ast.Paragraph:
		return Block{Kind: BlockParagraph, Inlines: b.inlines(n)}, true
	case *ast.TextBlock:
		return Block{Kind: BlockParagraph, Tight: true, Inlines: b.inlines(n)}, true
	case *ast.List:
		blk := Block{Kind: BlockList, Ordered: n.IsOrdered(), Children: b.blocks(n)}
		if n.IsOrdered() {
			blk.Start = n.Start
		}
		return blk, true
	case *ast.ListItem:
		return Block{Kind: BlockListItem, Children: b.blocks(n)}, true
	case *ast.Blockquote:
		return Block{Kind: BlockBlockquote, Children: b.blocks(n)}, true
	case *ast.FencedCodeBlock:
		return b.code(string(n.Language(b.src)), n), true
	case *ast.CodeBlock:
		return b.code("", n), true
	case *ast.ThematicBreak:
		return Block{Kind: BlockThematicBreak}, true
	case *extast.Table:
		return Block{Kind: BlockTable, Table: b.table(n)}, true
	case *ast.HTMLBlock:
		// raw HTML is not rendered
		return Block{}, false
	}

	return Block{}, false
}

func (b *builder) code(lang string, n ast.Node) Block {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(b.src))
	}
	code := strings.TrimSuffix(sb.String(), "\n")

	return Block{
		Kind: BlockCode,
		Code: &CodeBlock{
			Language: lang,
			Text:     code,
			Tokens:   b.hl.Tokens(lang, code),
		},
	}
}

func (b *builder) table(n *extast.Table) *Table {
	t := &Table{Align: make([]Alignment, len(n.Alignments))}
	for i, a := range n.Alignments {
		t.Align[i] = alignment(a)
	}

	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells [][]Inline
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, b.inlines(cell))
		}

		switch row.(type) {
		case *extast.TableHeader:
			t.Header = cells
		case *extast.TableRow:
			t.Rows = append(t.Rows, cells)
		}
	}

	return t
}

func alignment(a extast.Alignment) Alignment {
	switch a {
	case extast.AlignLeft:
		return AlignLeft
	case extast.AlignCenter:
		return AlignCenter
	case extast.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

func (b *builder) inlines(parent ast.Node) []Inline {
	var result []Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		result = append(result, b.inline(n)...)
	}

	return mergeText(result)
}

func (b *builder) inline(n ast.Node) []Inline {
	switch n := n.(type) {
	case *ast.Text:
		v := n.Segment.Value(b.src)
		if !n.IsRaw() {
			v = util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(v)))
		}
		result := []Inline{{Kind: InlineText, Text: string(v)}}
		switch {
		case n.HardLineBreak():
			result = append(result, Inline{Kind: InlineBreak})
		case n.SoftLineBreak():
			result = append(result, Inline{Kind: InlineText, Text: "\n"})
		}
		return result
	case *ast.String:
		return []Inline{{Kind: InlineText, Text: string(n.Value)}}
	case *ast.CodeSpan:
		return []Inline{{Kind: InlineCode, Text: b.plain(n)}}
	case *ast.Emphasis:
		kind := InlineEmphasis
		if n.Level >= 2 {
			kind = InlineStrong
		}
		return []Inline{{Kind: kind, Children: b.inlines(n)}}
	case *ast.Link:
		return []Inline{newLink(string(n.Destination), string(n.Title), b.inlines(n))}
	case *ast.AutoLink:
		url := string(n.URL(b.src))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
			url = "mailto:" + url
		}
		label := []Inline{{Kind: InlineText, Text: string(n.Label(b.src))}}
		return []Inline{newLink(url, "", label)}
	case *ast.Image:
		return []Inline{{
			Kind:  InlineImage,
			URL:   string(n.Destination),
			Title: string(n.Title),
			Text:  b.plain(n),
		}}
	case *extast.Strikethrough:
		return []Inline{{Kind: InlineStrike, Children: b.inlines(n)}}
	case *extast.TaskCheckBox:
		return []Inline{{Kind: InlineCheckbox, Checked: n.IsChecked}}
	case *ast.RawHTML:
		return nil
	}

	return b.inlines(n)
}

func newLink(url, title string, children []Inline) Inline {
	return Inline{
		Kind:     InlineLink,
		URL:      url,
		Title:    title,
		Target:   LinkTarget,
		Rel:      LinkRel,
		Children: children,
	}
}

// plain flattens the text of n's descendants. Line endings inside code spans
// become spaces.
func (b *builder) plain(n ast.Node) string {
	var sb strings.Builder
	var walk func(ast.Node)
	walk = func(parent ast.Node) {
		for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.Text:
				v := c.Segment.Value(b.src)
				if len(v) > 0 && v[len(v)-1] == '\n' {
					sb.Write(v[:len(v)-1])
					sb.WriteByte(' ')
				} else {
					sb.Write(v)
				}
			case *ast.String:
				sb.Write(c.Value)
			default:
				walk(c)
			}
		}
	}
	walk(n)

	return sb.String()
}

func mergeText(list []Inline) []Inline {
	result := list[:0]
	for _, in := range list {
		last := len(result) - 1
		if in.Kind == InlineText && last >= 0 && result[last].Kind == InlineText {
			result[last].Text += in.Text
			continue
		}
		result = append(result, in)
	}
	if len(result) == 0 {
		return nil
	}

	return result
}
