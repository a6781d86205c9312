package render

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// HTML renders the document as an HTML fragment. Every block kind maps to a
// fixed element and class set.
func (d Document) HTML() (string, error) {
	var buf bytes.Buffer
	for i := range d.Blocks {
		if err := html.Render(&buf, blockNode(d.Blocks[i])); err != nil {
			return "", fmt.Errorf("render %s block: %w", d.Blocks[i].Kind, err)
		}
	}

	return buf.String(), nil
}

func blockNode(b Block) *html.Node {
	switch b.Kind {
	case BlockHeading:
		level := min(max(b.Level, 1), len(headingAtoms))
		n := element(headingAtoms[level-1], headingClass(level))
		if b.ID != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: b.ID})
		}
		return appendInlines(n, b.Inlines)
	case BlockParagraph:
		if b.Tight {
			return appendInlines(fragment(), b.Inlines)
		}
		return appendInlines(element(atom.P, classParagraph), b.Inlines)
	case BlockList:
		if !b.Ordered {
			return appendBlocks(element(atom.Ul, classUnorderedList), b.Children)
		}
		n := element(atom.Ol, classOrderedList)
		if b.Start > 1 {
			n.Attr = append(n.Attr, html.Attribute{Key: "start", Val: strconv.Itoa(b.Start)})
		}
		return appendBlocks(n, b.Children)
	case BlockListItem:
		return appendBlocks(element(atom.Li, classListItem), b.Children)
	case BlockBlockquote:
		return appendBlocks(element(atom.Blockquote, classBlockquote), b.Children)
	case BlockCode:
		return codeBlockNode(b.Code)
	case BlockTable:
		return tableNode(b.Table)
	case BlockThematicBreak:
		return element(atom.Hr, "")
	}

	return fragment()
}

func codeBlockNode(c *CodeBlock) *html.Node {
	if c == nil {
		return fragment()
	}

	code := element(atom.Code, "chroma")
	if c.Language != "" {
		code.Attr[0].Val += " language-" + c.Language
	}
	for _, tok := range c.Tokens {
		if tok.Class == "" {
			code.AppendChild(textNode(tok.Text))
			continue
		}
		span := element(atom.Span, tok.Class)
		span.AppendChild(textNode(tok.Text))
		code.AppendChild(span)
	}

	pre := element(atom.Pre, classPre)
	pre.AppendChild(code)

	button := element(atom.Button, classCopyButton,
		html.Attribute{Key: "type", Val: "button"},
		html.Attribute{Key: "data-state", Val: string(CopyIdle)},
	)
	button.AppendChild(textNode("Copy"))

	wrapper := element(atom.Div, classCodeWrapper)
	wrapper.AppendChild(button)
	wrapper.AppendChild(pre)

	return wrapper
}

func tableNode(t *Table) *html.Node {
	if t == nil {
		return fragment()
	}

	cell := func(tag atom.Atom, col int, content []Inline) *html.Node {
		n := element(tag, "")
		if col < len(t.Align) && t.Align[col] != AlignNone {
			n.Attr = append(n.Attr, html.Attribute{Key: "align", Val: string(t.Align[col])})
		}
		return appendInlines(n, content)
	}

	table := element(atom.Table, classTable)

	thead := element(atom.Thead, "")
	tr := element(atom.Tr, "")
	for i, c := range t.Header {
		tr.AppendChild(cell(atom.Th, i, c))
	}
	thead.AppendChild(tr)
	table.AppendChild(thead)

	if len(t.Rows) > 0 {
		tbody := element(atom.Tbody, "")
		for _, row := range t.Rows {
			tr := element(atom.Tr, "")
			for i, c := range row {
				tr.AppendChild(cell(atom.Td, i, c))
			}
			tbody.AppendChild(tr)
		}
		table.AppendChild(tbody)
	}

	return table
}

func inlineNode(in Inline) *html.Node {
	switch in.Kind {
	case InlineText:
		return textNode(in.Text)
	case InlineStrong:
		return appendInlines(element(atom.Strong, ""), in.Children)
	case InlineEmphasis:
		return appendInlines(element(atom.Em, ""), in.Children)
	case InlineStrike:
		return appendInlines(element(atom.Del, ""), in.Children)
	case InlineCode:
		n := element(atom.Code, classInlineCode)
		n.AppendChild(textNode(in.Text))
		return n
	case InlineLink:
		n := element(atom.A, classLink,
			html.Attribute{Key: "href", Val: in.URL},
			html.Attribute{Key: "target", Val: in.Target},
			html.Attribute{Key: "rel", Val: in.Rel},
		)
		if in.Title != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "title", Val: in.Title})
		}
		return appendInlines(n, in.Children)
	case InlineImage:
		n := element(atom.Img, "",
			html.Attribute{Key: "src", Val: in.URL},
			html.Attribute{Key: "alt", Val: in.Text},
		)
		if in.Title != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "title", Val: in.Title})
		}
		return n
	case InlineBreak:
		return element(atom.Br, "")
	case InlineCheckbox:
		n := element(atom.Input, "",
			html.Attribute{Key: "type", Val: "checkbox"},
			html.Attribute{Key: "disabled"},
		)
		if in.Checked {
			n.Attr = append(n.Attr, html.Attribute{Key: "checked"})
		}
		return n
	}

	return fragment()
}

func appendBlocks(n *html.Node, blocks []Block) *html.Node {
	for i := range blocks {
		n.AppendChild(blockNode(blocks[i]))
	}

	return n
}

func appendInlines(n *html.Node, inlines []Inline) *html.Node {
	for i := range inlines {
		n.AppendChild(inlineNode(inlines[i]))
	}

	return n
}

func element(a atom.Atom, class string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	n.Attr = append(n.Attr, attrs...)

	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// fragment is rendered as its children only.
func fragment() *html.Node {
	return &html.Node{Type: html.DocumentNode}
}
