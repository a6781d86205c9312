package render

type BlockKind string

const (
	BlockHeading       BlockKind = "heading"
	BlockParagraph     BlockKind = "paragraph"
	BlockList          BlockKind = "list"
	BlockListItem      BlockKind = "list_item"
	BlockBlockquote    BlockKind = "blockquote"
	BlockCode          BlockKind = "code"
	BlockTable         BlockKind = "table"
	BlockThematicBreak BlockKind = "thematic_break"
)

// Block is one node of the rendered document. Which fields are set depends
// on Kind:
//
//	heading         Level, ID, Inlines
//	paragraph       Inlines, Tight for list items without a paragraph wrapper
//	list            Ordered, Start, Children (list items)
//	list_item       Children
//	blockquote      Children
//	code            Code
//	table           Table
type Block struct {
	Kind     BlockKind
	Level    int
	ID       string
	Tight    bool
	Ordered  bool
	Start    int
	Inlines  []Inline
	Children []Block
	Code     *CodeBlock
	Table    *Table
}

type InlineKind string

const (
	InlineText     InlineKind = "text"
	InlineStrong   InlineKind = "strong"
	InlineEmphasis InlineKind = "emphasis"
	InlineStrike   InlineKind = "strikethrough"
	InlineCode     InlineKind = "code"
	InlineLink     InlineKind = "link"
	InlineImage    InlineKind = "image"
	InlineBreak    InlineKind = "break"
	InlineCheckbox InlineKind = "checkbox"
)

const (
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer"
)

type Inline struct {
	Kind InlineKind
	// Text is the literal for text and code, the alt text for images.
	Text     string
	URL      string
	Title    string
	Target   string
	Rel      string
	Checked  bool
	Children []Inline
}

type CodeBlock struct {
	Language string
	// Text is the full block content, as placed on the clipboard.
	Text   string
	Tokens []Token
}

// Token is a highlighted span of a code block. Class is the chroma short
// class name, empty for plain text.
type Token struct {
	Class string
	Text  string
}

type Alignment string

const (
	AlignNone   Alignment = ""
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

type Table struct {
	Align  []Alignment
	Header [][]Inline
	Rows   [][][]Inline
}

type Document struct {
	Blocks []Block
}

// CodeBlocks returns the code blocks of the document in reading order,
// including the ones nested in lists and blockquotes.
func (d Document) CodeBlocks() []*CodeBlock {
	var result []*CodeBlock
	var walk func([]Block)
	walk = func(blocks []Block) {
		for i := range blocks {
			if blocks[i].Kind == BlockCode && blocks[i].Code != nil {
				result = append(result, blocks[i].Code)
			}
			walk(blocks[i].Children)
		}
	}
	walk(d.Blocks)

	return result
}

// PlainText flattens inline content to its text, recursively.
func PlainText(inlines []Inline) string {
	var b []byte
	var walk func([]Inline)
	walk = func(list []Inline) {
		for _, in := range list {
			switch in.Kind {
			case InlineText, InlineCode, InlineImage:
				b = append(b, in.Text...)
			case InlineBreak:
				b = append(b, '\n')
			}
			walk(in.Children)
		}
	}
	walk(inlines)

	return string(b)
}
