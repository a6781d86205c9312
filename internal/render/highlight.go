package render

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const DefaultStyle = "github-dark"

// Highlighter tokenises code with chroma lexers picked by language hint.
type Highlighter struct {
	style *chroma.Style
}

func NewHighlighter(style string) *Highlighter {
	return &Highlighter{style: styles.Get(style)}
}

// Tokens splits code into classed spans. Unknown or empty languages yield
// a single plain token.
func (h *Highlighter) Tokens(lang, code string) []Token {
	if code == "" {
		return nil
	}

	lexer := lexers.Fallback
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			lexer = l
		}
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return []Token{{Text: code}}
	}

	var result []Token
	for tok := it(); tok != chroma.EOF; tok = it() {
		class := tokenClass(tok.Type)
		last := len(result) - 1
		if last >= 0 && result[last].Class == class {
			result[last].Text += tok.Value
			continue
		}
		result = append(result, Token{Class: class, Text: tok.Value})
	}

	// some lexers append a newline the source did not have
	if last := len(result) - 1; last >= 0 && !strings.HasSuffix(code, "\n") {
		result[last].Text = strings.TrimSuffix(result[last].Text, "\n")
		if result[last].Text == "" {
			result = result[:last]
		}
	}

	return result
}

// WriteCSS writes the stylesheet for the token classes, scoped to ".chroma".
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(w, h.style)
}

func tokenClass(t chroma.TokenType) string {
	for _, tt := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if cls, ok := chroma.StandardTypes[tt]; ok {
			if tt == chroma.Text || tt == chroma.Background {
				return ""
			}
			return cls
		}
	}

	return ""
}
