// Package cjk resolves soft line breaks in inline token streams for
// East Asian text.
//
// A soft break between two wide characters (Han, Kana, fullwidth forms)
// carries no space, so it is suppressed; between Latin characters it is
// kept. Hangul is exempt because Korean uses inter-word spacing. An optional
// second pass inserts a spacing string after sentence-final punctuation
// whose following break was suppressed.
//
// The package is host-agnostic: a markdown parser adapter flattens a
// paragraph's inline content into []*Token, calls Processor.Process, and
// applies the result back to its own tree (see pkg/md for goldmark).
package cjk

// Kind identifies the token variants the break passes care about.
type Kind int

const (
	KindText       Kind = iota // plain text
	KindBreak                  // soft line break
	KindImage                  // image (leaf; renders its own alt text)
	KindLinkOpen               // opening delimiter of a link
	KindCodeInline             // inline code span
	KindRawInline              // inline raw markup (HTML)
	KindInline                 // nested inline container carrying content
	KindOther                  // anything else; contributes no text
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBreak:
		return "break"
	case KindImage:
		return "image"
	case KindLinkOpen:
		return "link_open"
	case KindCodeInline:
		return "code_inline"
	case KindRawInline:
		return "raw_inline"
	case KindInline:
		return "inline"
	default:
		return "other"
	}
}

// Token is one unit of inline content.
//
// Level, Attrs, Map and Meta are host metadata. The passes never interpret
// them; they are copied onto every token derived from this one.
type Token struct {
	Kind    Kind
	Content string
	// Markup is the literal source delimiter, e.g. "*", "`", "[".
	Markup string
	// Nesting is 1 for an opening delimiter, -1 for a closing one, 0 otherwise.
	Nesting int
	Level   int
	Attrs   [][2]string
	// Map is the host's source span for the token.
	Map  []int
	Meta any
	// Generated marks tokens created by the punctuation spacer rather than
	// by the host parser.
	Generated bool
}

// NewText returns a text token.
func NewText(content string) *Token {
	return &Token{Kind: KindText, Content: content}
}

// NewBreak returns a soft break token.
func NewBreak() *Token {
	return &Token{Kind: KindBreak}
}

// IsBreak reports whether t is a break marker: either an explicit break
// token or a text token consisting of a single line feed.
func (t *Token) IsBreak() bool {
	return t.Kind == KindBreak || (t.Kind == KindText && t.Content == "\n")
}

// Clone returns a copy of t with its own Attrs and Map slices.
func (t *Token) Clone() *Token {
	c := *t
	if t.Attrs != nil {
		c.Attrs = make([][2]string, len(t.Attrs))
		copy(c.Attrs, t.Attrs)
	}
	if t.Map != nil {
		c.Map = make([]int, len(t.Map))
		copy(c.Map, t.Map)
	}
	return &c
}

// derive clones t's metadata into a new token of the given kind and content.
func (t *Token) derive(kind Kind, content string) *Token {
	c := t.Clone()
	c.Kind = kind
	c.Content = content
	c.Generated = false
	if kind == KindBreak {
		c.Markup = ""
	}
	return c
}
