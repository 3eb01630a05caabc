package md

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/open-cli-collective/cjk-breaks/pkg/cjk"
)

// role says which part of an AST node a token stands for.
type role int

const (
	roleText role = iota
	roleBreak
	roleOpen
	roleClose
	roleLeaf
)

// binding ties a token back to the node it was flattened from. It is stored
// in Token.Meta, so spacing tokens inserted before a token inherit it.
type binding struct {
	node ast.Node
	role role
	// text is the content the token was created with.
	text string
}

// flattener turns the inline children of one block into a token sequence.
type flattener struct {
	source []byte
	tokens []*cjk.Token
}

func flatten(block ast.Node, source []byte) []*cjk.Token {
	f := &flattener{source: source}
	f.children(block, 0)
	return f.tokens
}

func (f *flattener) children(n ast.Node, level int) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		f.node(c, level)
	}
}

func (f *flattener) node(n ast.Node, level int) {
	switch node := n.(type) {
	case *ast.Text:
		// Empty segments are left over from delimiters at line ends.
		if value := node.Segment.Value(f.source); len(value) > 0 {
			f.emit(&cjk.Token{Kind: cjk.KindText, Content: string(value), Level: level}, node, roleText)
		}
		switch {
		case node.SoftLineBreak():
			f.emit(&cjk.Token{Kind: cjk.KindBreak, Level: level}, node, roleBreak)
		case node.HardLineBreak():
			f.emit(&cjk.Token{Kind: cjk.KindOther, Level: level}, node, roleLeaf)
		}

	case *ast.String:
		if len(node.Value) > 0 {
			f.emit(&cjk.Token{Kind: cjk.KindText, Content: string(node.Value), Level: level}, node, roleText)
		}

	case *ast.Emphasis:
		f.container(node, level, cjk.KindOther, f.emphasisMarkup(node))

	case *extast.Strikethrough:
		f.container(node, level, cjk.KindOther, "~~")

	case *ast.Link:
		f.container(node, level, cjk.KindLinkOpen, "")

	case *ast.AutoLink:
		f.emit(&cjk.Token{Kind: cjk.KindOther, Nesting: 1, Level: level}, node, roleOpen)
		label := string(node.Label(f.source))
		f.emit(&cjk.Token{Kind: cjk.KindText, Content: label, Level: level + 1}, node, roleLeaf)
		f.emit(&cjk.Token{Kind: cjk.KindOther, Nesting: -1, Level: level}, node, roleClose)

	case *ast.Image:
		f.emit(&cjk.Token{Kind: cjk.KindImage, Level: level}, node, roleLeaf)

	case *ast.CodeSpan:
		f.emit(&cjk.Token{
			Kind:    cjk.KindCodeInline,
			Content: f.segmentsText(node),
			Markup:  f.codeMarkup(node),
			Level:   level,
		}, node, roleLeaf)

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			b.Write(seg.Value(f.source))
		}
		f.emit(&cjk.Token{Kind: cjk.KindRawInline, Content: b.String(), Level: level}, node, roleLeaf)

	default:
		if n.HasChildren() {
			f.container(n, level, cjk.KindOther, "")
			return
		}
		f.emit(&cjk.Token{Kind: cjk.KindOther, Level: level}, n, roleLeaf)
	}
}

func (f *flattener) container(n ast.Node, level int, open cjk.Kind, markup string) {
	f.emit(&cjk.Token{Kind: open, Nesting: 1, Markup: markup, Level: level}, n, roleOpen)
	f.children(n, level+1)
	f.emit(&cjk.Token{Kind: cjk.KindOther, Nesting: -1, Markup: markup, Level: level}, n, roleClose)
}

func (f *flattener) emit(tok *cjk.Token, n ast.Node, r role) {
	tok.Meta = &binding{node: n, role: r, text: tok.Content}
	f.tokens = append(f.tokens, tok)
}

// emphasisMarkup recovers the delimiter run of an emphasis node from the
// byte preceding its first text segment.
func (f *flattener) emphasisMarkup(n *ast.Emphasis) string {
	delim := "*"
	if t := firstText(n); t != nil && t.Segment.Start > 0 {
		if c := f.source[t.Segment.Start-1]; c == '_' || c == '*' {
			delim = string(c)
		}
	}
	return strings.Repeat(delim, n.Level)
}

// codeMarkup counts the backticks that open a code span.
func (f *flattener) codeMarkup(n *ast.CodeSpan) string {
	t, ok := n.FirstChild().(*ast.Text)
	if !ok {
		return "`"
	}
	i := t.Segment.Start - 1
	// The parser trims one space of padding from the content.
	if i >= 0 && i < len(f.source) && (f.source[i] == ' ' || f.source[i] == '\n') {
		i--
	}
	count := 0
	for ; i >= 0 && f.source[i] == '`'; i-- {
		count++
	}
	if count == 0 {
		return "`"
	}
	return strings.Repeat("`", count)
}

func (f *flattener) segmentsText(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(f.source))
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return b.String()
}

func firstText(n ast.Node) *ast.Text {
	var found *ast.Text
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok && t.Segment.Len() > 0 {
			found = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
