package md

import (
	"github.com/yuin/goldmark/ast"

	"github.com/open-cli-collective/cjk-breaks/pkg/cjk"
)

// apply writes processed tokens back into the AST they were flattened from.
// Removed breaks clear the soft line break flag of their text node, spacing
// content becomes ast.String nodes.
func apply(tokens []*cjk.Token) {
	var prev ast.Node
	for _, tok := range tokens {
		b, _ := tok.Meta.(*binding)
		if tok.Generated {
			insertSpacing(tok.Content, b, prev)
			continue
		}
		if b == nil {
			continue
		}
		switch b.role {
		case roleText:
			applyText(tok, b)
		case roleBreak:
			applyBreak(tok, b)
		}
		prev = b.node
	}
}

func applyText(tok *cjk.Token, b *binding) {
	if tok.Content == b.text {
		return
	}
	switch n := b.node.(type) {
	case *ast.Text:
		parent := n.Parent()
		if parent == nil {
			return
		}
		parent.InsertBefore(parent, n, ast.NewString([]byte(tok.Content)))
		n.Segment = n.Segment.WithStop(n.Segment.Start)
	case *ast.String:
		n.Value = []byte(tok.Content)
	}
}

func applyBreak(tok *cjk.Token, b *binding) {
	if tok.Kind == cjk.KindBreak {
		return
	}
	n, ok := b.node.(*ast.Text)
	if !ok {
		return
	}
	n.SetSoftLineBreak(false)
	if tok.Content == "" {
		return
	}
	if parent := n.Parent(); parent != nil {
		parent.InsertAfter(parent, n, ast.NewString([]byte(tok.Content)))
	}
}

// insertSpacing places a spacing node before the node the following token
// came from, or after the previous node when the token has no binding.
func insertSpacing(content string, b *binding, prev ast.Node) {
	s := ast.NewString([]byte(content))
	switch {
	case b != nil && b.node.Parent() != nil:
		parent := b.node.Parent()
		parent.InsertBefore(parent, b.node, s)
	case prev != nil && prev.Parent() != nil:
		parent := prev.Parent()
		parent.InsertAfter(parent, prev, s)
	}
}
