package md

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// walkInlineBlocks calls fn for every block whose children are inline
// nodes: paragraphs, headings, tight list items and table cells.
func walkInlineBlocks(doc ast.Node, fn func(block ast.Node)) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		first := n.FirstChild()
		if first == nil || first.Type() != ast.TypeInline {
			return ast.WalkContinue, nil
		}
		fn(n)
		return ast.WalkSkipChildren, nil
	})
}

// blockSource rebuilds the inline source of a block from its lines, with
// indentation and line endings stripped so lines are joined by "\n".
func blockSource(block ast.Node, source []byte) string {
	lines := block.Lines()
	if lines == nil || lines.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := string(seg.Value(source))
		line = strings.TrimRight(line, "\r\n")
		line = strings.TrimLeft(line, " \t")
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}

// blockLine returns the 1-based source line a block starts on, or 0.
func blockLine(block ast.Node, source []byte) int {
	lines := block.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0
	}
	start := lines.At(0).Start
	if start > len(source) {
		return 0
	}
	return bytes.Count(source[:start], []byte{'\n'}) + 1
}
