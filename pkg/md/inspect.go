package md

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/open-cli-collective/cjk-breaks/pkg/cjk"
)

// BlockReport describes the break decisions made in one inline block.
type BlockReport struct {
	// Index is the position of the block among all inline blocks.
	Index int
	// Kind is the goldmark node kind, e.g. "Paragraph" or "Heading".
	Kind string
	// Line is the 1-based source line the block starts on.
	Line      int
	Raw       string
	Decisions []cjk.Decision
	// Spacing counts the spacing tokens inserted at punctuation boundaries.
	Spacing int
}

// Inspect parses markdown and reports how every soft break would be
// resolved with opts, without rendering. Blocks without line feeds are
// omitted.
func Inspect(markdown []byte, opts ...Option) []BlockReport {
	o := newOptions(opts)
	doc := goldmark.New(goldmark.WithExtensions(extension.GFM)).
		Parser().
		Parse(text.NewReader(markdown))

	var (
		reports []BlockReport
		current *BlockReport
	)
	popts := o.processor()
	popts.OnDecision = func(d cjk.Decision) {
		current.Decisions = append(current.Decisions, d)
		if o.hook != nil {
			o.hook(d)
		}
	}
	proc := cjk.New(popts)

	index := -1
	walkInlineBlocks(doc, func(block ast.Node) {
		index++
		raw := blockSource(block, markdown)
		if !strings.Contains(raw, "\n") {
			return
		}

		current = &BlockReport{
			Index: index,
			Kind:  block.Kind().String(),
			Line:  blockLine(block, markdown),
			Raw:   raw,
		}
		out := proc.Process(flatten(block, markdown), raw)
		for _, tok := range out {
			if tok.Generated {
				current.Spacing++
			}
		}
		reports = append(reports, *current)
	})
	return reports
}
