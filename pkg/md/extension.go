// Package md applies CJK soft-break resolution to goldmark documents and
// converts markdown to HTML or normalized markdown with it enabled.
package md

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/open-cli-collective/cjk-breaks/pkg/cjk"
)

// transformerPriority places the break pass after the built-in transformers
// so it sees the final inline tree. goldmark runs lower priorities first;
// the footnote extension sits at 999.
const transformerPriority = 1000

// Option configures the extension.
type Option func(*options)

type options struct {
	either    bool
	normalize bool
	space     string
	targets   cjk.TargetOptions
	logger    *zerolog.Logger
	hook      func(cjk.Decision)
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) processor() cjk.Options {
	return cjk.Options{
		Either:              o.either,
		NormalizeSoftBreaks: o.normalize,
		PunctuationSpace:    cjk.ResolvePunctuationSpace(o.space),
		Punctuation:         cjk.ResolvePunctuationTargets(o.targets),
		Logger:              o.logger,
		OnDecision:          o.hook,
	}
}

// WithEither suppresses a break when either side is wide.
func WithEither(v bool) Option {
	return func(o *options) { o.either = v }
}

// WithNormalizeSoftBreaks splits line feeds out of text before resolution.
func WithNormalizeSoftBreaks(v bool) Option {
	return func(o *options) { o.normalize = v }
}

// WithPunctuationSpace enables punctuation spacing. space is "half",
// "full", or a literal string; "" disables it.
func WithPunctuationSpace(space string) Option {
	return func(o *options) { o.space = space }
}

// WithPunctuationTargets replaces the default punctuation sequences.
// Calling it with no arguments disables punctuation spacing.
func WithPunctuationTargets(targets ...string) Option {
	return func(o *options) {
		o.targets.Targets = append([]string{}, targets...)
	}
}

// WithPunctuationTargetsDisabled turns punctuation spacing off even when a
// spacing string is configured.
func WithPunctuationTargetsDisabled() Option {
	return func(o *options) { o.targets.Disabled = true }
}

// WithPunctuationTargetsAdd appends sequences to the active list.
func WithPunctuationTargetsAdd(targets ...string) Option {
	return func(o *options) {
		o.targets.Add = append(o.targets.Add, targets...)
	}
}

// WithPunctuationTargetsRemove drops sequences from the active list.
func WithPunctuationTargetsRemove(targets ...string) Option {
	return func(o *options) {
		o.targets.Remove = append(o.targets.Remove, targets...)
	}
}

// WithLogger sets the logger for per-break debug events.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDecisionHook registers a callback invoked for every break decision.
func WithDecisionHook(fn func(cjk.Decision)) Option {
	return func(o *options) { o.hook = fn }
}

// Extension is a goldmark.Extender that resolves soft breaks in every
// inline block of the parsed document.
type Extension struct {
	proc *cjk.Processor
	log  zerolog.Logger
}

// NewExtension returns an extension configured with opts.
func NewExtension(opts ...Option) *Extension {
	o := newOptions(opts)
	e := &Extension{
		proc: cjk.New(o.processor()),
		log:  zerolog.Nop(),
	}
	if o.logger != nil {
		e.log = *o.logger
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	p := m.Parser()
	if p == nil {
		return
	}
	p.AddOptions(parser.WithASTTransformers(
		util.Prioritized(&breakTransformer{ext: e}, transformerPriority),
	))
}

type breakTransformer struct {
	ext *Extension
}

func (t *breakTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	walkInlineBlocks(doc, func(block ast.Node) {
		raw := blockSource(block, source)
		if !strings.Contains(raw, "\n") {
			return
		}
		tokens := flatten(block, source)
		out := t.ext.proc.Process(tokens, raw)
		apply(out)

		t.ext.log.Debug().
			Str("block", block.Kind().String()).
			Int("line", blockLine(block, source)).
			Int("tokens", len(out)).
			Msg("inline block processed")
	})
}
