package cjk

import (
	"github.com/rs/zerolog"
)

// Options configures a Processor. The zero value suppresses breaks only
// between two wide characters and never inserts punctuation spacing.
type Options struct {
	// Either suppresses a break when at least one side is wide instead of
	// requiring both.
	Either bool
	// NormalizeSoftBreaks splits text tokens with embedded line feeds into
	// discrete break tokens before resolution.
	NormalizeSoftBreaks bool
	// PunctuationSpace is inserted after matching punctuation at a
	// suppressed break. Use ResolvePunctuationSpace to map "half"/"full".
	PunctuationSpace string
	// Punctuation selects the sequences that trigger PunctuationSpace. Nil
	// or empty disables punctuation spacing.
	Punctuation *PunctuationConfig
	// Logger receives one debug event per break decision. Nil discards.
	Logger *zerolog.Logger
	// OnDecision, if set, is called for every break decision.
	OnDecision func(Decision)
}

// Processor runs the break passes over one inline token sequence at a time.
// It is immutable after New and safe for concurrent use; each Process call
// keeps its own caches.
type Processor struct {
	either             bool
	normalize          bool
	considerBoundaries bool
	space              string
	punct              *PunctuationConfig
	log                zerolog.Logger
	onDecision         func(Decision)
}

// New returns a Processor for opts.
func New(opts Options) *Processor {
	p := &Processor{
		either:    opts.Either,
		normalize: opts.NormalizeSoftBreaks,
		// Empty structural tokens at a break only matter when breaks were
		// not split out of the text beforehand.
		considerBoundaries: !opts.NormalizeSoftBreaks,
		onDecision:         opts.OnDecision,
		log:                zerolog.Nop(),
	}
	if opts.Logger != nil {
		p.log = *opts.Logger
	}
	if opts.PunctuationSpace != "" && opts.Punctuation.MaxLength() > 0 {
		p.space = opts.PunctuationSpace
		p.punct = opts.Punctuation
	}
	return p
}

// PunctuationEnabled reports whether the punctuation spacing passes run.
func (p *Processor) PunctuationEnabled() bool {
	return p.space != "" && p.punct.MaxLength() > 0
}

// Process resolves every break in tokens and returns the resulting
// sequence. raw is the paragraph's original inline source; it is only
// consulted by the punctuation spacer. Tokens are mutated in place and the
// returned slice may differ from the input when tokens were split or
// inserted.
func (p *Processor) Process(tokens []*Token, raw string) []*Token {
	if len(tokens) == 0 {
		return tokens
	}
	if p.normalize {
		tokens = NormalizeBreaks(tokens)
	}

	s := &pass{p: p, tokens: tokens}
	s.resolve()
	if p.PunctuationEnabled() {
		s.applyMissingSpacing(raw)
	}
	return s.tokens
}

// pass holds the state of one Process call.
type pass struct {
	p      *Processor
	tokens []*Token
	widths widthCache

	// nextText[i] is the index of the first non-empty text token after i,
	// or -1. nextSkippedEmpty[i] reports whether an empty text token was
	// skipped on the way. Both are built on the first break.
	nextText         []int
	nextSkippedEmpty []bool
}
