package cjk

import (
	"strings"
	"unicode/utf8"
)

// Reason explains a break decision.
type Reason string

const (
	ReasonZeroWidthSpace Reason = "zwsp"
	ReasonWide           Reason = "wide"
	ReasonNarrow         Reason = "narrow"
	ReasonHangul         Reason = "hangul"
	ReasonInlineBoundary Reason = "inline-boundary"
)

// Decision records how one break was resolved.
type Decision struct {
	// Index is the position of the token holding the break.
	Index int
	// Embedded is set when the break is a line feed inside a text token.
	Embedded  bool
	Last      rune
	Next      rune
	WidthLast Width
	WidthNext Width
	Removed   bool
	Reason    Reason
	// Inserted is the punctuation spacing that replaced a removed break.
	Inserted string
}

// scanState is carried across the left-to-right resolver scan.
type scanState struct {
	lastText string
	hasLast  bool
	// sawEmpty is set when an empty text token followed the last
	// non-empty one.
	sawEmpty bool
}

func (s *pass) resolve() {
	var st scanState
	for i, tok := range s.tokens {
		if tok == nil {
			continue
		}
		switch {
		case tok.IsBreak():
			s.resolveBreak(i, tok, &st)
		case tok.Kind == KindText && !s.p.normalize && strings.Contains(tok.Content, "\n"):
			s.resolveEmbedded(i, tok, &st)
		}

		if tok.Kind != KindText {
			continue
		}
		if tok.Content == "" {
			if s.p.considerBoundaries {
				st.sawEmpty = true
			}
			continue
		}
		st.lastText = tok.Content
		st.hasLast = true
		st.sawEmpty = false
	}
}

func (s *pass) resolveBreak(i int, tok *Token, st *scanState) {
	s.buildNextInfo()

	nextIdx := s.nextText[i]
	var nextText string
	if nextIdx >= 0 {
		nextText = s.tokens[nextIdx].Content
	}
	skipped := s.p.considerBoundaries && (st.sawEmpty || s.nextSkippedEmpty[i])

	d := s.evaluate(st.lastText, st.hasLast, nextText, nextIdx >= 0, skipped)
	d.Index = i
	if d.Removed {
		tok.Kind = KindText
		tok.Content = d.Inserted
	}
	s.report(d)
}

// resolveEmbedded resolves line feeds inside a single text token. The
// neighbours of each line feed come from the token itself, falling back to
// the surrounding text tokens at its edges. A line feed at an edge is
// dampened like a break token when an empty text token lies across it.
func (s *pass) resolveEmbedded(i int, tok *Token, st *scanState) {
	s.buildNextInfo()

	var out strings.Builder
	rest := tok.Content
	for {
		j := strings.IndexByte(rest, '\n')
		if j < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:j])
		rest = rest[j+1:]

		skipped := false
		lastText, hasLast := out.String(), out.Len() > 0
		if !hasLast {
			lastText, hasLast = st.lastText, st.hasLast
			skipped = st.sawEmpty
		}
		nextText, hasNext := rest, rest != ""
		if !hasNext {
			if idx := s.nextText[i]; idx >= 0 {
				nextText, hasNext = s.tokens[idx].Content, true
			}
			skipped = skipped || s.nextSkippedEmpty[i]
		}

		d := s.evaluate(lastText, hasLast, nextText, hasNext, s.p.considerBoundaries && skipped)
		d.Index = i
		d.Embedded = true
		if d.Removed {
			out.WriteString(d.Inserted)
		} else {
			out.WriteByte('\n')
		}
		s.report(d)
	}
	tok.Content = out.String()
}

// evaluate decides whether the break between lastText and nextText is
// removed and what, if anything, replaces it.
func (s *pass) evaluate(lastText string, hasLast bool, nextText string, hasNext, skippedEmpty bool) Decision {
	last, next := ' ', ' '
	if hasLast {
		last, _ = utf8.DecodeLastRuneInString(lastText)
	}
	if hasNext {
		next, _ = utf8.DecodeRuneInString(nextText)
	}

	d := s.decide(last, next, skippedEmpty)
	if d.Removed {
		d.Inserted = s.punctuationSpaceFor(lastText, hasLast, hasNext, last, next)
	}
	return d
}

func (s *pass) decide(last, next rune, skippedEmpty bool) Decision {
	d := Decision{Last: last, Next: next}

	// A zero width space already says "no gap here".
	if last == zeroWidthSpace || next == zeroWidthSpace {
		d.Removed = true
		d.Reason = ReasonZeroWidthSpace
		return d
	}

	d.WidthLast = s.widths.classify(last)
	d.WidthNext = s.widths.classify(next)
	wideLast := d.WidthLast != WidthNone
	wideNext := d.WidthNext != WidthNone

	reason := ReasonNarrow
	if skippedEmpty && wideLast && wideNext {
		wideLast, wideNext = false, false
		reason = ReasonInlineBoundary
	}

	var hit bool
	if s.p.either {
		hit = wideLast || wideNext
	} else {
		hit = wideLast && wideNext
	}
	switch {
	case !hit:
		d.Reason = reason
	case IsHangul(last) || IsHangul(next):
		d.Reason = ReasonHangul
	default:
		d.Removed = true
		d.Reason = ReasonWide
	}
	return d
}

// punctuationSpaceFor returns the spacing that replaces a removed break, or
// "" when the break should simply vanish.
func (s *pass) punctuationSpaceFor(lastText string, hasLast, hasNext bool, last, next rune) string {
	if !s.p.PunctuationEnabled() || !hasLast || !hasNext || next == zeroWidthSpace {
		return ""
	}
	if !s.p.punct.hasEndRune(last) || !s.p.punct.Matches(lastText, true) {
		return ""
	}
	if s.widths.isFullOrWide(next) || isPrintableASCII(next) {
		return s.p.space
	}
	return ""
}

func (s *pass) buildNextInfo() {
	if s.nextText != nil {
		return
	}
	n := len(s.tokens)
	s.nextText = make([]int, n)
	s.nextSkippedEmpty = make([]bool, n)

	next := -1
	sawEmpty := false
	for i := n - 1; i >= 0; i-- {
		s.nextText[i] = next
		s.nextSkippedEmpty[i] = sawEmpty

		tok := s.tokens[i]
		if tok == nil || tok.Kind != KindText {
			continue
		}
		if tok.Content == "" {
			sawEmpty = true
			continue
		}
		next = i
		sawEmpty = false
	}
}

func (s *pass) report(d Decision) {
	s.p.log.Debug().
		Int("index", d.Index).
		Bool("embedded", d.Embedded).
		Str("last", string(d.Last)).
		Str("next", string(d.Next)).
		Bool("removed", d.Removed).
		Str("reason", string(d.Reason)).
		Str("inserted", d.Inserted).
		Msg("break resolved")
	if s.p.onDecision != nil {
		s.p.onDecision(d)
	}
}
