package cjk

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// visible is the next token that renders content after a punctuation mark.
type visible struct {
	index     int
	fragments []string
	// activeBreak is set when a surviving break lies before the token.
	activeBreak bool
}

// applyMissingSpacing inserts spacing tokens after punctuation whose
// following break was removed without a substitution. The raw source is
// used to confirm that a line feed really separated the two tokens.
func (s *pass) applyMissingSpacing(raw string) {
	if !strings.Contains(raw, "\n") || len(s.tokens) == 0 {
		return
	}
	if len(s.tokens) == 1 {
		s.applySingleTokenSpacing(raw)
		return
	}

	cursor := 0
	for idx := 0; idx < len(s.tokens); idx++ {
		cur := s.tokens[idx]
		if cur == nil || cur.Kind != KindText || cur.Content == "" {
			continue
		}
		if !s.p.punct.Matches(cur.Content, false) {
			continue
		}

		next, ok := s.nextVisible(idx + 1)
		if !ok || next.activeBreak {
			continue
		}
		if tok := s.tokens[next.index]; tok.Kind == KindText && hasLeadingSpace(tok.Content) {
			continue
		}
		if !s.rawBoundaryHasNewline(raw, idx, next, &cursor) {
			continue
		}

		s.insertSpace(next.index)
		idx = next.index
	}
}

func (s *pass) nextVisible(start int) (visible, bool) {
	activeBreak := false
	for idx := start; idx < len(s.tokens); idx++ {
		tok := s.tokens[idx]
		if tok == nil {
			continue
		}
		if tok.IsBreak() {
			activeBreak = true
		}
		frags := afterFragments(tok)
		if len(frags) == 0 {
			continue
		}
		return visible{index: idx, fragments: frags, activeBreak: activeBreak}, true
	}
	return visible{}, false
}

// afterFragments returns the source text a token starts with, as it would
// appear after a line feed in the raw source. Inline code yields several
// candidates because the host may or may not keep the backticks in Markup.
func afterFragments(tok *Token) []string {
	switch tok.Kind {
	case KindText, KindRawInline:
		if tok.Content == "" {
			return nil
		}
		return []string{tok.Content}
	case KindCodeInline:
		var frags []string
		if tok.Markup != "" && tok.Content != "" {
			frags = append(frags, tok.Markup+tok.Content)
		}
		if tok.Markup != "" {
			frags = append(frags, tok.Markup)
		}
		if tok.Content != "" {
			frags = append(frags, tok.Content)
		}
		return frags
	case KindImage:
		return []string{"!["}
	case KindLinkOpen:
		if tok.Markup != "" {
			return []string{tok.Markup}
		}
		return []string{"["}
	}
	if tok.Nesting == 1 && tok.Markup != "" {
		return []string{tok.Markup}
	}
	if tok.Kind == KindInline && tok.Content != "" {
		return []string{tok.Content}
	}
	return nil
}

// rawBoundaryHasNewline looks for "<punctuation token><skipped markup>\n<next
// fragment>" in raw at or after *cursor, advancing the cursor on success so
// repeated marks match in order.
func (s *pass) rawBoundaryHasNewline(raw string, from int, next visible, cursor *int) bool {
	var prefix strings.Builder
	prefix.WriteString(s.tokens[from].Content)
	for k := from + 1; k < next.index; k++ {
		if tok := s.tokens[k]; tok != nil {
			prefix.WriteString(tok.Markup)
		}
	}
	prefix.WriteByte('\n')

	for _, frag := range next.fragments {
		if frag == "" {
			continue
		}
		candidate := prefix.String() + frag
		pos := strings.Index(raw[*cursor:], candidate)
		if pos < 0 {
			continue
		}
		*cursor += pos + len(candidate) - len(frag)
		return true
	}
	return false
}

// insertSpace inserts a spacing token before s.tokens[at].
func (s *pass) insertSpace(at int) {
	ref := s.tokens[at]
	space := &Token{
		Kind:      KindText,
		Content:   s.p.space,
		Level:     ref.Level,
		Meta:      ref.Meta,
		Generated: true,
	}
	s.tokens = append(s.tokens, nil)
	copy(s.tokens[at+1:], s.tokens[at:])
	s.tokens[at] = space
}

// applySingleTokenSpacing handles a paragraph that collapsed into one text
// token. Punctuation boundaries are recomputed from the raw lines and the
// spacing string is spliced into the token's content.
func (s *pass) applySingleTokenSpacing(raw string) {
	tok := s.tokens[0]
	if tok == nil || tok.Kind != KindText || tok.Content == "" {
		return
	}
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return
	}

	content := tok.Content
	changed := false
	pos := 0
	for i := 0; i < len(lines)-1; i++ {
		left, right := lines[i], lines[i+1]
		pos += len(left)
		if pos > len(content) {
			break
		}

		separated, sepLen := s.separatorAt(content[pos:], right)
		if !separated && s.wantsSpaceBetween(left, right) {
			content = content[:pos] + s.p.space + content[pos:]
			changed = true
			pos += len(s.p.space)
		}
		pos += sepLen
	}
	if changed {
		tok.Content = content
	}
}

// separatorAt reports whether rest already starts with whitespace or the
// spacing string. sepLen is the length of a separator that does not come
// from the next raw line, i.e. one a previous pass left at the boundary.
func (s *pass) separatorAt(rest, nextLine string) (separated bool, sepLen int) {
	if rest == "" {
		return false, 0
	}
	sep := ""
	if r, size := utf8.DecodeRuneInString(rest); unicode.IsSpace(r) {
		sep = rest[:size]
	} else if strings.HasPrefix(rest, s.p.space) {
		sep = s.p.space
	}
	if sep == "" {
		return false, 0
	}
	if strings.HasPrefix(nextLine, sep) {
		return true, 0
	}
	return true, len(sep)
}

func (s *pass) wantsSpaceBetween(left, right string) bool {
	tail := visibleTail(left, s.p.punct.MaxLength())
	if tail == "" || !s.p.punct.Matches(tail, false) {
		return false
	}
	head, ok := visibleHead(right)
	if !ok {
		return false
	}
	return isPrintableASCII(head) || s.widths.isFullOrWide(head)
}

// visibleTail returns up to max trailing runes of raw, skipping whitespace
// and closing delimiter characters that are not rendered text.
func visibleTail(raw string, max int) string {
	if raw == "" || max <= 0 {
		return ""
	}
	var kept []rune
	for i := len(raw); i > 0 && len(kept) < max; {
		r, size := utf8.DecodeLastRuneInString(raw[:i])
		i -= size
		if unicode.IsSpace(r) || isMarkupCloser(r) {
			continue
		}
		kept = append(kept, r)
	}
	for l, r := 0, len(kept)-1; l < r; l, r = l+1, r-1 {
		kept[l], kept[r] = kept[r], kept[l]
	}
	return string(kept)
}

// visibleHead returns the first non-whitespace rune of raw.
func visibleHead(raw string) (rune, bool) {
	for _, r := range raw {
		if !unicode.IsSpace(r) {
			return r, true
		}
	}
	return 0, false
}

func isMarkupCloser(r rune) bool {
	return r == '*' || r == '_' || r == '~' || r == '`'
}

func hasLeadingSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}
