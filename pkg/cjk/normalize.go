package cjk

import "strings"

// NormalizeBreaks splits every text token containing a line feed into
// alternating text and break tokens, so each break is addressable on its
// own. Derived tokens carry the original token's metadata. Empty segments
// are dropped. The input slice is returned unchanged when nothing needs
// splitting.
func NormalizeBreaks(tokens []*Token) []*Token {
	var out []*Token
	for i, tok := range tokens {
		if tok == nil || tok.Kind != KindText || !strings.Contains(tok.Content, "\n") {
			if out != nil {
				out = append(out, tok)
			}
			continue
		}
		if out == nil {
			out = make([]*Token, 0, len(tokens)+4)
			out = append(out, tokens[:i]...)
		}
		out = append(out, splitText(tok)...)
	}
	if out == nil {
		return tokens
	}
	return out
}

func splitText(tok *Token) []*Token {
	var parts []*Token
	rest := tok.Content
	for {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		if i > 0 {
			parts = append(parts, tok.derive(KindText, rest[:i]))
		}
		parts = append(parts, tok.derive(KindBreak, ""))
		rest = rest[i+1:]
	}
	if rest != "" {
		parts = append(parts, tok.derive(KindText, rest))
	}
	if len(parts) == 0 {
		return []*Token{tok}
	}
	return parts
}
