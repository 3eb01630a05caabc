package cjk

import "unicode"

// IsHangul reports whether r is in the Hangul script: jamo, compatibility
// jamo, enclosed forms, syllables and halfwidth jamo. Breaks next to Hangul
// are never suppressed.
func IsHangul(r rune) bool {
	return unicode.Is(unicode.Hangul, r)
}
