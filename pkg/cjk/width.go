package cjk

import (
	"golang.org/x/text/width"
)

// Width is the East Asian Width bucket of a character.
type Width int

const (
	WidthNone Width = iota // narrow, neutral or ambiguous
	WidthHalf              // East Asian Halfwidth (H)
	WidthFull              // East Asian Fullwidth (F)
	WidthWide              // East Asian Wide (W)
)

func (w Width) String() string {
	switch w {
	case WidthHalf:
		return "H"
	case WidthFull:
		return "F"
	case WidthWide:
		return "W"
	default:
		return "-"
	}
}

const (
	asciiPrintableMin = 0x21
	asciiPrintableMax = 0x7E

	zeroWidthSpace   = '\u200b'
	ideographicSpace = "\u3000"

	// maxWidthCacheEntries bounds the per-paragraph memo.
	maxWidthCacheEntries = 1024
)

// ClassifyWidth returns the width bucket of r. Everything at or below 0x7E
// is WidthNone without consulting the Unicode tables.
func ClassifyWidth(r rune) Width {
	if r <= asciiPrintableMax {
		return WidthNone
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth:
		return WidthFull
	case width.EastAsianWide:
		return WidthWide
	case width.EastAsianHalfwidth:
		return WidthHalf
	}
	return WidthNone
}

// IsFullOrWide reports whether r is Fullwidth or Wide. Halfwidth forms do
// not count here.
func IsFullOrWide(r rune) bool {
	w := ClassifyWidth(r)
	return w == WidthFull || w == WidthWide
}

func isPrintableASCII(r rune) bool {
	return r >= asciiPrintableMin && r <= asciiPrintableMax
}

// widthCache memoizes ClassifyWidth for one paragraph pass.
type widthCache struct {
	m map[rune]Width
}

func (c *widthCache) classify(r rune) Width {
	if r <= asciiPrintableMax {
		return WidthNone
	}
	if w, ok := c.m[r]; ok {
		return w
	}
	w := ClassifyWidth(r)
	if c.m == nil {
		c.m = make(map[rune]Width)
	}
	if len(c.m) < maxWidthCacheEntries {
		c.m[r] = w
	}
	return w
}

func (c *widthCache) isFullOrWide(r rune) bool {
	w := c.classify(r)
	return w == WidthFull || w == WidthWide
}
