package cjk

import (
	"sort"
	"unicode/utf8"
)

// Spacing option values accepted by ResolvePunctuationSpace.
const (
	SpaceHalf = "half"
	SpaceFull = "full"
)

// DefaultPunctuationTargets returns the sentence-final sequences used when
// no target options are given. Each call returns a fresh slice.
func DefaultPunctuationTargets() []string {
	return []string{"！", "？", "⁉", "！？", "？！", "!?", "?!", ".", ":"}
}

// PunctuationConfig is an immutable set of punctuation sequences. Lengths
// are counted in runes.
type PunctuationConfig struct {
	sequences map[string]struct{}
	maxLength int
	// lengths holds the distinct sequence lengths, longest first.
	lengths []int
	// endRunes holds every rune that ends at least one sequence.
	endRunes map[rune]struct{}
}

// NewPunctuationConfig builds a config from targets. Empty strings are
// skipped and duplicates collapse.
func NewPunctuationConfig(targets []string) *PunctuationConfig {
	c := &PunctuationConfig{
		sequences: make(map[string]struct{}),
		endRunes:  make(map[rune]struct{}),
	}
	seenLength := make(map[int]bool)
	for _, target := range targets {
		if target == "" {
			continue
		}
		if _, dup := c.sequences[target]; dup {
			continue
		}
		c.sequences[target] = struct{}{}

		n := utf8.RuneCountInString(target)
		if n > c.maxLength {
			c.maxLength = n
		}
		if !seenLength[n] {
			seenLength[n] = true
			c.lengths = append(c.lengths, n)
		}
		end, _ := utf8.DecodeLastRuneInString(target)
		c.endRunes[end] = struct{}{}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(c.lengths)))
	return c
}

// Len returns the number of sequences. A nil config has none.
func (c *PunctuationConfig) Len() int {
	if c == nil {
		return 0
	}
	return len(c.sequences)
}

// MaxLength returns the length of the longest sequence.
func (c *PunctuationConfig) MaxLength() int {
	if c == nil {
		return 0
	}
	return c.maxLength
}

// Lengths returns the distinct sequence lengths, longest first.
func (c *PunctuationConfig) Lengths() []int {
	if c == nil {
		return nil
	}
	out := make([]int, len(c.lengths))
	copy(out, c.lengths)
	return out
}

// Has reports whether seq is one of the configured sequences.
func (c *PunctuationConfig) Has(seq string) bool {
	if c == nil {
		return false
	}
	_, ok := c.sequences[seq]
	return ok
}

// Sequences returns the configured sequences in sorted order.
func (c *PunctuationConfig) Sequences() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.sequences))
	for s := range c.sequences {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (c *PunctuationConfig) hasEndRune(r rune) bool {
	if c == nil {
		return false
	}
	_, ok := c.endRunes[r]
	return ok
}

// Matches reports whether some suffix of trailing equals a configured
// sequence. Unless skipEndCheck is set, a trailing rune that ends no
// sequence rejects early; the result is the same either way.
func (c *PunctuationConfig) Matches(trailing string, skipEndCheck bool) bool {
	if c == nil || c.maxLength == 0 || trailing == "" {
		return false
	}
	if !skipEndCheck {
		end, _ := utf8.DecodeLastRuneInString(trailing)
		if !c.hasEndRune(end) {
			return false
		}
	}
	for _, n := range c.lengths {
		suffix, ok := lastRunes(trailing, n)
		if !ok {
			continue
		}
		if _, hit := c.sequences[suffix]; hit {
			return true
		}
	}
	return false
}

// lastRunes returns the final n runes of s, or false if s is shorter.
func lastRunes(s string, n int) (string, bool) {
	i := len(s)
	for ; n > 0; n-- {
		if i == 0 {
			return "", false
		}
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:], true
}

// TargetOptions selects the punctuation sequences that trigger spacing.
type TargetOptions struct {
	// Targets replaces the default list when non-nil. A non-nil empty slice
	// disables punctuation spacing.
	Targets []string
	// Disabled turns punctuation spacing off regardless of the other fields.
	Disabled bool
	// Add is appended to the base (explicit or default) list.
	Add []string
	// Remove drops sequences from the combined list by exact match.
	Remove []string
}

func (o TargetOptions) isZero() bool {
	return o.Targets == nil && !o.Disabled && o.Add == nil && o.Remove == nil
}

// ResolvePunctuationTargets computes (base ∪ Add) \ Remove. It returns nil
// when the result is empty or spacing is disabled.
func ResolvePunctuationTargets(opts TargetOptions) *PunctuationConfig {
	if opts.isZero() {
		return NewPunctuationConfig(DefaultPunctuationTargets())
	}
	if opts.Disabled {
		return nil
	}

	base := DefaultPunctuationTargets()
	if opts.Targets != nil {
		if len(opts.Targets) == 0 {
			return nil
		}
		base = append([]string(nil), opts.Targets...)
	}
	base = append(base, opts.Add...)

	if len(opts.Remove) > 0 {
		remove := NewPunctuationConfig(opts.Remove)
		if remove.Len() > 0 {
			kept := base[:0]
			for _, target := range base {
				if !remove.Has(target) {
					kept = append(kept, target)
				}
			}
			base = kept
		}
	}

	cfg := NewPunctuationConfig(base)
	if cfg.Len() == 0 {
		return nil
	}
	return cfg
}

// ResolvePunctuationSpace maps a spacing option to the string inserted
// after punctuation: "half" is U+0020, "full" is U+3000, any other
// non-empty value is used literally. An empty option disables the feature.
func ResolvePunctuationSpace(option string) string {
	switch option {
	case "":
		return ""
	case SpaceHalf:
		return " "
	case SpaceFull:
		return ideographicSpace
	}
	return option
}
