package md

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// New returns a goldmark instance with GFM and break resolution enabled.
// Raw HTML is passed through so inline markup survives a round trip.
func New(opts ...Option) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			NewExtension(opts...),
		),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// ToHTML converts markdown to HTML with soft breaks resolved.
func ToHTML(markdown []byte, opts ...Option) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := New(opts...).Convert(markdown, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
