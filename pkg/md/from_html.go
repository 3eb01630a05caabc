package md

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ToMarkdown resolves soft breaks in markdown and returns the result as
// markdown again. The document is rendered to HTML and converted back, so
// formatting is normalized along the way.
func ToMarkdown(markdown []byte, opts ...Option) (string, error) {
	html, err := ToHTML(markdown, opts...)
	if err != nil {
		return "", err
	}
	return FromHTML(html)
}

// FromHTML converts HTML to markdown.
func FromHTML(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	// Clean up the output - trim whitespace
	return strings.TrimSpace(markdown), nil
}
