package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTML converts a markdown document produced by this package into an html
// fragment. Raw html in the document is not rendered.
func HTML(markdown string) (string, error) {
	conv := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := conv.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("cannot convert to html: %w", err)
	}
	return buf.String(), nil
}
