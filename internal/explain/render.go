package explain

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders provider output. Raw HTML in the source is omitted,
// so a response can never inject markup into the page.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Render converts markdown to HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering explanation: %w", err)
	}
	return buf.String(), nil
}
