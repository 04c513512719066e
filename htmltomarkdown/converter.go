// Package htmltomarkdown converts topic value HTML into Markdown text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/jmalczak/factbook"
)

// Ensure Converter implements factbook.Converter at compile time.
var _ factbook.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to clean fact page value cells.
// Fact page values are short fragments, so only the base and commonmark
// plugins are loaded.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into trimmed Markdown text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", factbook.Errorf(factbook.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
