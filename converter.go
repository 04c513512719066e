package factbook

// Converter transforms HTML content into Markdown text.
// The parser uses it to clean up topic value cells that carry markup.
type Converter interface {
	Convert(html string) (string, error)
}
