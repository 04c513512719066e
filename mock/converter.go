package mock

import "github.com/jmalczak/factbook"

var _ factbook.Converter = (*Converter)(nil)

// Converter is a mock implementation of factbook.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
