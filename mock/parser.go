package mock

import "github.com/jmalczak/factbook"

var _ factbook.Parser = (*Parser)(nil)

// Parser is a mock implementation of factbook.Parser.
type Parser struct {
	ParseFn func(html string) ([]factbook.Topic, error)
}

func (p *Parser) Parse(html string) ([]factbook.Topic, error) {
	return p.ParseFn(html)
}
