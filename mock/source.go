package mock

import (
	"context"

	"github.com/jmalczak/factbook"
)

var _ factbook.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of factbook.PageSource.
type PageSource struct {
	PageFn func(ctx context.Context, code string) (string, error)
}

func (s *PageSource) Page(ctx context.Context, code string) (string, error) {
	return s.PageFn(ctx, code)
}

var _ factbook.CountryCatalog = (*CountryCatalog)(nil)

// CountryCatalog is a mock implementation of factbook.CountryCatalog.
type CountryCatalog struct {
	ListFn        func(ctx context.Context) ([]factbook.CountryRef, error)
	CodeForNameFn func(ctx context.Context, name string) (string, error)
}

func (c *CountryCatalog) List(ctx context.Context) ([]factbook.CountryRef, error) {
	return c.ListFn(ctx)
}

func (c *CountryCatalog) CodeForName(ctx context.Context, name string) (string, error) {
	return c.CodeForNameFn(ctx, name)
}
