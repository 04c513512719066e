package mock

import (
	"context"

	"github.com/jmalczak/factbook"
)

var _ factbook.KnowledgeStore = (*KnowledgeStore)(nil)

// KnowledgeStore is a mock implementation of factbook.KnowledgeStore.
type KnowledgeStore struct {
	CountryFn   func(ctx context.Context, name string) (*factbook.Country, error)
	CountriesFn func(ctx context.Context) ([]*factbook.Country, error)
}

func (s *KnowledgeStore) Country(ctx context.Context, name string) (*factbook.Country, error) {
	return s.CountryFn(ctx, name)
}

func (s *KnowledgeStore) Countries(ctx context.Context) ([]*factbook.Country, error) {
	return s.CountriesFn(ctx)
}
