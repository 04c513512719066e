package mock

import (
	"context"

	"github.com/jmalczak/factbook"
)

var _ factbook.TopicResolver = (*TopicResolver)(nil)

// TopicResolver is a mock implementation of factbook.TopicResolver.
type TopicResolver struct {
	ResolveFn func(ctx context.Context, record *factbook.Country, q factbook.Query) (*factbook.Resolution, error)
}

func (r *TopicResolver) Resolve(ctx context.Context, record *factbook.Country, q factbook.Query) (*factbook.Resolution, error) {
	return r.ResolveFn(ctx, record, q)
}
