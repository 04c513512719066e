package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmalczak/factbook"
)

// Ensure LoggingResolver implements factbook.TopicResolver.
var _ factbook.TopicResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a TopicResolver with debug logging for queries.
type LoggingResolver struct {
	next   factbook.TopicResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next factbook.TopicResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve logs the query outcome and delegates to the wrapped resolver.
func (r *LoggingResolver) Resolve(ctx context.Context, record *factbook.Country, q factbook.Query) (*factbook.Resolution, error) {
	begin := time.Now()
	res, err := r.next.Resolve(ctx, record, q)
	outcome := "error"
	if err == nil {
		outcome = res.Kind.String()
	}
	r.logger.Info("topic query",
		"query", q.Text,
		"outcome", outcome,
		"duration", time.Since(begin),
	)
	return res, err
}
