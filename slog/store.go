// Package slog provides logging decorators built on the standard
// log/slog package.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmalczak/factbook"
)

// Ensure LoggingStore implements factbook.KnowledgeStore.
var _ factbook.KnowledgeStore = (*LoggingStore)(nil)

// LoggingStore wraps a KnowledgeStore with debug logging for lookups.
type LoggingStore struct {
	next   factbook.KnowledgeStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next factbook.KnowledgeStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Country logs the lookup and delegates to the wrapped store.
func (s *LoggingStore) Country(ctx context.Context, name string) (*factbook.Country, error) {
	begin := time.Now()
	country, err := s.next.Country(ctx, name)
	s.logger.Info("country lookup",
		"name", name,
		"found", err == nil,
		"duration", time.Since(begin),
	)
	return country, err
}

// Countries delegates to the wrapped store.
func (s *LoggingStore) Countries(ctx context.Context) ([]*factbook.Country, error) {
	return s.next.Countries(ctx)
}
