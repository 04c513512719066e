// Package inmem provides the in-memory knowledge base built once at startup
// from the country catalog and page archive.
package inmem

import (
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/jmalczak/factbook"
	"github.com/jmalczak/factbook/bloom"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ factbook.KnowledgeStore = (*Store)(nil)

// Bloom filter sizing for the name index.
const (
	// filterFalsePositiveRate is acceptable because a false positive only
	// costs two map probes before ENOTFOUND.
	filterFalsePositiveRate = 0.01
)

// Store is an immutable in-memory knowledge base. After Load returns it has
// no writers, so it is safe for any number of concurrent readers without
// locking.
type Store struct {
	countries []*factbook.Country          // catalog order
	byName    map[string]*factbook.Country // normalized display name
	byCode    map[string]*factbook.Country // page code
	names     *bloom.Filter
}

// Country retrieves a record by display name or page code.
func (s *Store) Country(ctx context.Context, name string) (*factbook.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := factbook.NormalizeName(name)
	if key == "" {
		return nil, factbook.Errorf(factbook.EINVALID, "country name required")
	}

	// Definitive rejection for names the filter has never seen.
	if !s.names.Test(key) {
		return nil, factbook.Errorf(factbook.ENOTFOUND, "country %q not recognized", name)
	}

	if c, ok := s.byName[key]; ok {
		return c, nil
	}
	if c, ok := s.byCode[key]; ok {
		return c, nil
	}
	return nil, factbook.Errorf(factbook.ENOTFOUND, "country %q not recognized", name)
}

// Countries returns all records in catalog order.
func (s *Store) Countries(ctx context.Context) ([]*factbook.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	countries := make([]*factbook.Country, len(s.countries))
	copy(countries, s.countries)
	return countries, nil
}

// LoadProgress reports progress while the knowledge base loads.
// Err is set when a country's page failed to load or parse; that country is
// skipped, not fatal.
type LoadProgress struct {
	Code      string
	Name      string
	Completed int
	Total     int
	Err       error
}

// LoadProgressFunc is called as countries are processed.
type LoadProgressFunc func(LoadProgress)

// Loader builds a Store from a catalog, a page source, and a parser.
type Loader struct {
	Catalog     factbook.CountryCatalog
	Pages       factbook.PageSource
	Parser      factbook.Parser
	Concurrency int
}

// Load reads every catalog entry, parses its page, and indexes the results.
// Pages load concurrently; per-country failures are reported through the
// progress callback and skip the country.
func (l *Loader) Load(ctx context.Context, progress LoadProgressFunc) (*Store, error) {
	refs, err := l.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog listing: %w", err)
	}

	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	results := make([]*factbook.Country, len(refs))

	var mu sync.Mutex
	var completed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, ref := range refs {
		g.Go(func() error {
			country, err := l.loadOne(gctx, ref)

			mu.Lock()
			completed++
			done := completed
			mu.Unlock()

			if progress != nil {
				progress(LoadProgress{
					Code:      ref.Code,
					Name:      ref.Name,
					Completed: done,
					Total:     len(refs),
					Err:       err,
				})
			}

			if err == nil {
				results[i] = country
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &Store{
		byName: make(map[string]*factbook.Country),
		byCode: make(map[string]*factbook.Country),
		names:  bloom.NewFilter(uint(2*len(refs)+1), filterFalsePositiveRate),
	}
	for _, c := range results {
		if c == nil {
			continue
		}
		s.countries = append(s.countries, c)

		name := factbook.NormalizeName(c.Name)
		s.byName[name] = c
		s.names.Add(name)

		s.byCode[c.Code] = c
		s.names.Add(c.Code)
	}
	return s, nil
}

// loadOne fetches, hashes, and parses a single country page.
func (l *Loader) loadOne(ctx context.Context, ref factbook.CountryRef) (*factbook.Country, error) {
	html, err := l.Pages.Page(ctx, ref.Code)
	if err != nil {
		return nil, err
	}

	topics, err := l.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	country := &factbook.Country{
		Code:        factbook.NormalizeName(ref.Code),
		Name:        ref.Name,
		Topics:      topics,
		ContentHash: fmt.Sprintf("%x", xxhash.Sum64String(html)),
	}
	if err := country.Validate(); err != nil {
		return nil, err
	}
	return country, nil
}
