package inmem_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jmalczak/factbook"
	"github.com/jmalczak/factbook/inmem"
	"github.com/jmalczak/factbook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Store implements factbook.KnowledgeStore at compile time.
var _ factbook.KnowledgeStore = (*inmem.Store)(nil)

func testLoader(pages map[string]string) *inmem.Loader {
	refs := []factbook.CountryRef{
		{Code: "us", Name: "United States"},
		{Code: "fr", Name: "France"},
		{Code: "de", Name: "Germany"},
	}

	return &inmem.Loader{
		Catalog: &mock.CountryCatalog{
			ListFn: func(_ context.Context) ([]factbook.CountryRef, error) {
				return refs, nil
			},
		},
		Pages: &mock.PageSource{
			PageFn: func(_ context.Context, code string) (string, error) {
				html, ok := pages[code]
				if !ok {
					return "", factbook.Errorf(factbook.ENOTFOUND, "no fact page for code %q", code)
				}
				return html, nil
			},
		},
		Parser: &mock.Parser{
			ParseFn: func(html string) ([]factbook.Topic, error) {
				return []factbook.Topic{{Name: "Source", Value: html}}, nil
			},
		},
	}
}

func allPages() map[string]string {
	return map[string]string{
		"us": "<html>us</html>",
		"fr": "<html>fr</html>",
		"de": "<html>de</html>",
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("preserves catalog order", func(t *testing.T) {
		t.Parallel()

		store, err := testLoader(allPages()).Load(context.Background(), nil)
		require.NoError(t, err)

		countries, err := store.Countries(context.Background())
		require.NoError(t, err)
		require.Len(t, countries, 3)
		assert.Equal(t, "United States", countries[0].Name)
		assert.Equal(t, "France", countries[1].Name)
		assert.Equal(t, "Germany", countries[2].Name)
	})

	t.Run("skips countries whose pages fail", func(t *testing.T) {
		t.Parallel()

		pages := allPages()
		delete(pages, "fr")

		var mu sync.Mutex
		var failed []string

		store, err := testLoader(pages).Load(context.Background(), func(p inmem.LoadProgress) {
			if p.Err != nil {
				mu.Lock()
				failed = append(failed, p.Code)
				mu.Unlock()
			}
		})
		require.NoError(t, err)

		countries, err := store.Countries(context.Background())
		require.NoError(t, err)
		assert.Len(t, countries, 2)
		assert.Equal(t, []string{"fr"}, failed)

		_, err = store.Country(context.Background(), "France")
		require.Error(t, err)
		assert.Equal(t, factbook.ENOTFOUND, factbook.ErrorCode(err))
	})

	t.Run("reports progress for every country", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var events []inmem.LoadProgress

		_, err := testLoader(allPages()).Load(context.Background(), func(p inmem.LoadProgress) {
			mu.Lock()
			events = append(events, p)
			mu.Unlock()
		})
		require.NoError(t, err)

		require.Len(t, events, 3)
		for _, e := range events {
			assert.Equal(t, 3, e.Total)
		}
	})

	t.Run("computes a stable content hash", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()

		store1, err := testLoader(allPages()).Load(ctx, nil)
		require.NoError(t, err)
		store2, err := testLoader(allPages()).Load(ctx, nil)
		require.NoError(t, err)

		c1, err := store1.Country(ctx, "France")
		require.NoError(t, err)
		c2, err := store2.Country(ctx, "France")
		require.NoError(t, err)

		assert.NotEmpty(t, c1.ContentHash)
		assert.Equal(t, c1.ContentHash, c2.ContentHash)
	})
}

func TestStore_Country(t *testing.T) {
	t.Parallel()

	store, err := testLoader(allPages()).Load(context.Background(), nil)
	require.NoError(t, err)

	t.Run("lookup ignores case and surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"France", "france", "  FRANCE  ", "FrAnCe"} {
			c, err := store.Country(context.Background(), name)
			require.NoError(t, err, name)
			assert.Equal(t, "fr", c.Code)
		}
	})

	t.Run("lookup by page code", func(t *testing.T) {
		t.Parallel()

		c, err := store.Country(context.Background(), "de")
		require.NoError(t, err)
		assert.Equal(t, "Germany", c.Name)
	})

	t.Run("unknown name returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := store.Country(context.Background(), "Atlantis")
		require.Error(t, err)
		assert.Equal(t, factbook.ENOTFOUND, factbook.ErrorCode(err))
	})

	t.Run("empty name returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := store.Country(context.Background(), "   ")
		require.Error(t, err)
		assert.Equal(t, factbook.EINVALID, factbook.ErrorCode(err))
	})
}

func TestStore_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	store, err := testLoader(allPages()).Load(context.Background(), nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := []string{"France", "Germany", "United States"}[i%3]
			if _, err := store.Country(context.Background(), name); err != nil {
				errs <- fmt.Errorf("%s: %w", name, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
