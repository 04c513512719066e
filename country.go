package factbook

import (
	"context"
	"strings"
)

// Topic is a single named attribute of a country fact page, e.g. "Climate".
type Topic struct {
	Name  string
	Value string
}

// Country is a record built once from a parsed fact page.
// It is immutable after load and safe to share across readers.
type Country struct {
	Code        string  // two-letter page code, e.g. "fr"
	Name        string  // display name, e.g. "France"
	Topics      []Topic // document order
	ContentHash string  // hash of the raw page HTML
}

// Validate returns an error if the country contains invalid fields.
func (c *Country) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "country name required")
	}
	if c.Code == "" {
		return Errorf(EINVALID, "country page code required")
	}
	return nil
}

// TopicNames returns the topic names in document order.
func (c *Country) TopicNames() []string {
	names := make([]string, 0, len(c.Topics))
	for _, t := range c.Topics {
		names = append(names, t.Name)
	}
	return names
}

// Topic returns the value for an exact topic name.
func (c *Country) Topic(name string) (string, bool) {
	for _, t := range c.Topics {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// NormalizeName trims and case-folds a name for lookups and comparisons.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// KnowledgeStore provides read access to the loaded knowledge base.
type KnowledgeStore interface {
	// Country retrieves a record by display name or page code.
	// The input is normalized before lookup.
	// Returns ENOTFOUND if no country matches.
	Country(ctx context.Context, name string) (*Country, error)

	// Countries returns all records in stable catalog order.
	Countries(ctx context.Context) ([]*Country, error)
}

// CountryLister lists known countries in catalog order.
// KnowledgeStore satisfies it.
type CountryLister interface {
	Countries(ctx context.Context) ([]*Country, error)
}
