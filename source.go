package factbook

import "context"

// CountryRef pairs a page code with a display name, as listed in the
// country catalog.
type CountryRef struct {
	Code string
	Name string
}

// CountryCatalog lists the countries whose fact pages are available.
type CountryCatalog interface {
	// List returns all catalog entries in file order.
	List(ctx context.Context) ([]CountryRef, error)

	// CodeForName returns the page code for a display name.
	// The name is normalized before lookup.
	// Returns ENOTFOUND if the catalog has no such country.
	CodeForName(ctx context.Context, name string) (string, error)
}

// PageSource supplies raw HTML fact pages by country code.
type PageSource interface {
	// Page returns the raw HTML for the given page code.
	// Returns ENOTFOUND if no page exists for the code.
	Page(ctx context.Context, code string) (string, error)
}
