package factbook

import "context"

// Well-known column names of the profile and destination tables.
// Headers are stored lower-cased, matching the table loaders.
const (
	AttrGovernment = "type of government"
	AttrField      = "field domain"
	AttrReligion   = "major religion"
	AttrGDP        = "gdp"
	AttrDensity    = "population density"
	AttrClimate    = "average weather"
	AttrTrade      = "trade type"

	AttrCountry   = "country"
	AttrBudget    = "budget"
	AttrPlaceType = "type of place"
)

// Profile is one row of the GDP-ranked country table.
type Profile struct {
	Name  string            // first column, lower-cased
	Attrs map[string]string // lower-cased header -> cell
}

// Attr returns the named attribute, or an empty string when absent.
func (p *Profile) Attr(name string) string {
	return p.Attrs[name]
}

// Destination is one row of the tourism table.
type Destination struct {
	Name  string            // place name, lower-cased
	Attrs map[string]string // lower-cased header -> cell
}

// Attr returns the named attribute, or an empty string when absent.
func (d *Destination) Attr(name string) string {
	return d.Attrs[name]
}

// ProfileService provides read access to the country profile table.
type ProfileService interface {
	Profiles(ctx context.Context) ([]*Profile, error)
}

// DestinationService provides read access to the tourism table.
type DestinationService interface {
	Destinations(ctx context.Context) ([]*Destination, error)
}
