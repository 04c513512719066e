// Package rules derives Live, Work, and Travel suggestions by forward
// chaining over the profile and destination tables.
package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmalczak/factbook"
)

// Compile-time interface verification.
var _ factbook.Advisor = (*Engine)(nil)

// Budget bands used by the destination table's budget column.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// Budget band boundaries, in the currency units of the travel budget input.
const (
	budgetLowCeiling    = 30_000_000
	budgetMediumCeiling = 60_000_000
)

// Engine applies forward-chaining rules over the tabular country data.
// Each rule either derives a new fact for a row or does nothing; rules run
// until a full pass derives nothing new.
type Engine struct {
	Profiles     factbook.ProfileService
	Destinations factbook.DestinationService
}

// facts is the set of derived facts for a single row.
type facts map[string]bool

// rule derives facts for a profile. It reports whether it added a new fact.
type rule func(p *factbook.Profile, f facts) bool

// chain applies rules to a profile until no rule derives a new fact.
func chain(p *factbook.Profile, rules []rule) facts {
	f := facts{}
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if r(p, f) {
				changed = true
			}
		}
	}
	return f
}

// SuggestLive suggests countries whose climate, government, and religion all
// match the preferences. An empty preference never matches, so all three
// must be provided for any country to qualify.
func (e *Engine) SuggestLive(ctx context.Context, prefs factbook.LivePreferences) ([]factbook.Suggestion, error) {
	profiles, err := e.Profiles.Profiles(ctx)
	if err != nil {
		return nil, err
	}

	climate := canonical(prefs.Climate)
	government := canonical(prefs.Government)
	religion := canonical(prefs.Religion)

	rules := []rule{
		func(p *factbook.Profile, f facts) bool {
			if f["climate"] || climate == "" {
				return false
			}
			if canonical(p.Attr(factbook.AttrClimate)) == climate {
				f["climate"] = true
				return true
			}
			return false
		},
		func(p *factbook.Profile, f facts) bool {
			if f["government"] || government == "" {
				return false
			}
			if canonical(p.Attr(factbook.AttrGovernment)) == government {
				f["government"] = true
				return true
			}
			return false
		},
		func(p *factbook.Profile, f facts) bool {
			if f["religion"] || religion == "" {
				return false
			}
			if canonical(p.Attr(factbook.AttrReligion)) == religion {
				f["religion"] = true
				return true
			}
			return false
		},
		func(p *factbook.Profile, f facts) bool {
			if f["selected"] {
				return false
			}
			if f["climate"] && f["government"] && f["religion"] {
				f["selected"] = true
				return true
			}
			return false
		},
	}

	var suggestions []factbook.Suggestion
	for _, p := range profiles {
		if chain(p, rules)["selected"] {
			suggestions = append(suggestions, factbook.Suggestion{
				Name:    p.Name,
				Summary: summarizeProfile(p),
			})
		}
	}
	return suggestions, nil
}

// SuggestWork suggests countries by field domain. In business mode the trade
// type must also match; in job mode the field alone decides.
func (e *Engine) SuggestWork(ctx context.Context, prefs factbook.WorkPreferences) ([]factbook.Suggestion, error) {
	profiles, err := e.Profiles.Profiles(ctx)
	if err != nil {
		return nil, err
	}

	mode := canonical(prefs.Mode)
	field := canonical(prefs.Field)
	trade := canonical(prefs.Trade)

	rules := []rule{
		func(p *factbook.Profile, f facts) bool {
			if f["field"] || field == "" {
				return false
			}
			if canonical(p.Attr(factbook.AttrField)) == field {
				f["field"] = true
				return true
			}
			return false
		},
		func(p *factbook.Profile, f facts) bool {
			if mode != factbook.WorkModeBusiness || f["trade"] || trade == "" {
				return false
			}
			if canonical(p.Attr(factbook.AttrTrade)) == trade {
				f["trade"] = true
				return true
			}
			return false
		},
		func(p *factbook.Profile, f facts) bool {
			if f["selected"] {
				return false
			}
			if mode == factbook.WorkModeBusiness {
				if f["field"] && f["trade"] {
					f["selected"] = true
					return true
				}
				return false
			}
			if f["field"] {
				f["selected"] = true
				return true
			}
			return false
		},
	}

	var suggestions []factbook.Suggestion
	for _, p := range profiles {
		if chain(p, rules)["selected"] {
			suggestions = append(suggestions, factbook.Suggestion{
				Name:    p.Name,
				Summary: summarizeProfile(p),
			})
		}
	}
	return suggestions, nil
}

// SuggestTravel suggests destinations matching the place type and the
// budget band the numeric budget falls into.
func (e *Engine) SuggestTravel(ctx context.Context, prefs factbook.TravelPreferences) ([]factbook.Suggestion, error) {
	destinations, err := e.Destinations.Destinations(ctx)
	if err != nil {
		return nil, err
	}

	placeType := canonical(prefs.PlaceType)
	if placeType == "" || prefs.Budget <= 0 {
		return nil, nil
	}
	band := budgetBand(prefs.Budget)

	var suggestions []factbook.Suggestion
	for _, d := range destinations {
		if canonical(d.Attr(factbook.AttrPlaceType)) != placeType {
			continue
		}
		if canonical(d.Attr(factbook.AttrBudget)) != band {
			continue
		}
		suggestions = append(suggestions, factbook.Suggestion{
			Name:    d.Name,
			Summary: summarizeDestination(d, band),
		})
	}
	return suggestions, nil
}

// budgetBand buckets a numeric budget into the table's budget bands.
func budgetBand(budget int64) string {
	switch {
	case budget < budgetLowCeiling:
		return BudgetLow
	case budget <= budgetMediumCeiling:
		return BudgetMedium
	default:
		return BudgetHigh
	}
}

func canonical(s string) string {
	return factbook.NormalizeName(s)
}

// summarizeProfile builds a one-line description from the row, skipping
// absent attributes.
func summarizeProfile(p *factbook.Profile) string {
	var parts []string
	if v := p.Attr(factbook.AttrGovernment); v != "" {
		parts = append(parts, fmt.Sprintf("a %s government", v))
	}
	if v := p.Attr(factbook.AttrField); v != "" {
		parts = append(parts, fmt.Sprintf("strength in %s", v))
	}
	if v := p.Attr(factbook.AttrReligion); v != "" {
		parts = append(parts, fmt.Sprintf("%s as the major religion", v))
	}
	if v := p.Attr(factbook.AttrClimate); v != "" {
		parts = append(parts, fmt.Sprintf("a %s climate", v))
	}
	if v := p.Attr(factbook.AttrDensity); v != "" {
		parts = append(parts, fmt.Sprintf("a population density around %s per sq km", v))
	}
	if v := p.Attr(factbook.AttrGDP); v != "" {
		parts = append(parts, fmt.Sprintf("a GDP around %s billion USD", v))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s matches your preferences.", p.Name)
	}
	return fmt.Sprintf("%s matches your preferences: %s.", p.Name, strings.Join(parts, "; "))
}

// summarizeDestination builds a one-line description of a travel match.
func summarizeDestination(d *factbook.Destination, band string) string {
	country := d.Attr(factbook.AttrCountry)
	if country == "" {
		country = "a matching country"
	}
	placeType := d.Attr(factbook.AttrPlaceType)
	if placeType == "" {
		placeType = "destination"
	}
	return fmt.Sprintf("%s in %s suits a %s budget and a %s experience.", d.Name, country, band, placeType)
}
