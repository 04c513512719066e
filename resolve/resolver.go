// Package resolve implements free-text topic resolution against country
// records. Matching runs in a fixed precedence order: exact, normalized,
// wildcard, substring.
package resolve

import (
	"context"
	"strings"
	"unicode"

	"github.com/jmalczak/factbook"
	"github.com/tidwall/match"
)

// Compile-time interface verification.
var _ factbook.TopicResolver = (*Resolver)(nil)

// Resolver resolves queries against a country record's topics and dispatches
// the reserved introspection commands. It is stateless; any last-query state
// needed by bare ";matches" travels in the Query itself.
type Resolver struct {
	countries factbook.CountryLister
}

// New creates a Resolver. The lister backs the ";lst" command.
func New(countries factbook.CountryLister) *Resolver {
	return &Resolver{countries: countries}
}

// Resolve resolves a free-text query against the record.
// Reserved command tokens take precedence over topic matching. An unmatched
// query yields KindNoMatch, never an error; a nil record is a caller bug and
// returns EINVALID.
func (r *Resolver) Resolve(ctx context.Context, record *factbook.Country, q factbook.Query) (*factbook.Resolution, error) {
	if record == nil {
		return nil, factbook.Errorf(factbook.EINVALID, "topic resolution requires a country record")
	}

	if cmd, arg, ok := factbook.ParseCommand(q.Text); ok {
		return r.runCommand(ctx, record, cmd, arg, q)
	}

	text := factbook.NormalizeName(q.Text)
	if text == "" {
		return &factbook.Resolution{Kind: factbook.KindNoMatch}, nil
	}

	// Tier 1: exact match on the trimmed, case-folded topic name.
	for _, t := range record.Topics {
		if factbook.NormalizeName(t.Name) == text {
			return valueResolution(t), nil
		}
	}

	// Tier 2: match ignoring internal whitespace and punctuation.
	if folded := foldKey(text); folded != "" {
		for _, t := range record.Topics {
			if foldKey(t.Name) == folded {
				return valueResolution(t), nil
			}
		}
	}

	// Tier 3: wildcard pattern over topic names.
	if strings.ContainsAny(text, "*?") {
		var matches []factbook.TopicMatch
		for _, t := range record.Topics {
			if match.Match(factbook.NormalizeName(t.Name), text) {
				matches = append(matches, factbook.TopicMatch{Topic: t.Name, Value: t.Value})
			}
		}
		return matchResolution(matches), nil
	}

	// Tier 4: case-insensitive substring containment. Multiple hits come
	// back tagged with their topic names, never an arbitrary pick.
	var matches []factbook.TopicMatch
	for _, t := range record.Topics {
		if strings.Contains(factbook.NormalizeName(t.Name), text) {
			matches = append(matches, factbook.TopicMatch{Topic: t.Name, Value: t.Value})
		}
	}
	return matchResolution(matches), nil
}

func (r *Resolver) runCommand(ctx context.Context, record *factbook.Country, cmd, arg string, q factbook.Query) (*factbook.Resolution, error) {
	switch cmd {
	case factbook.CmdList:
		if r.countries == nil {
			return nil, factbook.Errorf(factbook.EINTERNAL, "no country list available")
		}
		countries, err := r.countries.Countries(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(countries))
		for _, c := range countries {
			names = append(names, c.Name)
		}
		return &factbook.Resolution{Kind: factbook.KindCountryList, Names: names}, nil

	case factbook.CmdKeys:
		return &factbook.Resolution{Kind: factbook.KindTopicList, Names: record.TopicNames()}, nil

	default: // factbook.CmdMatches
		keyword := arg
		if keyword == "" {
			keyword = q.LastText
		}
		// A stale command as the last query suggests nothing.
		if _, _, ok := factbook.ParseCommand(keyword); ok {
			keyword = ""
		}
		keyword = factbook.NormalizeName(keyword)

		var names []string
		if keyword != "" {
			for _, t := range record.Topics {
				if strings.Contains(factbook.NormalizeName(t.Name), keyword) {
					names = append(names, t.Name)
				}
			}
		}
		return &factbook.Resolution{Kind: factbook.KindSuggestionList, Names: names}, nil
	}
}

func valueResolution(t factbook.Topic) *factbook.Resolution {
	return &factbook.Resolution{Kind: factbook.KindValue, Topic: t.Name, Value: t.Value}
}

// matchResolution promotes a single hit to a plain value resolution.
func matchResolution(matches []factbook.TopicMatch) *factbook.Resolution {
	switch len(matches) {
	case 0:
		return &factbook.Resolution{Kind: factbook.KindNoMatch}
	case 1:
		return &factbook.Resolution{Kind: factbook.KindValue, Topic: matches[0].Topic, Value: matches[0].Value}
	default:
		return &factbook.Resolution{Kind: factbook.KindAmbiguous, Matches: matches}
	}
}

// foldKey reduces a topic name to its letters and digits, case-folded, so
// queries match regardless of internal whitespace and punctuation.
func foldKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
