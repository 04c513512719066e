package factbook

import (
	"context"
	"strings"
)

// Reserved introspection command tokens. They take precedence over topic
// matching and must be forwarded verbatim by the presentation layer.
const (
	CmdList    = ";lst"
	CmdKeys    = ";keys"
	CmdMatches = ";matches"
)

// Query is a single free-text lookup against a country record.
// LastText is the previous query text and is owned by the caller; a bare
// ";matches" falls back to it. The resolver itself keeps no state between
// calls.
type Query struct {
	Text     string
	LastText string
}

// ResolutionKind discriminates the variants of a Resolution.
type ResolutionKind int

// Resolution variants.
const (
	KindNoMatch ResolutionKind = iota
	KindValue
	KindAmbiguous
	KindCountryList
	KindTopicList
	KindSuggestionList
)

// String returns the kind as a short identifier for logging.
func (k ResolutionKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindAmbiguous:
		return "ambiguous"
	case KindCountryList:
		return "country_list"
	case KindTopicList:
		return "topic_list"
	case KindSuggestionList:
		return "suggestion_list"
	default:
		return "no_match"
	}
}

// TopicMatch tags a matched value with its topic name for disambiguation.
type TopicMatch struct {
	Topic string
	Value string
}

// Resolution is the outcome of resolving a query against a country record.
// KindNoMatch is a normal outcome, not an error: the caller renders it as
// "topic not found" and may ask for suggestions via CmdMatches.
type Resolution struct {
	Kind    ResolutionKind
	Topic   string       // KindValue
	Value   string       // KindValue
	Matches []TopicMatch // KindAmbiguous
	Names   []string     // list kinds
}

// TopicResolver resolves free-text topic queries against a country record.
type TopicResolver interface {
	// Resolve resolves the query, dispatching reserved command tokens to
	// their introspection behavior before any topic matching.
	// Returns EINVALID if record is nil; an unmatched query yields a
	// KindNoMatch resolution, never an error.
	Resolve(ctx context.Context, record *Country, q Query) (*Resolution, error)
}

// ParseCommand splits a query into a reserved command token and its
// argument. ok is false when the query is not a reserved command; unknown
// ";"-prefixed tokens fall through to ordinary topic matching.
func ParseCommand(text string) (cmd, arg string, ok bool) {
	t := NormalizeName(text)
	if !strings.HasPrefix(t, ";") {
		return "", "", false
	}
	parts := strings.Fields(t)
	switch parts[0] {
	case CmdList, CmdKeys, CmdMatches:
		return parts[0], strings.Join(parts[1:], " "), true
	}
	return "", "", false
}
