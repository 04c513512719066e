package factbook

import "context"

// Work modes accepted by WorkPreferences.
const (
	WorkModeJob      = "job"
	WorkModeBusiness = "business"
)

// LivePreferences filters countries to live in.
// All non-empty preferences must match for a country to be suggested.
type LivePreferences struct {
	Climate    string
	Government string
	Religion   string
}

// WorkPreferences filters countries to work in.
// In business mode both field and trade must match; in job mode the field
// alone decides.
type WorkPreferences struct {
	Mode  string
	Field string
	Trade string
}

// TravelPreferences filters travel destinations by place type and a numeric
// budget, which is bucketed into low/medium/high bands.
type TravelPreferences struct {
	Budget    int64
	PlaceType string
}

// Suggestion is a single recommendation with a one-line summary.
type Suggestion struct {
	Name    string
	Summary string
}

// Advisor derives rule-based suggestions from the tabular country data.
type Advisor interface {
	SuggestLive(ctx context.Context, prefs LivePreferences) ([]Suggestion, error)
	SuggestWork(ctx context.Context, prefs WorkPreferences) ([]Suggestion, error)
	SuggestTravel(ctx context.Context, prefs TravelPreferences) ([]Suggestion, error)
}
