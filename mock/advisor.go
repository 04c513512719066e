package mock

import (
	"context"

	"github.com/jmalczak/factbook"
)

var _ factbook.Advisor = (*Advisor)(nil)

// Advisor is a mock implementation of factbook.Advisor.
type Advisor struct {
	SuggestLiveFn   func(ctx context.Context, prefs factbook.LivePreferences) ([]factbook.Suggestion, error)
	SuggestWorkFn   func(ctx context.Context, prefs factbook.WorkPreferences) ([]factbook.Suggestion, error)
	SuggestTravelFn func(ctx context.Context, prefs factbook.TravelPreferences) ([]factbook.Suggestion, error)
}

func (a *Advisor) SuggestLive(ctx context.Context, prefs factbook.LivePreferences) ([]factbook.Suggestion, error) {
	return a.SuggestLiveFn(ctx, prefs)
}

func (a *Advisor) SuggestWork(ctx context.Context, prefs factbook.WorkPreferences) ([]factbook.Suggestion, error) {
	return a.SuggestWorkFn(ctx, prefs)
}

func (a *Advisor) SuggestTravel(ctx context.Context, prefs factbook.TravelPreferences) ([]factbook.Suggestion, error) {
	return a.SuggestTravelFn(ctx, prefs)
}
