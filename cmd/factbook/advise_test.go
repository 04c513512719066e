package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jmalczak/factbook"
	main "github.com/jmalczak/factbook/cmd/factbook"
	"github.com/jmalczak/factbook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adviseDeps(advisor *mock.Advisor) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Advisor: advisor,
	}, stdout, stderr
}

func TestLiveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes preferences through and prints summaries", func(t *testing.T) {
		t.Parallel()

		var got factbook.LivePreferences
		advisor := &mock.Advisor{
			SuggestLiveFn: func(_ context.Context, prefs factbook.LivePreferences) ([]factbook.Suggestion, error) {
				got = prefs
				return []factbook.Suggestion{
					{Name: "japan", Summary: "japan matches your preferences."},
				}, nil
			},
		}

		deps, stdout, _ := adviseDeps(advisor)
		cmd := &main.LiveCmd{Climate: "moderate", Government: "democracy", Religion: "buddhism"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, factbook.LivePreferences{
			Climate:    "moderate",
			Government: "democracy",
			Religion:   "buddhism",
		}, got)
		assert.Contains(t, stdout.String(), "japan matches your preferences.")
	})

	t.Run("shows helpful message when nothing matches", func(t *testing.T) {
		t.Parallel()

		advisor := &mock.Advisor{
			SuggestLiveFn: func(_ context.Context, _ factbook.LivePreferences) ([]factbook.Suggestion, error) {
				return nil, nil
			},
		}

		deps, stdout, _ := adviseDeps(advisor)
		cmd := &main.LiveCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matching countries found.")
	})
}

func TestWorkCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes mode, field, and trade through", func(t *testing.T) {
		t.Parallel()

		var got factbook.WorkPreferences
		advisor := &mock.Advisor{
			SuggestWorkFn: func(_ context.Context, prefs factbook.WorkPreferences) ([]factbook.Suggestion, error) {
				got = prefs
				return []factbook.Suggestion{
					{Name: "japan", Summary: "japan matches your preferences."},
				}, nil
			},
		}

		deps, stdout, _ := adviseDeps(advisor)
		cmd := &main.WorkCmd{Mode: factbook.WorkModeBusiness, Field: "technology", Trade: "export"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, factbook.WorkPreferences{
			Mode:  factbook.WorkModeBusiness,
			Field: "technology",
			Trade: "export",
		}, got)
		assert.Contains(t, stdout.String(), "japan")
	})

	t.Run("returns error when the advisor fails", func(t *testing.T) {
		t.Parallel()

		advisorErr := factbook.Errorf(factbook.EINTERNAL, "table unavailable")
		advisor := &mock.Advisor{
			SuggestWorkFn: func(_ context.Context, _ factbook.WorkPreferences) ([]factbook.Suggestion, error) {
				return nil, advisorErr
			},
		}

		deps, _, stderr := adviseDeps(advisor)
		cmd := &main.WorkCmd{Mode: factbook.WorkModeJob, Field: "technology"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, advisorErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestTravelCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes budget and place type through", func(t *testing.T) {
		t.Parallel()

		var got factbook.TravelPreferences
		advisor := &mock.Advisor{
			SuggestTravelFn: func(_ context.Context, prefs factbook.TravelPreferences) ([]factbook.Suggestion, error) {
				got = prefs
				return []factbook.Suggestion{
					{Name: "bali", Summary: "bali in indonesia suits a medium budget and a beach experience."},
				}, nil
			},
		}

		deps, stdout, _ := adviseDeps(advisor)
		cmd := &main.TravelCmd{Budget: 45_000_000, PlaceType: "beach"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, factbook.TravelPreferences{Budget: 45_000_000, PlaceType: "beach"}, got)
		assert.Contains(t, stdout.String(), "bali in indonesia")
	})

	t.Run("shows helpful message when nothing matches", func(t *testing.T) {
		t.Parallel()

		advisor := &mock.Advisor{
			SuggestTravelFn: func(_ context.Context, _ factbook.TravelPreferences) ([]factbook.Suggestion, error) {
				return nil, nil
			},
		}

		deps, stdout, _ := adviseDeps(advisor)
		cmd := &main.TravelCmd{Budget: 10, PlaceType: "beach"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matching destinations found.")
	})
}
