package factbook_test

import (
	"testing"

	"github.com/jmalczak/factbook"
	"github.com/stretchr/testify/assert"
)

func TestFormatMatches(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, factbook.FormatMatches(nil))
	})

	t.Run("tags each value with its topic name", func(t *testing.T) {
		t.Parallel()

		out := factbook.FormatMatches([]factbook.TopicMatch{
			{Topic: "Climate", Value: "temperate"},
			{Topic: "Climate variability", Value: "low"},
		})

		assert.Contains(t, out, "## Topic: Climate\ntemperate")
		assert.Contains(t, out, "## Topic: Climate variability\nlow")
	})
}
