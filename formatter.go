package factbook

import "strings"

// FormatMatches formats ambiguous topic matches for display.
// Each match gets a header line with its topic name followed by the value,
// separated by blank lines.
func FormatMatches(matches []TopicMatch) string {
	if len(matches) == 0 {
		return ""
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, "## Topic: "+m.Topic+"\n"+m.Value)
	}

	return strings.Join(parts, "\n\n")
}
