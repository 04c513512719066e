package main

import (
	"fmt"
	"io"

	"github.com/jmalczak/factbook"
)

// renderResolution writes a resolution in its display form.
func renderResolution(w io.Writer, res *factbook.Resolution) {
	switch res.Kind {
	case factbook.KindValue:
		fmt.Fprintln(w, res.Value)
	case factbook.KindAmbiguous:
		fmt.Fprintln(w, "Multiple topics match:")
		fmt.Fprintln(w)
		fmt.Fprintln(w, factbook.FormatMatches(res.Matches))
	case factbook.KindCountryList, factbook.KindTopicList, factbook.KindSuggestionList:
		for _, name := range res.Names {
			fmt.Fprintln(w, name)
		}
	default:
		fmt.Fprintln(w, "No matching topic found.")
	}
}

// renderSuggestions writes advisor suggestions, one per line.
func renderSuggestions(w io.Writer, suggestions []factbook.Suggestion, noun string) {
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "No matching %s found.\n", noun)
		return
	}
	for _, s := range suggestions {
		fmt.Fprintln(w, s.Summary)
	}
}
