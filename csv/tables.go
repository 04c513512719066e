// Package csv provides the profile and destination tables backed by CSV
// files.
package csv

import (
	"context"
	"encoding/csv"
	"os"
	"strings"

	"github.com/jmalczak/factbook"
)

// Compile-time interface verification.
var (
	_ factbook.ProfileService     = (*Tables)(nil)
	_ factbook.DestinationService = (*Tables)(nil)
)

// Tables holds the profile and destination tables, loaded once at open.
// Headers and cells are lower-cased so attribute lookups are
// case-insensitive; the first column is the row key.
type Tables struct {
	profiles     []*factbook.Profile
	destinations []*factbook.Destination
}

// Open loads both tables. Either path may be empty to skip that table.
func Open(profilePath, destinationPath string) (*Tables, error) {
	t := &Tables{}

	if profilePath != "" {
		rows, err := readTable(profilePath)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			t.profiles = append(t.profiles, &factbook.Profile{Name: r.key, Attrs: r.attrs})
		}
	}

	if destinationPath != "" {
		rows, err := readTable(destinationPath)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			t.destinations = append(t.destinations, &factbook.Destination{Name: r.key, Attrs: r.attrs})
		}
	}

	return t, nil
}

// Profiles returns the country profile rows in file order.
func (t *Tables) Profiles(ctx context.Context) ([]*factbook.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.profiles, nil
}

// Destinations returns the tourism rows in file order.
func (t *Tables) Destinations(ctx context.Context) ([]*factbook.Destination, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.destinations, nil
}

type tableRow struct {
	key   string
	attrs map[string]string
}

// readTable parses a CSV file into keyed rows. Ragged rows are tolerated;
// empty headers and empty cells are dropped.
func readTable(path string) ([]*tableRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, factbook.Errorf(factbook.EINVALID, "failed to open table %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, factbook.Errorf(factbook.EINVALID, "failed to parse table %q: %v", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for j, h := range records[0] {
		header[j] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []*tableRow
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(record[0]))
		if key == "" {
			continue
		}
		attrs := make(map[string]string)
		for j, cell := range record {
			if j >= len(header) || header[j] == "" {
				continue
			}
			cell = strings.ToLower(strings.TrimSpace(cell))
			if cell == "" {
				continue
			}
			attrs[header[j]] = cell
		}
		rows = append(rows, &tableRow{key: key, attrs: attrs})
	}
	return rows, nil
}
