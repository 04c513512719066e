// Package fs provides file-backed catalog data.
package fs

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/jmalczak/factbook"
)

// Compile-time interface verification.
var _ factbook.CountryCatalog = (*Catalog)(nil)

// Catalog reads the country list file. Each line pairs a two-letter page
// code with a display name, separated by a space: "us United States".
// The file order is preserved for stable listings.
type Catalog struct {
	refs   []factbook.CountryRef
	byName map[string]string // normalized display name -> code
}

// OpenCatalog parses the country list at path.
// Lines too short to hold a code and a name are skipped.
func OpenCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, factbook.Errorf(factbook.EINVALID, "failed to open country list %q: %v", path, err)
	}
	defer f.Close()

	c := &Catalog{byName: make(map[string]string)}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}
		code := strings.ToLower(line[:2])
		name := strings.TrimSpace(line[3:])
		if name == "" {
			continue
		}
		c.refs = append(c.refs, factbook.CountryRef{Code: code, Name: name})
		c.byName[factbook.NormalizeName(name)] = code
	}
	if err := scanner.Err(); err != nil {
		return nil, factbook.Errorf(factbook.EINTERNAL, "failed to read country list %q: %v", path, err)
	}

	return c, nil
}

// List returns all catalog entries in file order.
func (c *Catalog) List(ctx context.Context) ([]factbook.CountryRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	refs := make([]factbook.CountryRef, len(c.refs))
	copy(refs, c.refs)
	return refs, nil
}

// CodeForName returns the page code for a display name.
func (c *Catalog) CodeForName(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	code, ok := c.byName[factbook.NormalizeName(name)]
	if !ok {
		return "", factbook.Errorf(factbook.ENOTFOUND, "country %q not in catalog", name)
	}
	return code, nil
}
