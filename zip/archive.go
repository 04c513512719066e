// Package zip provides a page source backed by a zip archive of fact pages.
package zip

import (
	"archive/zip"
	"context"
	"io"
	"strings"

	"github.com/jmalczak/factbook"
)

// Compile-time interface verification.
var _ factbook.PageSource = (*Archive)(nil)

// Archive reads "<code>.html" members from a countries archive.
// It is safe for concurrent readers.
type Archive struct {
	rc *zip.ReadCloser
}

// Open opens the archive at path.
func Open(path string) (*Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, factbook.Errorf(factbook.EINVALID, "failed to open page archive %q: %v", path, err)
	}
	return &Archive{rc: rc}, nil
}

// Close releases the underlying archive.
func (a *Archive) Close() error {
	return a.rc.Close()
}

// Page returns the raw HTML for the given page code.
// Returns ENOTFOUND if the archive has no page for the code.
func (a *Archive) Page(ctx context.Context, code string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := factbook.NormalizeName(code) + ".html"
	f, err := a.rc.Open(name)
	if err != nil {
		return "", factbook.Errorf(factbook.ENOTFOUND, "no fact page for code %q", code)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", factbook.Errorf(factbook.EINTERNAL, "failed to read fact page %q: %v", name, err)
	}
	return string(b), nil
}

// Codes returns the page codes present in the archive, in member order.
func (a *Archive) Codes() []string {
	var codes []string
	for _, f := range a.rc.File {
		if name, ok := strings.CutSuffix(f.Name, ".html"); ok {
			codes = append(codes, name)
		}
	}
	return codes
}
