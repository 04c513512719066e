package factbook

// Parser extracts topic entries from a raw fact page.
// Implementations hide the page markup; topics come back in document order
// with duplicate titles already merged.
type Parser interface {
	Parse(html string) ([]Topic, error)
}
