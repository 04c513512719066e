// Package goquery provides structural parsing of country fact pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jmalczak/factbook"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ factbook.Parser = (*Parser)(nil)

// Parser extracts topic entries from a fact page.
//
// Each entry is titled by a div.category containing a link; its value lives
// in the table row following the title's row, either as a single
// div.category_data cell or as a composite of category labels, spans, and
// data cells joined with CRLF. Duplicate titles are merged by appending
// values in document order.
type Parser struct {
	conv factbook.Converter // optional cleanup for value cells with markup
}

// NewParser creates a Parser. The converter may be nil, in which case value
// cells are reduced to their plain text.
func NewParser(conv factbook.Converter) *Parser {
	return &Parser{conv: conv}
}

// Parse extracts topics from raw page HTML in document order.
func (p *Parser) Parse(rawHTML string) ([]factbook.Topic, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, factbook.Errorf(factbook.EINVALID, "failed to parse HTML: %v", err)
	}

	var topics []factbook.Topic
	index := make(map[string]int)

	doc.Find("div.category").Each(func(_ int, cat *goquery.Selection) {
		// Composite-row labels carry no link; only titles do.
		link := cat.Find("a").First()
		if link.Length() == 0 {
			return
		}

		row := cat.Parent().Parent().NextAllFiltered("tr").First()
		if row.Length() == 0 {
			return
		}

		title := formatTitle(link.Text())
		if title == "" {
			return
		}

		value := p.rowValue(row)

		if i, ok := index[title]; ok {
			topics[i].Value = topics[i].Value + "\r\n" + value
			return
		}
		index[title] = len(topics)
		topics = append(topics, factbook.Topic{Name: title, Value: value})
	})

	return topics, nil
}

// rowValue extracts the value text of an entry's data row.
func (p *Parser) rowValue(row *goquery.Selection) string {
	// Composite rows repeat category labels alongside several data cells.
	if row.Find("div.category").Length() > 0 || row.Find("div.category_data").Length() > 1 {
		var parts []string
		row.Find("div.category").Each(func(_ int, div *goquery.Selection) {
			if text := leadingText(div); text != "" {
				parts = append(parts, text)
			}
			div.Find("span").Each(func(_ int, span *goquery.Selection) {
				if text := strings.TrimSpace(span.Text()); text != "" {
					parts = append(parts, text)
				}
			})
		})
		row.Find("div.category_data").Each(func(_ int, div *goquery.Selection) {
			if text := p.cellText(div); text != "" {
				parts = append(parts, text)
			}
		})
		return strings.Join(parts, "\r\n")
	}

	if td := row.Find("td").First(); td.Length() > 0 {
		return p.cellText(td.Find("div.category_data").First())
	}
	return p.cellText(row.Find("div.category_data").First())
}

// cellText reduces a data cell to display text, cleaning markup through the
// converter when one is configured.
func (p *Parser) cellText(div *goquery.Selection) string {
	if div.Length() == 0 {
		return ""
	}
	if p.conv != nil {
		if h, err := div.Html(); err == nil {
			if md, err := p.conv.Convert(h); err == nil {
				return strings.TrimSpace(md)
			}
		}
	}
	return strings.TrimSpace(div.Text())
}

// leadingText returns the text of the element's first child, when that child
// is a text node. Label divs put their caption there, before any spans.
func leadingText(sel *goquery.Selection) string {
	for _, node := range sel.Nodes {
		if c := node.FirstChild; c != nil && c.Type == html.TextNode {
			if t := strings.TrimSpace(c.Data); t != "" {
				return t
			}
		}
	}
	return ""
}

// formatTitle keeps the title words up to a literal "-" separator.
func formatTitle(s string) string {
	var words []string
	for _, w := range strings.Fields(s) {
		if w == "-" {
			break
		}
		words = append(words, w)
	}
	return strings.Join(words, " ")
}
