package goquery_test

import (
	"testing"

	"github.com/jmalczak/factbook"
	fbgoquery "github.com/jmalczak/factbook/goquery"
	"github.com/jmalczak/factbook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements factbook.Parser at compile time.
var _ factbook.Parser = (*fbgoquery.Parser)(nil)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts simple entries in document order", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><td><div class="category"><a>Climate</a></div></td></tr>
<tr><td><div class="category_data">temperate; mild winters</div></td></tr>
<tr><td><div class="category"><a>Capital</a></div></td></tr>
<tr><td><div class="category_data">Paris</div></td></tr>
</table>`

		p := fbgoquery.NewParser(nil)
		topics, err := p.Parse(html)

		require.NoError(t, err)
		require.Len(t, topics, 2)
		assert.Equal(t, factbook.Topic{Name: "Climate", Value: "temperate; mild winters"}, topics[0])
		assert.Equal(t, factbook.Topic{Name: "Capital", Value: "Paris"}, topics[1])
	})

	t.Run("merges duplicate titles by appending values", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><td><div class="category"><a>Area</a></div></td></tr>
<tr><td><div class="category_data">total: 100 sq km</div></td></tr>
<tr><td><div class="category"><a>Area</a></div></td></tr>
<tr><td><div class="category_data">land: 90 sq km</div></td></tr>
</table>`

		p := fbgoquery.NewParser(nil)
		topics, err := p.Parse(html)

		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "Area", topics[0].Name)
		assert.Equal(t, "total: 100 sq km\r\nland: 90 sq km", topics[0].Value)
	})

	t.Run("joins composite rows with CRLF", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><td><div class="category"><a>Age structure</a></div></td></tr>
<tr>
<td><div class="category">0-14 years: <span>18%</span></div></td>
<td><div class="category_data">15-64 years: 65%</div></td>
</tr>
</table>`

		p := fbgoquery.NewParser(nil)
		topics, err := p.Parse(html)

		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "Age structure", topics[0].Name)
		assert.Equal(t, "0-14 years:\r\n18%\r\n15-64 years: 65%", topics[0].Value)
	})

	t.Run("cuts titles at a literal dash word", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><td><div class="category"><a>Area - comparative</a></div></td></tr>
<tr><td><div class="category_data">about the size of Texas</div></td></tr>
</table>`

		p := fbgoquery.NewParser(nil)
		topics, err := p.Parse(html)

		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "Area", topics[0].Name)
	})

	t.Run("skips category divs without a link", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><td><div class="category">not a title</div></td></tr>
<tr><td><div class="category_data">orphan value</div></td></tr>
</table>`

		p := fbgoquery.NewParser(nil)
		topics, err := p.Parse(html)

		require.NoError(t, err)
		assert.Empty(t, topics)
	})

	t.Run("skips titles without a following row", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<tr><td><div class="category"><a>Dangling</a></div></td></tr>
</table>`

		p := fbgoquery.NewParser(nil)
		topics, err := p.Parse(html)

		require.NoError(t, err)
		assert.Empty(t, topics)
	})

	t.Run("cleans value cells through the converter", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "cleaned value", nil
			},
		}

		html := `<table>
<tr><td><div class="category"><a>Background</a></div></td></tr>
<tr><td><div class="category_data">messy <b>markup</b></div></td></tr>
</table>`

		p := fbgoquery.NewParser(conv)
		topics, err := p.Parse(html)

		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "cleaned value", topics[0].Value)
	})

	t.Run("falls back to plain text when the converter fails", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "", factbook.Errorf(factbook.EINVALID, "empty HTML input")
			},
		}

		html := `<table>
<tr><td><div class="category"><a>Background</a></div></td></tr>
<tr><td><div class="category_data">plain value</div></td></tr>
</table>`

		p := fbgoquery.NewParser(conv)
		topics, err := p.Parse(html)

		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, "plain value", topics[0].Value)
	})

	t.Run("empty page yields no topics", func(t *testing.T) {
		t.Parallel()

		p := fbgoquery.NewParser(nil)
		topics, err := p.Parse("<html><body></body></html>")

		require.NoError(t, err)
		assert.Empty(t, topics)
	})
}
