package parser

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/errors"
)

func selectFixture(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := parseDocument(html)
	require.NoError(t, err)
	sel := doc.Find("select").First()
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestDecodeOptions(t *testing.T) {
	sel := selectFixture(t, `
	<select name="project">
	<option value="">--- select ---</option>
	<option value="486" selected>Website</option>
	<option value="487">Mobile App</option>
	</select>`)

	options, err := decodeOptions(sel)
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, domain.IDNone, options[0].ID)
	assert.Equal(t, Option{ID: 486, Name: "Website"}, options[1])

	selected, err := findSelected(sel)
	require.NoError(t, err)
	assert.Equal(t, int64(486), selected)
	assert.Equal(t, "486", findSelectedValue(sel))
}

func TestDecodeOptionsBadValue(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{
			name: "non-numeric value",
			html: `<select><option value="abc">Broken</option></select>`,
		},
		{
			name: "negative value",
			html: `<select><option value="-3">Broken</option></select>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := selectFixture(t, tt.html)
			_, err := decodeOptions(sel)
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeParse))
		})
	}
}

func TestFindSelectedNone(t *testing.T) {
	sel := selectFixture(t, `
	<select>
	<option value="">--- select ---</option>
	<option value="486">Website</option>
	</select>`)

	selected, err := findSelected(sel)
	require.NoError(t, err)
	assert.Equal(t, domain.IDNone, selected)
	assert.Empty(t, findSelectedValue(sel))
}

func TestDecodeProjectsDropsPlaceholder(t *testing.T) {
	sel := selectFixture(t, `
	<select>
	<option value="">--- select ---</option>
	<option value="486">Website</option>
	</select>`)

	projects, err := decodeProjects(sel)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, int64(486), projects[0].ID)
}
