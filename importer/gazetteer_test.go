package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGazetteerHTML(t *testing.T) {
	html := `<html><body><table>
	<tr><th>Postnr</th><th>By</th></tr>
	<tr><td>8000</td><td>AARHUS C</td></tr>
	<tr><td>5000</td><td>Odense C</td></tr>
	<tr><td>9999</td><td></td></tr>
	<tr><td>note</td><td>ikke en by</td></tr>
	</table></body></html>`

	names, err := ParseGazetteerHTML(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, []string{"Aarhus C", "Odense C"}, names)
}

func TestParseGazetteerHTML_NoPostalRows(t *testing.T) {
	_, err := ParseGazetteerHTML(strings.NewReader("<html><body><p>ingen tabel</p></body></html>"))
	assert.Error(t, err)
}

func TestParseGazetteerText(t *testing.T) {
	input := "# danske byer\n" +
		"8000 Aarhus C\n" +
		"Odense\n" +
		"\n" +
		"6700 ESBJERG\n"

	names, err := ParseGazetteerText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Aarhus C", "Odense", "Esbjerg"}, names)
}

func TestCleanCityName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AARHUS C", "Aarhus C"},
		{"København V", "København V"},
		{"  Åbyhøj ", "Åbyhøj"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanCityName(tt.input))
	}
}
