package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReadDelimited(t *testing.T) {
	tests := []struct {
		name      string
		delimiter rune
		body      string
		header    []string
		rows      [][]string
	}{
		{
			name:      "comma with bom",
			delimiter: ',',
			body:      "\ufeffName,Team,GP\nJohn Doe,BOS,55\n",
			header:    []string{"Name", "Team", "GP"},
			rows:      [][]string{{"John Doe", "BOS", "55"}},
		},
		{
			name:      "pipe delimited",
			delimiter: '|',
			body:      "Player|Team|SV%\nJane Roe|TOR|91.2%\nA, B|NYR|90%\n",
			header:    []string{"Player", "Team", "SV%"},
			rows:      [][]string{{"Jane Roe", "TOR", "91.2%"}, {"A, B", "NYR", "90%"}},
		},
		{
			name:      "short rows padded, blank lines skipped, empty overflow ignored",
			delimiter: ',',
			body:      "a,b,c\n1\n\n,,\n1,2,3,\n",
			header:    []string{"a", "b", "c"},
			rows:      [][]string{{"1", "", ""}, {"1", "2", "3"}},
		},
		{
			name:      "duplicate headers mangled",
			delimiter: ',',
			body:      "Goals Against,Goals Against,Goals Against\n1,2,3\n",
			header:    []string{"Goals Against", "Goals Against.1", "Goals Against.2"},
			rows:      [][]string{{"1", "2", "3"}},
		},
		{
			name:      "header only",
			delimiter: ',',
			body:      "a,b\n",
			header:    []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := NewReader().ReadDelimited(strings.NewReader(tt.body), tt.delimiter)
			require.NoError(t, err)
			assert.Equal(t, tt.header, ex.Header)
			assert.Equal(t, tt.rows, ex.Rows)
		})
	}
}

func TestReadDelimitedRejectsWideRows(t *testing.T) {
	ex, err := NewReader().ReadDelimited(strings.NewReader("name,gp\nA,1,EXTRA\nB,2\n"), ',')
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"B", "2"}}, ex.Rows)
	assert.Equal(t, []int{3}, ex.Lines)
	require.Len(t, ex.Rejected, 1)

	rej := ex.Rejected[0]
	assert.Equal(t, &RowError{Line: 2, Cells: 3, Want: 2}, rej)
	assert.True(t, errors.Is(rej, ErrRowWidth))
	assert.False(t, errors.Is(rej, ErrRead))
	assert.Contains(t, rej.Error(), "line 2")
}

func TestReadDelimitedLinesSkipBlanks(t *testing.T) {
	ex, err := NewReader().ReadDelimited(strings.NewReader("name,gp\n\nA,1\n,\n\nB,2\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "1"}, {"B", "2"}}, ex.Rows)
	assert.Equal(t, []int{3, 6}, ex.Lines)
}

func TestReadDelimitedEmpty(t *testing.T) {
	_, err := NewReader().ReadDelimited(strings.NewReader(""), ',')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRead))
	assert.True(t, errors.Is(err, ErrNoHeader))
}

func TestReadFileMissing(t *testing.T) {
	_, err := NewReader().ReadFile(filepath.Join(t.TempDir(), "nope.csv"), ',')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRead))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadFileSetsPath(t *testing.T) {
	path := writeFile(t, "mp_regular_2022_goalies.csv", "Name,GP\nJohn,3\n")
	ex, err := NewReader().ReadFile(path, ',')
	require.NoError(t, err)
	assert.Equal(t, path, ex.Path)
	assert.Len(t, ex.Rows, 1)
}

const goaliesTable = `<table id="goaliesTable">
  <thead>
    <tr><th colspan="3">Goalies</th></tr>
    <tr><th>Name</th><th>Team</th><th>Goals Against</th><th>Goals Against</th></tr>
  </thead>
  <tbody>
    <tr><td>1<a href="/p/1">John   Doe</a></td><td>BOS</td><td>10</td><td>11</td></tr>
    <tr><td>2Jane Roe</td><td>TOR</td><td>-</td></tr>
  </tbody>
</table>`

func TestReadHTMLTable(t *testing.T) {
	path := writeFile(t, "mp_regular_2022_goalies.html", "<html><body><div>"+goaliesTable+"</div><table><tr><td>other</td></tr></table></body></html>")

	ex, err := NewReader().ReadFile(path, ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Team", "Goals Against", "Goals Against.1"}, ex.Header)
	assert.Equal(t, [][]string{
		{"1John Doe", "BOS", "10", "11"},
		{"2Jane Roe", "TOR", "-", ""},
	}, ex.Rows)
}

func TestReadHTMLWithoutThead(t *testing.T) {
	body := `<table><tr><th>Player</th><th>GP</th></tr><tr><td>A</td><td>1</td></tr></table>`
	ex, err := NewReader().ReadHTML(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "GP"}, ex.Header)
	assert.Equal(t, [][]string{{"A", "1"}}, ex.Rows)
}

func TestReadHTMLRejectsWideRows(t *testing.T) {
	body := `<table><tr><th>Player</th><th>GP</th></tr><tr><td>A</td><td>1</td><td>9</td></tr><tr><td>B</td><td>2</td></tr></table>`
	ex, err := NewReader().ReadHTML(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B", "2"}}, ex.Rows)
	assert.Equal(t, []int{3}, ex.Lines)
	require.Len(t, ex.Rejected, 1)
	assert.Equal(t, 2, ex.Rejected[0].Line)
}

func TestReadHTMLNoTable(t *testing.T) {
	_, err := NewReader().ReadHTML(strings.NewReader("<p>nothing here</p>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRead))
	assert.True(t, errors.Is(err, ErrNoTable))
}

func TestMangleDuplicatesKeepsInput(t *testing.T) {
	in := []string{"x", "x", "y", "x"}
	assert.Equal(t, []string{"x", "x.1", "y", "x.2"}, MangleDuplicates(in))
	assert.Equal(t, []string{"x", "x", "y", "x"}, in)
}
