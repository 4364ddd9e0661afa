// Package extract reads raw scraper output into an untyped header and rows.
package extract

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Extract is one raw file: a header and ordered rows of strings. Every row has
// exactly len(Header) cells; rows carrying more cells than the header are
// moved to Rejected instead.
type Extract struct {
	Path   string
	Header []string
	Rows   [][]string
	// Lines[i] locates Rows[i]: the file line for delimited extracts, the
	// 1-based <tr> position for HTML tables.
	Lines    []int
	Rejected []*RowError
}

// Reader decodes delimited text and HTML-table extracts.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ReadFile reads the extract at path. Files ending in .html or .htm are read as
// an HTML table, anything else as delimited text split on delimiter.
func (r *Reader) ReadFile(path string, delimiter rune) (*Extract, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	var ex *Extract
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		ex, err = r.ReadHTML(f)
	default:
		ex, err = r.ReadDelimited(f, delimiter)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	ex.Path = path
	return ex, nil
}

// ReadDelimited reads a header line followed by records split on delimiter.
func (r *Reader) ReadDelimited(in io.Reader, delimiter rune) (*Extract, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	data = bytes.TrimPrefix(data, bom)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrRead, ErrNoHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrRead, err)
	}

	ex := &Extract{Header: MangleDuplicates(header)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		line, _ := cr.FieldPos(0)
		ex.appendRow(line, rec)
	}
	return ex, nil
}

// appendRow pads short records to the header width and skips blank lines.
// Records wider than the header are rejected rather than cut.
func (ex *Extract) appendRow(line int, rec []string) {
	blank := true
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			blank = false
			break
		}
	}
	if blank {
		return
	}

	if hasCellsPast(rec, len(ex.Header)) {
		ex.Rejected = append(ex.Rejected, &RowError{Line: line, Cells: len(rec), Want: len(ex.Header)})
		return
	}

	row := make([]string, len(ex.Header))
	copy(row, rec)
	ex.Rows = append(ex.Rows, row)
	ex.Lines = append(ex.Lines, line)
}

// hasCellsPast reports whether rec holds a non-empty cell at or after width.
// Empty overflow cells, as left by a trailing delimiter, carry no data.
func hasCellsPast(rec []string, width int) bool {
	for i := width; i < len(rec); i++ {
		if strings.TrimSpace(rec[i]) != "" {
			return true
		}
	}
	return false
}
