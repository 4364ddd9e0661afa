package normalize

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const percentToken = "percentage"

// Normalizer rewrites raw headers into canonical snake-case names.
type Normalizer struct {
	renames map[string]string
}

// NewNormalizer builds a Normalizer over the given rename table. Keys are
// folded the same way headers are, so "SV%" and "sv%" are equivalent.
func NewNormalizer(renames map[string]string) *Normalizer {
	n := &Normalizer{renames: make(map[string]string, len(renames))}
	for k, v := range renames {
		n.renames[fold(k)] = v
	}
	return n
}

// Header maps one raw header. The rename table is consulted with the literal
// % first and again after % has been spelled out; unmapped headers pass
// through in their folded form.
func (n *Normalizer) Header(raw string) string {
	h := fold(raw)
	if v, ok := n.renames[h]; ok {
		return v
	}
	h = spellPercent(h)
	if v, ok := n.renames[h]; ok {
		return v
	}
	return h
}

// Headers maps a header row. Compute it once per file and pass the result to
// Rows.
func (n *Normalizer) Headers(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = n.Header(h)
	}
	return out
}

// Rows zips normalized headers with each row of cells. When several headers
// map to the same name the first non-empty cell wins.
func (n *Normalizer) Rows(headers []string, rows [][]string) []Row {
	out := make([]Row, 0, len(rows))
	for _, cells := range rows {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i >= len(cells) {
				break
			}
			if prev, ok := row[h]; ok && strings.TrimSpace(prev) != "" {
				continue
			}
			row[h] = cells[i]
		}
		out = append(out, row)
	}
	return out
}

// Normalize maps a single raw-keyed row. Colliding keys are resolved in
// sorted raw-key order, first non-empty value winning.
func (n *Normalizer) Normalize(row Row) Row {
	keys := slices.Sorted(maps.Keys(row))
	cells := make([]string, len(keys))
	for i, k := range keys {
		cells[i] = row[k]
	}
	return n.Rows(n.Headers(keys), [][]string{cells})[0]
}

func fold(s string) string {
	s = cases.Lower(language.Und).String(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "_")
}

// spellPercent replaces each % with the word "percentage", separated from its
// neighbours by underscores.
func spellPercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i > 0 && s[i-1] != '_' && s[i-1] != '%' {
			b.WriteByte('_')
		}
		b.WriteString(percentToken)
		if i+1 < len(s) && s[i+1] != '_' {
			b.WriteByte('_')
		}
	}
	return b.String()
}
