package normalize

import (
	"slices"

	"github.com/antzucaro/matchr"
)

// hintThreshold is the Jaro-Winkler similarity above which a dropped header
// is reported with its closest canonical column.
const hintThreshold = 0.85

// Projected is a row fitted to the canonical column list. Values[i] is nil when
// Columns[i] was absent from the row.
type Projected struct {
	Columns []string
	Values  []*string
}

// DroppedColumn is a normalized header with no canonical column.
type DroppedColumn struct {
	Name    string  `json:"name"`
	Closest string  `json:"closest,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

// Projector fits rows to a fixed, ordered column list.
type Projector struct {
	columns []string
	known   map[string]struct{}
}

func NewProjector(columns []string) *Projector {
	p := &Projector{
		columns: slices.Clone(columns),
		known:   make(map[string]struct{}, len(columns)),
	}
	for _, c := range columns {
		p.known[c] = struct{}{}
	}
	return p
}

// Project returns exactly the configured columns in order. Missing columns are
// nil and columns outside the list are dropped.
func (p *Projector) Project(row Row) Projected {
	out := Projected{
		Columns: slices.Clone(p.columns),
		Values:  make([]*string, len(p.columns)),
	}
	for i, c := range p.columns {
		if v, ok := row[c]; ok {
			out.Values[i] = &v
		}
	}
	return out
}

// Dropped lists the headers Project will discard, in header order, each with
// the most similar canonical column when one is close enough.
func (p *Projector) Dropped(headers []string) []DroppedColumn {
	var out []DroppedColumn
	seen := make(map[string]bool)
	for _, h := range headers {
		if _, ok := p.known[h]; ok || seen[h] {
			continue
		}
		seen[h] = true

		d := DroppedColumn{Name: h}
		for _, c := range p.columns {
			if score := matchr.JaroWinkler(h, c, false); score > d.Score {
				d.Closest, d.Score = c, score
			}
		}
		if d.Score < hintThreshold {
			d.Closest, d.Score = "", 0
		}
		out = append(out, d)
	}
	return out
}
