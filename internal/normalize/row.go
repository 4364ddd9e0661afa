// Package normalize maps raw extract rows onto the canonical goalie columns.
//
// The stages form a pure chain: Normalizer renames headers, Coercer converts
// percentage strings and cleans the player name, WithPartition stamps the
// partition key and Projector fits the row to the canonical column list. Each
// stage returns a new value and leaves its input untouched.
package normalize

import (
	"maps"

	"github.com/baxromumarov/goalie-stats/internal/partition"
)

// Row is one record keyed by column name.
type Row map[string]string

func (r Row) Clone() Row {
	return maps.Clone(r)
}

// WithPartition returns a copy of row carrying the partition key columns.
// The key overrides any same-named value from the extract.
func WithPartition(row Row, key partition.Key) Row {
	out := make(Row, len(row)+3)
	maps.Copy(out, row)
	out["source"] = key.Source
	out["season_type"] = key.SeasonType
	out["year"] = key.Year
	return out
}
