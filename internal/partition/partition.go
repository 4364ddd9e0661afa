// Package partition locates raw extract files and decodes their partition key
// from the {source}_{season_type}_{year}_goalies.<ext> naming convention.
package partition

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

const (
	delimiter = "_"
	suffix    = "goalies"
)

// yearPattern matches a season year as the scrapers write it: 2022 or 2008-2009.
var yearPattern = regexp.MustCompile(`^\d{4}(-\d{4})?$`)

// Key identifies one partition of raw data.
type Key struct {
	Source     string `json:"source"`
	SeasonType string `json:"season_type"`
	Year       string `json:"year"`
}

func (k Key) String() string {
	return k.Source + "/" + k.SeasonType + "/" + k.Year
}

// FileName renders the conventional extract name for k, e.g.
// mp_regular_season_2022_goalies.csv.
func (k Key) FileName(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.Join([]string{k.Source, k.SeasonType, k.Year, suffix}, delimiter) + ext
}

// NormalizeSeasonType lower-cases a season type and replaces inner spaces with
// underscores ("Regular Season" -> "regular_season").
func NormalizeSeasonType(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), delimiter))
}

// Parse decodes a partition key from a file name. The first segment is the
// source and must be one of sources, the last is the year and everything in
// between is the season type. A trailing "goalies" segment is optional. The
// year must look like 2022 or 2008-2009.
func Parse(name string, sources []string) (Key, error) {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(stem, delimiter)
	if n := len(parts); n > 0 && strings.EqualFold(parts[n-1], suffix) {
		parts = parts[:n-1]
	}
	if len(parts) < 3 {
		return Key{}, fmt.Errorf("%w: %q has %d segments, want source, season type and year", ErrMalformedPartitionName, base, len(parts))
	}

	key := Key{
		Source:     strings.ToLower(strings.TrimSpace(parts[0])),
		SeasonType: NormalizeSeasonType(strings.Join(parts[1:len(parts)-1], delimiter)),
		Year:       strings.TrimSpace(parts[len(parts)-1]),
	}
	switch {
	case key.Source == "" || key.SeasonType == "" || key.Year == "":
		return Key{}, fmt.Errorf("%w: %q has an empty segment", ErrMalformedPartitionName, base)
	case !yearPattern.MatchString(key.Year):
		return Key{}, fmt.Errorf("%w: %q has year %q, want YYYY or YYYY-YYYY", ErrMalformedPartitionName, base, key.Year)
	case len(sources) > 0 && !slices.Contains(sources, key.Source):
		return Key{}, fmt.Errorf("%w: %q has unknown source %q", ErrMalformedPartitionName, base, key.Source)
	}
	return key, nil
}
