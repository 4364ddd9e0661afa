package config

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/baxromumarov/goalie-stats/internal/goalie"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseDir) == "" {
		return invalidf("base_dir must not be empty")
	}
	if c.SourceMPSubdir == "" || c.SourceNSTSubdir == "" {
		return invalidf("source subdirectories must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for name, d := range map[string]string{"mp_delimiter": c.MPDelimiter, "nst_delimiter": c.NSTDelimiter} {
		if utf8.RuneCountInString(d) != 1 || d == "\n" || d == "\r" || d == `"` {
			return invalidf("%s must be a single character other than quote or newline, got %q", name, d)
		}
	}
	if len(c.Extensions) == 0 {
		return invalidf("extensions must not be empty")
	}
	if !identifier.MatchString(c.Table) {
		return invalidf("table %q is not a plain identifier", c.Table)
	}

	if len(c.CanonicalColumns) == 0 {
		return invalidf("canonical_columns must not be empty")
	}
	seen := make(map[string]bool, len(c.CanonicalColumns))
	for _, col := range c.CanonicalColumns {
		if _, ok := goalie.Lookup(col); !ok {
			return invalidf("unknown canonical column %q", col)
		}
		if seen[col] {
			return invalidf("duplicate canonical column %q", col)
		}
		seen[col] = true
	}
	for _, f := range c.PercentageFields {
		if !slices.Contains(c.CanonicalColumns, f) {
			return invalidf("percentage field %q is not a canonical column", f)
		}
	}
	return nil
}
