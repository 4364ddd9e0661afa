// Package config defines the pipeline configuration and its defaults.
//
// Components never read process-wide state: the loaded Config is passed to
// their constructors, so tests can build one with New and override fields.
package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/baxromumarov/goalie-stats/internal/goalie"
	"github.com/baxromumarov/goalie-stats/internal/normalize"
)

const (
	SourceMP  = "mp"
	SourceNST = "nst"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr is the query API listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// BaseDir holds one subdirectory of raw extracts per source.
	BaseDir         string `koanf:"base_dir"`
	SourceMPSubdir  string `koanf:"source_mp_subdir"`
	SourceNSTSubdir string `koanf:"source_nst_subdir"`

	// MPDelimiter and NSTDelimiter split fields of delimited extracts.
	MPDelimiter  string `koanf:"mp_delimiter"`
	NSTDelimiter string `koanf:"nst_delimiter"`

	// Extensions filters candidate files, e.g. ".csv".
	Extensions []string `koanf:"extensions"`

	// Table is the target table name.
	Table string `koanf:"table"`

	// RenameTable maps folded raw headers to canonical names. Entries from a
	// file or env are added to the defaults.
	RenameTable map[string]string `koanf:"rename_table"`

	PercentageFields []string `koanf:"percentage_fields"`
	CanonicalColumns []string `koanf:"canonical_columns"`
}

// Source is one upstream provider and where its extracts live.
type Source struct {
	Name      string
	Dir       string
	Delimiter rune
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		BaseDir:          "data",
		SourceMPSubdir:   SourceMP,
		SourceNSTSubdir:  SourceNST,
		MPDelimiter:      ",",
		NSTDelimiter:     "|",
		Extensions:       []string{".csv", ".html"},
		Table:            "goalies",
		RenameTable:      normalize.DefaultRenames(),
		PercentageFields: normalize.DefaultPercentageFields(),
		CanonicalColumns: goalie.ColumnNames(),
	}
}

// Sources returns the providers in processing order: mp, then nst.
func (c *Config) Sources() []Source {
	return []Source{
		{Name: SourceMP, Dir: filepath.Join(c.BaseDir, c.SourceMPSubdir), Delimiter: firstRune(c.MPDelimiter)},
		{Name: SourceNST, Dir: filepath.Join(c.BaseDir, c.SourceNSTSubdir), Delimiter: firstRune(c.NSTDelimiter)},
	}
}

// SourceNames lists the configured source identifiers.
func (c *Config) SourceNames() []string {
	return []string{SourceMP, SourceNST}
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	return ParseLevel(c.LogLevel)
}

// ParseLevel accepts debug, info, warn(ing) and error in any case. An empty
// string is info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, invalidf("unknown log level: %s", level)
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
