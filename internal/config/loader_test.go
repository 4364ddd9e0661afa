package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/baxromumarov/goalie-stats/internal/config"
	"github.com/baxromumarov/goalie-stats/internal/goalie"
	"github.com/baxromumarov/goalie-stats/internal/normalize"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load("")

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseDir, convey.ShouldEqual, "data")
				convey.So(cfg.Table, convey.ShouldEqual, "goalies")
				convey.So(cfg.Extensions, convey.ShouldResemble, []string{".csv", ".html"})
				convey.So(cfg.CanonicalColumns, convey.ShouldResemble, goalie.ColumnNames())
				convey.So(cfg.RenameTable, convey.ShouldResemble, normalize.DefaultRenames())

				sources := cfg.Sources()
				convey.So(sources, convey.ShouldHaveLength, 2)
				convey.So(sources[0].Name, convey.ShouldEqual, "mp")
				convey.So(sources[0].Dir, convey.ShouldEqual, filepath.Join("data", "mp"))
				convey.So(sources[0].Delimiter, convey.ShouldEqual, ',')
				convey.So(sources[1].Name, convey.ShouldEqual, "nst")
				convey.So(sources[1].Delimiter, convey.ShouldEqual, '|')
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GOALIES_BASE_DIR", "/srv/raw")
			_ = os.Setenv("GOALIES_LOG_LEVEL", "debug")
			_ = os.Setenv("GOALIES_NST_DELIMITER", ";")
			_ = os.Setenv("GOALIES_EXTENSIONS", ".csv, .tsv")
			defer clearConfigEnvVars()

			cfg, err := config.Load("")

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseDir, convey.ShouldEqual, "/srv/raw")
				convey.So(cfg.NSTDelimiter, convey.ShouldEqual, ";")
				convey.So(cfg.Extensions, convey.ShouldResemble, []string{".csv", ".tsv"})

				level, err := cfg.SlogLevel()
				convey.So(err, convey.ShouldBeNil)
				convey.So(level, convey.ShouldEqual, slog.LevelDebug)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := writeConfig(t, `
base_dir: /var/goalies
source_nst_subdir: naturalstattrick
rename_table:
  "save pct": sv_percentage
percentage_fields:
  - sv_percentage
`)
			cfg, err := config.Load(path)

			convey.Convey("Then file values are layered over the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseDir, convey.ShouldEqual, "/var/goalies")
				convey.So(cfg.Sources()[1].Dir, convey.ShouldEqual, filepath.Join("/var/goalies", "naturalstattrick"))
				convey.So(cfg.PercentageFields, convey.ShouldResemble, []string{"sv_percentage"})
				convey.So(cfg.RenameTable["save pct"], convey.ShouldEqual, "sv_percentage")
				convey.So(cfg.RenameTable["gp"], convey.ShouldEqual, "games_played")
				convey.So(cfg.MPDelimiter, convey.ShouldEqual, ",")
			})
		})

		convey.Convey("When the file path comes from GOALIES_CONFIG", func() {
			path := writeConfig(t, "table: goalie_stats\n")
			_ = os.Setenv("GOALIES_CONFIG", path)
			_ = os.Setenv("GOALIES_TABLE", "goalies_env")
			defer clearConfigEnvVars()

			cfg, err := config.Load("")

			convey.Convey("Then env still wins over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Table, convey.ShouldEqual, "goalies_env")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a delimiter is longer than one character", func() {
			_ = os.Setenv("GOALIES_MP_DELIMITER", "||")
			defer clearConfigEnvVars()

			_, err := config.Load("")

			convey.Convey("Then it is rejected as invalid", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()
		convey.So(cfg.Validate(), convey.ShouldBeNil)

		cases := []struct {
			name   string
			mutate func(c *config.Config)
		}{
			{"empty base dir", func(c *config.Config) { c.BaseDir = " " }},
			{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }},
			{"quote delimiter", func(c *config.Config) { c.NSTDelimiter = `"` }},
			{"no extensions", func(c *config.Config) { c.Extensions = nil }},
			{"table injection", func(c *config.Config) { c.Table = "goalies; drop table x" }},
			{"unknown column", func(c *config.Config) { c.CanonicalColumns = append(c.CanonicalColumns, "shutouts") }},
			{"duplicate column", func(c *config.Config) { c.CanonicalColumns = append(c.CanonicalColumns, "team") }},
			{"percentage field outside the columns", func(c *config.Config) {
				c.CanonicalColumns = []string{"player_name"}
				c.PercentageFields = []string{"sv_percentage"}
			}},
		}
		for _, tc := range cases {
			convey.Convey("When it has "+tc.name, func() {
				c := config.New()
				tc.mutate(c)
				convey.So(errors.Is(c.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goalies.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearConfigEnvVars() {
	for _, k := range []string{
		"GOALIES_CONFIG",
		"GOALIES_BASE_DIR",
		"GOALIES_LOG_LEVEL",
		"GOALIES_MP_DELIMITER",
		"GOALIES_NST_DELIMITER",
		"GOALIES_EXTENSIONS",
		"GOALIES_TABLE",
	} {
		_ = os.Unsetenv(k)
	}
}
