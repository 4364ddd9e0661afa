package config

import (
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "GOALIES_"
	envConfig  = envPrefix + "CONFIG"
	listSplits = ","
)

// Load builds a Config by layering defaults, an optional file and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. YAML file at path, or at $GOALIES_CONFIG when path is empty
//  3. env (prefix GOALIES_, e.g. GOALIES_BASE_DIR)
//
// Map values such as rename_table are merged into the defaults rather than
// replacing them.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// GOALIES_BASE_DIR -> base_dir; underscores are kept to match the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	k.Delete("config")

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Extensions = splitList(cfg.Extensions)
	cfg.PercentageFields = splitList(cfg.PercentageFields)
	cfg.CanonicalColumns = splitList(cfg.CanonicalColumns)

	if err := mergo.Merge(&cfg, *New()); err != nil {
		return nil, fmt.Errorf("merge defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// splitList expands comma separated entries, which is how list values arrive
// from the environment.
func splitList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		for _, p := range strings.Split(v, listSplits) {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
