package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/etnz/bondbook"
)

// defaultConfigFile is looked up in the working directory when no -config
// flag is given. Its absence is not an error.
const defaultConfigFile = ".bondbook.toml"

// Config holds all configuration settings for the bb tool.
type Config struct {
	Ingest IngestConfig `toml:"ingest"`
	Store  StoreConfig  `toml:"store"`
	Draw   DrawConfig   `toml:"draw"`
	Serve  ServeConfig  `toml:"serve"`
}

// IngestConfig holds the named configuration points of the ingestion engine.
type IngestConfig struct {
	Delimiters     string `toml:"delimiters"`      // token separator runes
	MaxSpan        int    `toml:"max_span"`        // largest accepted range span
	AcceptInverted bool   `toml:"accept_inverted"` // swap inverted bounds instead of rejecting
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // "file", "sqlite", "memory"
	Path    string `toml:"path"`    // folder (file) or database file (sqlite)
}

// DrawConfig points at the published draw results.
type DrawConfig struct {
	URL  string `toml:"url"`
	Path string `toml:"path"` // JSONPath selecting the winner list
}

// ServeConfig holds the web UI settings.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the most permissive parameterization.
func DefaultConfig() Config {
	return Config{
		Ingest: IngestConfig{
			Delimiters:     bondbook.DefaultDelimiters,
			MaxSpan:        bondbook.DefaultMaxSpan,
			AcceptInverted: true,
		},
		Store: StoreConfig{Backend: "file", Path: ".bondbook"},
		Draw:  DrawConfig{Path: bondbook.DefaultDrawPath},
		Serve: ServeConfig{Addr: "localhost:7167"},
	}
}

// LoadConfig reads the TOML configuration over the defaults. With an empty
// path it tries the default file and tolerates its absence.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	return cfg, nil
}

// Options converts the ingest section into engine options.
func (c Config) Options() bondbook.Options {
	return bondbook.Options{
		Delimiters:     c.Ingest.Delimiters,
		MaxSpan:        c.Ingest.MaxSpan,
		AcceptInverted: c.Ingest.AcceptInverted,
	}
}
