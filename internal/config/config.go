// Package config loads the optional YAML configuration file for the
// ttl2html CLI. CLI flags override config values; empty config fields
// mean "use the converter's defaults".
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rdita/go-ttl2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidPrefix   = errors.New("invalid prefix entry")
)

// Config holds all configuration for site generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Site     SiteConfig     `yaml:"site"`
	Index    IndexConfig    `yaml:"index"`
	Assets   AssetsConfig   `yaml:"assets"`
	Prefixes []PrefixConfig `yaml:"prefixes"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = must specify)
}

// SiteConfig defines titles and styling.
type SiteConfig struct {
	Title      string `yaml:"title"`      // page title (empty = "Definitions")
	IndexTitle string `yaml:"indexTitle"` // index title (empty = "Index of RDF Files")
	Style      string `yaml:"style"`      // stylesheet name (empty = "default")
	Strict     bool   `yaml:"strict"`     // fail files on malformed statements
}

// IndexConfig defines index page options.
type IndexConfig struct {
	Enabled bool `yaml:"enabled"` // generate index.html
	Readme  bool `yaml:"readme"`  // render README.md as the index preamble
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PrefixConfig binds an extra namespace prefix applied to every file,
// in addition to the prefixes each document declares itself.
type PrefixConfig struct {
	Name string `yaml:"name"` // may be empty (the default ":" prefix)
	IRI  string `yaml:"iri"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{Enabled: true, Readme: true},
	}
}

// LoadConfig reads and parses a YAML config file at the given path.
// Parsing is strict: unknown fields are rejected, which catches typos.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigName
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants the YAML schema can't express.
func (c *Config) Validate() error {
	for _, p := range c.Prefixes {
		if p.IRI == "" {
			return fmt.Errorf("%w: prefix %q has empty IRI", ErrInvalidPrefix, p.Name)
		}
	}
	return nil
}
