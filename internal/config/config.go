// Package config loads the movebind CLI configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/reoring/movebind/i18n"
)

// Registry names.
const (
	RegistrySource  = "source"  // generated bindings only
	RegistryOnChain = "onchain" // generated bindings plus manifests
)

// Config is the CLI configuration file.
type Config struct {
	Log       LogConfig  `yaml:"log"`
	Lang      string     `yaml:"lang"` // language of error reports
	Registry  string     `yaml:"registry"`
	Manifests []string   `yaml:"manifests"`
	CacheSize int        `yaml:"cacheSize"`
	JSON      JSONConfig `yaml:"json"`
	// LenientPhantoms resolves unregistered types in phantom positions by
	// name instead of failing.
	LenientPhantoms bool `yaml:"lenientPhantoms"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// JSONConfig controls JSON input parsing.
type JSONConfig struct {
	AllowDuplicateKeys bool `yaml:"allowDuplicateKeys"`
	MaxDepth           int  `yaml:"maxDepth"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:       LogConfig{Level: "warn", Format: "console"},
		Lang:      "en",
		Registry:  RegistrySource,
		CacheSize: 256,
		JSON:      JSONConfig{MaxDepth: 128},
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	switch c.Registry {
	case RegistrySource, RegistryOnChain:
	default:
		return fmt.Errorf("registry must be %q or %q, got %q", RegistrySource, RegistryOnChain, c.Registry)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if !slices.Contains(i18n.Languages, c.Lang) {
		return fmt.Errorf("lang must be one of %v, got %q", i18n.Languages, c.Lang)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cacheSize must not be negative, got %d", c.CacheSize)
	}
	if c.JSON.MaxDepth < 0 {
		return fmt.Errorf("json.maxDepth must not be negative, got %d", c.JSON.MaxDepth)
	}
	if c.Registry == RegistrySource && len(c.Manifests) > 0 {
		return errors.New("manifests are only read by the onchain registry")
	}
	return nil
}
