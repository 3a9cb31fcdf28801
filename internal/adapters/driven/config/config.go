// Package config loads tool configuration from a TOML file in the
// gdocstats config directory. All values have working defaults; the
// file is optional and CLI flags override it.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Defaults for the analysis run.
const (
	DefaultFetchDelaySeconds = 3
	DefaultLookbackDays      = 365
	DefaultOutputHTML        = "document_metrics.html"
	DefaultBaselinePolicy    = "on-retain"
)

// Config holds the tool configuration.
type Config struct {
	// FetchDelaySeconds is the fixed pause between consecutive revision
	// content exports. The export endpoint has an unstated rate limit;
	// this is policy, not adaptive backoff.
	FetchDelaySeconds int `toml:"fetch_delay_seconds"`

	// LookbackDays bounds the activity history query.
	LookbackDays int `toml:"lookback_days"`

	// OutputHTML is the path of the generated chart page.
	OutputHTML string `toml:"output_html"`

	// BaselinePolicy selects the word-growth baseline behavior:
	// "on-retain" or "every-revision".
	BaselinePolicy string `toml:"baseline_policy"`

	// SkipWordGrowth disables the per-revision content walk.
	SkipWordGrowth bool `toml:"skip_word_growth"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		FetchDelaySeconds: DefaultFetchDelaySeconds,
		LookbackDays:      DefaultLookbackDays,
		OutputHTML:        DefaultOutputHTML,
		BaselinePolicy:    DefaultBaselinePolicy,
	}
}

// Dir returns the gdocstats config directory, creating it if needed.
// Defaults to ~/.gdocstats.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".gdocstats")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads the config file at path, applying defaults for absent
// values. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadDefault loads the config file from the config directory.
func LoadDefault() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), err
	}
	return Load(filepath.Join(dir, "config.toml"))
}

func (c *Config) applyDefaults() {
	if c.FetchDelaySeconds <= 0 {
		c.FetchDelaySeconds = DefaultFetchDelaySeconds
	}
	if c.LookbackDays <= 0 {
		c.LookbackDays = DefaultLookbackDays
	}
	if c.OutputHTML == "" {
		c.OutputHTML = DefaultOutputHTML
	}
	if c.BaselinePolicy == "" {
		c.BaselinePolicy = DefaultBaselinePolicy
	}
}
