package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/smstx/internal/parser"
	"github.com/cleared-dev/smstx/internal/present"
	"github.com/cleared-dev/smstx/internal/template"
)

// FileName is the default config file name.
const FileName = "smstx.yaml"

// Settings is the read-only settings lookup used when presenting transactions.
type Settings interface {
	BaseCurrency() string
}

// Config represents the top-level smstx.yaml configuration.
type Config struct {
	Settings     SettingsConfig        `yaml:"settings"`
	Display      DisplayConfig         `yaml:"display"`
	Parsing      ParsingConfig         `yaml:"parsing"`
	AccountsFile string                `yaml:"accounts_file"`
	Templates    []template.Definition `yaml:"templates,omitempty"`

	dir string
}

// SettingsConfig holds user settings.
type SettingsConfig struct {
	BaseCurrency string `yaml:"base_currency"`
}

// DisplayConfig controls day labels.
type DisplayConfig struct {
	Locale   string `yaml:"locale"`   // "en" or "ru"
	Timezone string `yaml:"timezone"` // IANA name, e.g. "Europe/Minsk"
}

// ParsingConfig controls the transaction parser.
type ParsingConfig struct {
	AmountPolicy string `yaml:"amount_policy"` // "reject" or "zero"
}

// Load reads a smstx.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.dir = filepath.Dir(path)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Settings: SettingsConfig{
			BaseCurrency: "BYN",
		},
		Display: DisplayConfig{
			Locale:   "ru",
			Timezone: "UTC",
		},
		Parsing: ParsingConfig{
			AmountPolicy: string(parser.AmountReject),
		},
		AccountsFile: "accounts.csv",
	}
}

// Validate checks the values that other packages would otherwise reject later.
func (c *Config) Validate() error {
	if _, err := present.Locale(c.Display.Locale); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := parser.ParseAmountPolicy(c.Parsing.AmountPolicy); err != nil {
		return err
	}
	return nil
}

// BaseCurrency returns the currency amounts are shown in.
func (c *Config) BaseCurrency() string {
	return c.Settings.BaseCurrency
}

// Location returns the display time zone. Empty means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Display.Timezone, err)
	}
	return loc, nil
}

// AccountsPath resolves AccountsFile relative to the config file's directory.
func (c *Config) AccountsPath() string {
	if c.AccountsFile == "" || filepath.IsAbs(c.AccountsFile) {
		return c.AccountsFile
	}
	return filepath.Join(c.dir, c.AccountsFile)
}

// Registry returns the built-in templates followed by the configured ones.
func (c *Config) Registry() (*template.Registry, error) {
	reg := template.DefaultRegistry()
	for i, def := range c.Templates {
		tpl, err := template.FromDefinition(def)
		if err != nil {
			return nil, fmt.Errorf("templates[%d]: %w", i, err)
		}
		if reg.Get(tpl.Name) != nil {
			return nil, fmt.Errorf("templates[%d]: duplicate template name %q", i, tpl.Name)
		}
		reg.Register(tpl)
	}
	return reg, nil
}
