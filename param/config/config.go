package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	defaultLocale      = "en"
	defaultSeparator   = ","
	defaultDatePattern = "dd/MM/yyyy"
	defaultTrueValue   = "true"
	defaultFalseValue  = "false"
	defaultNewline     = "\n"
)

// Config controls how a registry converts parameter values.
type Config struct {
	Locale          string `yaml:"locale,omitempty" json:"locale,omitempty"`
	Separator       string `yaml:"separator,omitempty" json:"separator,omitempty"`
	ThreadSafe      *bool  `yaml:"threadSafe,omitempty" json:"threadSafe,omitempty"`
	DatePattern     string `yaml:"datePattern,omitempty" json:"datePattern,omitempty"`
	TrueValue       string `yaml:"trueValue,omitempty" json:"trueValue,omitempty"`
	FalseValue      string `yaml:"falseValue,omitempty" json:"falseValue,omitempty"`
	Newline         string `yaml:"newline,omitempty" json:"newline,omitempty"`
	ResourceBaseURL string `yaml:"resourceBaseURL,omitempty" json:"resourceBaseURL,omitempty"`
}

// Load downloads and decodes a configuration; URL may be a local path or any
// scheme supported by afs.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	cfg.Defaults()
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Defaults fills fields left empty. An unset ThreadSafe means true.
func (c *Config) Defaults() {
	if c.ThreadSafe == nil {
		threadSafe := true
		c.ThreadSafe = &threadSafe
	}
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if c.Separator == "" {
		c.Separator = defaultSeparator
	}
	if c.DatePattern == "" {
		c.DatePattern = defaultDatePattern
	}
	if c.TrueValue == "" {
		c.TrueValue = defaultTrueValue
	}
	if c.FalseValue == "" {
		c.FalseValue = defaultFalseValue
	}
	if c.Newline == "" {
		c.Newline = defaultNewline
	}
}

// IsThreadSafe reports whether registries use the copy-on-write converter
// list; unset means true.
func (c *Config) IsThreadSafe() bool {
	return c.ThreadSafe == nil || *c.ThreadSafe
}

func (c *Config) Validate() error {
	if c.Separator == "" {
		return errors.New("separator was empty")
	}
	if c.TrueValue == c.FalseValue {
		return fmt.Errorf("true and false values were both %q", c.TrueValue)
	}
	return nil
}
