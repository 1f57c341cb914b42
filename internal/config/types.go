// Package config defines the lsx configuration file and its embedded defaults.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// Config is the on-disk configuration. Pointer fields distinguish "unset"
// from false so a user file only overrides what it names.
type Config struct {
	App      AppConfig `yaml:"app" toml:"app"`
	Defaults Defaults  `yaml:"defaults" toml:"defaults"`
	Theme    Theme     `yaml:"theme" toml:"theme"`
}

// AppConfig carries display metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
}

// Defaults are flag values used when the flag is not given.
type Defaults struct {
	Size    *bool `yaml:"size,omitempty" toml:"size,omitempty"`
	Types   *bool `yaml:"types,omitempty" toml:"types,omitempty"`
	Strict  *bool `yaml:"strict,omitempty" toml:"strict,omitempty"`
	NoColor *bool `yaml:"no_color,omitempty" toml:"no_color,omitempty"`
}

// Theme holds lipgloss color strings: ANSI indexes ("12") or hex ("#5f87ff").
type Theme struct {
	Directory string `yaml:"directory,omitempty" toml:"directory,omitempty"`
	File      string `yaml:"file,omitempty" toml:"file,omitempty"`
	Header    string `yaml:"header,omitempty" toml:"header,omitempty"`
	Border    string `yaml:"border,omitempty" toml:"border,omitempty"`
}

// Default decodes the embedded default config.
func Default() (Config, error) {
	var cfg Config
	if len(embeddedDefaultConfig) == 0 {
		return cfg, fmt.Errorf("embedded default config is empty")
	}
	if err := yaml.Unmarshal(embeddedDefaultConfig, &cfg); err != nil {
		return cfg, fmt.Errorf("decode default config: %w", err)
	}
	return cfg, nil
}

// Merge returns base with every field set in over applied on top.
func Merge(base, over Config) Config {
	out := base
	if over.App.Name != "" {
		out.App.Name = over.App.Name
	}
	mergeBool(&out.Defaults.Size, over.Defaults.Size)
	mergeBool(&out.Defaults.Types, over.Defaults.Types)
	mergeBool(&out.Defaults.Strict, over.Defaults.Strict)
	mergeBool(&out.Defaults.NoColor, over.Defaults.NoColor)
	mergeString(&out.Theme.Directory, over.Theme.Directory)
	mergeString(&out.Theme.File, over.Theme.File)
	mergeString(&out.Theme.Header, over.Theme.Header)
	mergeString(&out.Theme.Border, over.Theme.Border)
	return out
}

func mergeBool(dst **bool, src *bool) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Bool dereferences an optional flag default.
func Bool(b *bool) bool {
	return b != nil && *b
}
