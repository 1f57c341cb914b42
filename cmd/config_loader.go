package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/lsx/internal/config"
	"github.com/oakwood-commons/lsx/internal/formatter"
	"github.com/oakwood-commons/lsx/pkg/settings"
)

// configLoader centralizes config loading so callers avoid duplicating merge logic.
type configLoader struct {
	defaultConfig func() (config.Config, error)
}

var cfgLoader = configLoader{defaultConfig: config.Default}

func loadMergedConfig(cfgPath string) (config.Config, error) {
	return cfgLoader.loadMergedConfig(cfgPath)
}

func (l configLoader) loadMergedConfig(cfgPath string) (config.Config, error) {
	defaults := config.Default
	if l.defaultConfig != nil {
		defaults = l.defaultConfig
	}
	cfg, err := defaults()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}
	if cfgPath == "" {
		return cfg, nil
	}

	fileCfg, err := decodeConfigFile(cfgPath)
	if err != nil {
		return cfg, err
	}
	return config.Merge(cfg, fileCfg), nil
}

// decodeConfigFile reads a YAML or TOML (by extension) config file.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func decodeConfigFile(path string) (config.Config, error) {
	var cfg config.Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
		return cfg, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfigPath returns the explicit path if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/lsx/config.yaml) or ~/.config/lsx/config.yaml if present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		candidate := filepath.Join(dir, settings.CliBinaryName, name)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

func marshalConfig(cfg config.Config, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "yaml", "yml":
		return yaml.Marshal(cfg)
	case "toml":
		return toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unsupported config output %q (expected yaml or toml)", format)
	}
}

func applyThemeFromConfig(cfg config.Config) {
	formatter.SetTableTheme(formatter.TableColors{
		Directory: formatter.ParseColor(cfg.Theme.Directory),
		File:      formatter.ParseColor(cfg.Theme.File),
		Header:    formatter.ParseColor(cfg.Theme.Header),
		Border:    formatter.ParseColor(cfg.Theme.Border),
	})
}
