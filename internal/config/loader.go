package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the gameplay config file name.
const ConfigFile = "hexfleet.yaml"

// LoadHexfleet loads the gameplay configuration.
// Search order: customPath -> ~/.hexfleet/configs/hexfleet.yaml ->
// ./configs/hexfleet.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadHexfleet(customPath string) (HexfleetConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HexfleetConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return HexfleetConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryFile(filepath.Join("configs", ConfigFile)); ok {
		return cfg, nil
	}

	cfg, err := Parse(defaultHexfleetYAML)
	if err != nil {
		return DefaultHexfleetConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (HexfleetConfig, error) {
	cfg := DefaultHexfleetConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HexfleetConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return HexfleetConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML, used by `hexfleet config dump`.
func Marshal(cfg HexfleetConfig) ([]byte, error) {
	out, err := yaml.Marshal(durationsAsStrings(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}

// tryFile loads an optional config file.
func tryFile(path string) (HexfleetConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HexfleetConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return HexfleetConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexfleet", "configs", filename)
}

// yamlTimings mirrors TimingsConfig so dumps always carry duration strings.
type yamlTimings struct {
	Swap string `yaml:"swap"`
	Pop  string `yaml:"pop"`
	Fall string `yaml:"fall"`
}

type yamlConfig struct {
	Timings  yamlTimings    `yaml:"timings"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Board    BoardConfig    `yaml:"board"`
	Modules  []ModuleConfig `yaml:"modules"`
}

func durationsAsStrings(cfg HexfleetConfig) yamlConfig {
	return yamlConfig{
		Timings: yamlTimings{
			Swap: cfg.Timings.Swap.String(),
			Pop:  cfg.Timings.Pop.String(),
			Fall: cfg.Timings.Fall.String(),
		},
		Gameplay: cfg.Gameplay,
		Board:    cfg.Board,
		Modules:  cfg.Modules,
	}
}
