package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads configuration.
// Search order: customPath -> ~/.fable/config.yaml -> ./fable.yaml -> defaults.
// A custom path that cannot be read or parsed is an error; the fallback
// locations are optional.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return parse(data, userPath)
		}
	}

	if data, err := os.ReadFile("fable.yaml"); err == nil {
		return parse(data, "fable.yaml")
	}

	return Default(), nil
}

// parse decodes YAML over the defaults so missing fields keep their
// default values.
func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fable", "config.yaml")
}
