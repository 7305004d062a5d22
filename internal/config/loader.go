package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDaruma loads the game configuration.
// Search order: customPath -> ~/.daruma/configs/daruma.yaml -> ./configs/daruma.yaml -> embedded default.
// Only an explicit customPath can produce an error; the implicit locations
// are skipped when unreadable or invalid.
func LoadDaruma(customPath string) (DarumaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DarumaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DarumaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("daruma.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "daruma.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultDarumaYAML)
	if err != nil {
		return DefaultDarumaConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults so partial files only
// override the keys they set, then validates the result.
func parse(data []byte) (DarumaConfig, error) {
	cfg := DefaultDarumaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DarumaConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DarumaConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".daruma", "configs", filename)
}
