package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/becomepm.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load loads the application configuration.
// Search order: customPath -> ~/.become-pm/config.yaml -> ./configs/becomepm.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (AppConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports which file the configuration
// came from ("embedded" or "default" for the built-in fallbacks).
func LoadWithSource(customPath string) (AppConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AppConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return AppConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "becomepm.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil || cfg.Validate() != nil {
		return Default(), "default", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".become-pm", filename)
}
