package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the configuration of a demo.
// Search order: customPath -> ~/.bounce/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
//
// Files are decoded on top of the demo's hardcoded defaults, so a file only
// needs the keys it changes. An explicit customPath that cannot be read or
// parsed is an error; broken user or local files are skipped.
func Load(demoID, customPath string) (Demo, error) {
	cfg, _, err := LoadWithSource(demoID, customPath)
	return cfg, err
}

// LoadWithSource is like Load and also reports which file was used.
func LoadWithSource(demoID, customPath string) (Demo, Source, error) {
	base, _ := Default(demoID)

	// Try custom path first
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	filename := demoID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := decodeFile(userCfgPath, base); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := decodeFile(filepath.Join(localConfigDir, filename), base); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(demoID); data != nil {
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, SourceEmbedded, nil
		}
	}

	if _, ok := Default(demoID); !ok {
		return base, SourceBuiltin, fmt.Errorf("no configuration for demo %q", demoID)
	}
	return base, SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

func decodeFile(path string, base Demo) (Demo, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// localConfigDir is the project-local config directory, relative to the
// working directory.
var localConfigDir = "configs"

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// UserConfigDir returns ~/.bounce/configs, or empty if home is unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs")
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Demo) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
