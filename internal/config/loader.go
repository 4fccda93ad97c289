package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.hoodierun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
// Files only need to set the keys they change; everything else keeps its
// default value.
func Load(customPath string) (RunnerConfig, error) {
	cfg, err := parse(defaultRunnerYAML, DefaultRunnerConfig())
	if err != nil {
		cfg = DefaultRunnerConfig() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		custom, err := parse(data, cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := custom.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return custom, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files there are skipped rather than reported.
	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if found, err := parse(data, cfg); err == nil && found.Validate() == nil {
			return found, nil
		}
	}

	return cfg, nil
}

// LoadWithPreset loads the configuration and applies a difficulty preset.
func LoadWithPreset(customPath, preset string) (RunnerConfig, error) {
	p, err := ParsePreset(preset)
	if err != nil {
		return RunnerConfig{}, err
	}
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyRunnerPreset(&cfg, p)
	return cfg, nil
}

// parse decodes YAML on top of base. Archetypes are replaced, not merged.
func parse(data []byte, base RunnerConfig) (RunnerConfig, error) {
	cfg := base
	cfg.Obstacles.Archetypes = append([]Archetype(nil), base.Obstacles.Archetypes...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hoodierun", "configs", filename)
}
