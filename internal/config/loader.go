package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the golf configuration.
// Search order: customPath -> ~/.golf/config.yaml -> ./configs/golf.yaml -> embedded default
// Files only need to name the keys they change; everything else keeps its default.
func Load(customPath string) (GolfConfig, error) {
	cfg := DefaultGolfConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultGolfConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "golf.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultGolfConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGolfYAML, &cfg); err != nil {
		return DefaultGolfConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks values the simulation cannot run without.
func (c GolfConfig) Validate() error {
	switch {
	case c.Physics.Friction <= 0 || c.Physics.Friction >= 1:
		return fmt.Errorf("config: friction %v must be in (0,1)", c.Physics.Friction)
	case c.Physics.RingPoints <= 0 || c.Physics.NormalPoints <= 0:
		return fmt.Errorf("config: ring sample counts must be positive")
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("config: tick_rate %d must be positive", c.Timing.TickRate)
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("config: playfield %dx%d must be positive", c.Playfield.Width, c.Playfield.Height)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: volume %v must be in [0,1]", c.Audio.Volume)
	}
	return nil
}

// Dir returns the per-user golf directory (~/.golf), or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".golf")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
