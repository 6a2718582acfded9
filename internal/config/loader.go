package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the per-user directory holding the config, database and log.
const DirName = ".mindgym"

// ErrInvalid is returned when a loaded configuration cannot drive the games.
var ErrInvalid = errors.New("config: invalid configuration")

// Load loads the game configuration.
// Search order: customPath -> ~/.mindgym/config.yaml -> ./configs/mindgym.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mindgym.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(nil); err == nil {
		return cfg, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// parse decodes data over the embedded defaults and validates the result.
// A nil data decodes only the embedded defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultGamesYAML, &cfg); err != nil {
		return Config{}, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserPath returns a path inside ~/.mindgym, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DirName, filename)
}

// Validate checks the values the games rely on.
func (c *Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Aim.Targets > 0, "aim.targets must be positive"},
		{c.Aim.Rows > 0 && c.Aim.Cols > 0, "aim grid must be non-empty"},
		{c.Chimp.StartCount > 0 && c.Chimp.StartCount <= c.Chimp.Rows*c.Chimp.Cols, "chimp.start_count must fit the grid"},
		{c.Chimp.Strikes > 0, "chimp.strikes must be positive"},
		{c.NumberMemory.StartDigits > 0 && c.NumberMemory.MaxDigits >= c.NumberMemory.StartDigits, "number_memory digits out of range"},
		{c.NumberMemory.Lives > 0, "number_memory.lives must be positive"},
		{c.VisualMemory.Lives > 0 && c.VisualMemory.MissesPerLevel > 0, "visual_memory lives and misses must be positive"},
		{len(c.VisualMemory.Grid) > 0, "visual_memory.grid needs at least one step"},
		{c.VerbalMemory.Lives > 0, "verbal_memory.lives must be positive"},
		{len(c.VerbalMemory.Words) >= 2, "verbal_memory.words needs at least two words"},
		{c.VerbalMemory.SeenRatio >= 0 && c.VerbalMemory.SeenRatio <= 1, "verbal_memory.seen_ratio must be within [0, 1]"},
		{c.SequenceMemory.Size >= 2, "sequence_memory.size must be at least 2"},
		{c.Reaction.Attempts > 0, "reaction.attempts must be positive"},
		{c.Reaction.MinWait > 0 && c.Reaction.MaxWait >= c.Reaction.MinWait, "reaction wait window is invalid"},
		{c.Schulte.MinSize >= 2 && c.Schulte.MinSize <= c.Schulte.MaxSize, "schulte size range is invalid"},
		{c.NPuzzle.Size >= 2, "npuzzle.size must be at least 2"},
		{c.LastCircle.StartCount >= 2 && c.LastCircle.StartCount <= c.LastCircle.Rows*c.LastCircle.Cols, "last_circle.start_count must fit the grid"},
		{c.LastCircle.Lives > 0, "last_circle.lives must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.what)
		}
	}
	for _, step := range c.VisualMemory.Grid {
		if step.Size < 2 {
			return fmt.Errorf("%w: visual_memory.grid size %d at level %d", ErrInvalid, step.Size, step.Level)
		}
	}
	return nil
}
