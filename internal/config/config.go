// Package config provides YAML-based game configuration loading and
// difficulty presets for the mini-games.
package config

import "time"

// Config holds the tunables of every game. Each section is handed to the
// matching game factory by the registry.
type Config struct {
	Aim            AimConfig            `yaml:"aim"`
	Chimp          ChimpConfig          `yaml:"chimp"`
	NumberMemory   NumberMemoryConfig   `yaml:"number_memory"`
	VisualMemory   VisualMemoryConfig   `yaml:"visual_memory"`
	VerbalMemory   VerbalMemoryConfig   `yaml:"verbal_memory"`
	SequenceMemory SequenceMemoryConfig `yaml:"sequence_memory"`
	Reaction       ReactionConfig       `yaml:"reaction"`
	Schulte        SchulteConfig        `yaml:"schulte"`
	NPuzzle        NPuzzleConfig        `yaml:"npuzzle"`
	LastCircle     LastCircleConfig     `yaml:"last_circle"`
}

// AimConfig configures the aim trainer.
type AimConfig struct {
	Targets       int   `yaml:"targets"`        // Hits per round (the variant)
	TargetOptions []int `yaml:"target_options"` // Selectable target counts
	Rows          int   `yaml:"rows"`
	Cols          int   `yaml:"cols"`
}

// ChimpConfig configures the chimp test.
type ChimpConfig struct {
	StartCount int           `yaml:"start_count"`
	Strikes    int           `yaml:"strikes"`
	Rows       int           `yaml:"rows"`
	Cols       int           `yaml:"cols"`
	Feedback   time.Duration `yaml:"feedback"` // Pause on the result screen between levels
}

// NumberMemoryConfig configures number memory.
type NumberMemoryConfig struct {
	StartDigits  int           `yaml:"start_digits"`
	MaxDigits    int           `yaml:"max_digits"`
	Lives        int           `yaml:"lives"`
	ShowBase     time.Duration `yaml:"show_base"`      // Display time for any number
	ShowPerDigit time.Duration `yaml:"show_per_digit"` // Added display time per digit
	Feedback     time.Duration `yaml:"feedback"`
}

// GridStep switches the visual memory grid to Size from Level on.
type GridStep struct {
	Level int `yaml:"level"`
	Size  int `yaml:"size"`
}

// VisualMemoryConfig configures visual memory.
type VisualMemoryConfig struct {
	Lives          int           `yaml:"lives"`
	MissesPerLevel int           `yaml:"misses_per_level"` // Wrong picks that cost a life
	TileOffset     int           `yaml:"tile_offset"`      // Tiles = level + offset
	Grid           []GridStep    `yaml:"grid"`
	Show           time.Duration `yaml:"show"`
	Feedback       time.Duration `yaml:"feedback"`
}

// VerbalMemoryConfig configures verbal memory.
type VerbalMemoryConfig struct {
	Lives     int      `yaml:"lives"`
	SeenRatio float64  `yaml:"seen_ratio"` // Chance of repeating a seen word once any exist
	Words     []string `yaml:"words"`
}

// SequenceMemoryConfig configures sequence memory.
type SequenceMemoryConfig struct {
	Size     int           `yaml:"size"`
	Flash    time.Duration `yaml:"flash"` // How long one cell stays lit
	Gap      time.Duration `yaml:"gap"`   // Dark pause between flashes
	Feedback time.Duration `yaml:"feedback"`
}

// ReactionConfig configures the reaction time test.
type ReactionConfig struct {
	Attempts int           `yaml:"attempts"`
	MinWait  time.Duration `yaml:"min_wait"`
	MaxWait  time.Duration `yaml:"max_wait"`
	Feedback time.Duration `yaml:"feedback"`
}

// SchulteConfig configures the Schulte table.
type SchulteConfig struct {
	Size    int   `yaml:"size"`
	MinSize int   `yaml:"min_size"`
	MaxSize int   `yaml:"max_size"`
	Sizes   []int `yaml:"sizes"`
}

// NPuzzleConfig configures the sliding puzzle.
type NPuzzleConfig struct {
	Size  int   `yaml:"size"`
	Sizes []int `yaml:"sizes"`
}

// LastCircleConfig configures last circle.
type LastCircleConfig struct {
	StartCount   int           `yaml:"start_count"`
	StartOptions []int         `yaml:"start_options"`
	Lives        int           `yaml:"lives"`
	Rows         int           `yaml:"rows"`
	Cols         int           `yaml:"cols"`
	Interval     time.Duration `yaml:"interval"` // Delay between circle appearances
	Feedback     time.Duration `yaml:"feedback"`
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the accepted preset names.
var Presets = []Preset{PresetEasy, PresetNormal, PresetHard}
