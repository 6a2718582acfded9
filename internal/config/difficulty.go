package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// ErrUnknownPreset is returned for a difficulty name that is not a Preset.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a flag value into a Preset. Empty means normal.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetNormal, nil
	}
	p := Preset(strings.ToLower(name))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected easy, normal or hard)", ErrUnknownPreset, name)
}

// presetScale holds how a preset changes display times and life budgets.
type presetScale struct {
	show  float64 // Multiplier for memorize/flash durations
	lives int     // Added to every life or strike budget
}

func scaleFor(p Preset) (presetScale, error) {
	switch p {
	case PresetEasy:
		return presetScale{show: 1.5, lives: 1}, nil
	case PresetNormal:
		return presetScale{show: 1.0, lives: 0}, nil
	case PresetHard:
		return presetScale{show: 0.7, lives: -1}, nil
	default:
		return presetScale{}, fmt.Errorf("%w: %q", ErrUnknownPreset, p)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy lengthens display times and adds a life; hard shortens them and
// removes one, never going below a single life.
func ApplyPreset(cfg *Config, preset Preset) error {
	s, err := scaleFor(preset)
	if err != nil {
		return err
	}

	cfg.Chimp.Strikes = adjustLives(cfg.Chimp.Strikes, s.lives)
	cfg.VisualMemory.Lives = adjustLives(cfg.VisualMemory.Lives, s.lives)
	cfg.VerbalMemory.Lives = adjustLives(cfg.VerbalMemory.Lives, s.lives)
	cfg.LastCircle.Lives = adjustLives(cfg.LastCircle.Lives, s.lives)
	if preset == PresetEasy {
		// Number memory is one-strike; easy grants a second try
		cfg.NumberMemory.Lives = adjustLives(cfg.NumberMemory.Lives, s.lives)
	}

	cfg.NumberMemory.ShowBase = scaleDuration(cfg.NumberMemory.ShowBase, s.show)
	cfg.NumberMemory.ShowPerDigit = scaleDuration(cfg.NumberMemory.ShowPerDigit, s.show)
	cfg.VisualMemory.Show = scaleDuration(cfg.VisualMemory.Show, s.show)
	cfg.SequenceMemory.Flash = scaleDuration(cfg.SequenceMemory.Flash, s.show)
	cfg.SequenceMemory.Gap = scaleDuration(cfg.SequenceMemory.Gap, s.show)
	cfg.LastCircle.Interval = scaleDuration(cfg.LastCircle.Interval, s.show)
	return nil
}

func adjustLives(lives, delta int) int {
	if lives+delta < 1 {
		return 1
	}
	return lives + delta
}

// scaleDuration multiplies d by factor, rounded to the millisecond and never below 50ms.
func scaleDuration(d time.Duration, factor float64) time.Duration {
	ms := math.Round(float64(d.Milliseconds()) * clampF(factor, 0.1, 10))
	return time.Duration(math.Max(ms, 50)) * time.Millisecond
}

// ShowTime returns how long an n-digit number stays on screen.
func (c NumberMemoryConfig) ShowTime(digits int) time.Duration {
	if digits < 1 {
		digits = 1
	}
	return c.ShowBase + time.Duration(digits)*c.ShowPerDigit
}

// GridSize returns the side of the visual memory grid at the given level:
// the size of the last step whose level has been reached.
func (c VisualMemoryConfig) GridSize(level int) int {
	steps := append([]GridStep(nil), c.Grid...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].Level < steps[j].Level })

	size := 3
	if len(steps) > 0 {
		size = steps[0].Size
	}
	for _, s := range steps {
		if level >= s.Level {
			size = s.Size
		}
	}
	return size
}

// Tiles returns how many tiles light up at the given level, capped so at
// least one cell stays dark.
func (c VisualMemoryConfig) Tiles(level int) int {
	size := c.GridSize(level)
	n := level + c.TileOffset
	if limit := size*size - 1; n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Wait returns the reaction test's random delay for a uniform sample u in [0, 1).
func (c ReactionConfig) Wait(u float64) time.Duration {
	u = clampF(u, 0, 1)
	span := float64(c.MaxWait - c.MinWait)
	return c.MinWait + time.Duration(u*span)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
