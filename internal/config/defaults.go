package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/games.yaml
var defaultGamesYAML []byte

// Default returns the hardcoded configuration used when no YAML is available.
// It matches defaults/games.yaml except for the verbal memory word list,
// which is kept short here.
func Default() Config {
	return Config{
		Aim: AimConfig{
			Targets:       30,
			TargetOptions: []int{10, 20, 30, 50},
			Rows:          6,
			Cols:          6,
		},
		Chimp: ChimpConfig{
			StartCount: 4,
			Strikes:    3,
			Rows:       5,
			Cols:       8,
			Feedback:   time.Second,
		},
		NumberMemory: NumberMemoryConfig{
			StartDigits:  1,
			MaxDigits:    30,
			Lives:        1,
			ShowBase:     time.Second,
			ShowPerDigit: 600 * time.Millisecond,
			Feedback:     time.Second,
		},
		VisualMemory: VisualMemoryConfig{
			Lives:          3,
			MissesPerLevel: 3,
			TileOffset:     2,
			Grid: []GridStep{
				{Level: 1, Size: 3},
				{Level: 3, Size: 4},
				{Level: 6, Size: 5},
				{Level: 10, Size: 6},
			},
			Show:     time.Second,
			Feedback: 800 * time.Millisecond,
		},
		VerbalMemory: VerbalMemoryConfig{
			Lives:     3,
			SeenRatio: 0.4,
			Words: []string{
				"anchor", "blossom", "candle", "desert", "engine", "falcon",
				"garden", "harbor", "island", "jacket", "kettle", "lantern",
				"marble", "needle", "orchard", "pepper", "quarry", "ribbon",
				"saddle", "thunder", "umbrella", "velvet", "walnut", "yonder",
			},
		},
		SequenceMemory: SequenceMemoryConfig{
			Size:     3,
			Flash:    500 * time.Millisecond,
			Gap:      200 * time.Millisecond,
			Feedback: 800 * time.Millisecond,
		},
		Reaction: ReactionConfig{
			Attempts: 5,
			MinWait:  1500 * time.Millisecond,
			MaxWait:  4500 * time.Millisecond,
			Feedback: time.Second,
		},
		Schulte: SchulteConfig{
			Size:    5,
			MinSize: 3,
			MaxSize: 7,
			Sizes:   []int{3, 4, 5, 6, 7},
		},
		NPuzzle: NPuzzleConfig{
			Size:  3,
			Sizes: []int{3, 4, 5},
		},
		LastCircle: LastCircleConfig{
			StartCount:   3,
			StartOptions: []int{3, 4, 5, 6},
			Lives:        3,
			Rows:         6,
			Cols:         6,
			Interval:     700 * time.Millisecond,
			Feedback:     800 * time.Millisecond,
		},
	}
}
