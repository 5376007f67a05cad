package config

import (
	_ "embed"
)

//go:embed defaults/pattern.yaml
var defaultPatternYAML []byte

// DefaultGameConfig returns the standard campaign tuning. Matches the
// embedded defaults/pattern.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Paint: PaintConfig{
			Walls:   6,
			Sources: 3,
			Markers: 4,
		},
		Flood: FloodConfig{
			ScrambleSteps: 18,
		},
		Trail: TrailConfig{
			Walls:   8,
			Sources: 3,
		},
		Slide: SlideConfig{
			Walls:    8,
			MinDepth: 3,
			MaxDepth: 10,
		},
		Mirror: MirrorConfig{
			Walls:    10,
			MinDepth: 4,
		},
		Lights: LightsConfig{
			ScrambleSteps: 8,
		},
		Sokoban: SokobanConfig{
			Walls:         6,
			Blocks:        2,
			ScrambleSteps: 12,
		},
	}
}
