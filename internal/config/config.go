// Package config provides YAML-based tuning for the level generators.
package config

import "github.com/vovakirdan/tui-pattern/internal/levels"

// GameConfig contains the generation tuning for all seven level variants.
type GameConfig struct {
	Paint   PaintConfig   `yaml:"paint"`
	Flood   FloodConfig   `yaml:"flood"`
	Trail   TrailConfig   `yaml:"trail"`
	Slide   SlideConfig   `yaml:"slide"`
	Mirror  MirrorConfig  `yaml:"mirror"`
	Lights  LightsConfig  `yaml:"lights"`
	Sokoban SokobanConfig `yaml:"sokoban"`
}

// PaintConfig tunes the paint-on-step level.
type PaintConfig struct {
	Walls   int `yaml:"walls"`
	Sources int `yaml:"sources"`
	Markers int `yaml:"markers"`
}

// FloodConfig tunes the toggle-flood level.
type FloodConfig struct {
	ScrambleSteps int `yaml:"scramble_steps"`
}

// TrailConfig tunes the trail-paint level.
type TrailConfig struct {
	Walls   int `yaml:"walls"`
	Sources int `yaml:"sources"`
}

// SlideConfig tunes the sliding-block level.
type SlideConfig struct {
	Walls    int `yaml:"walls"`
	MinDepth int `yaml:"min_depth"`
	MaxDepth int `yaml:"max_depth"`
}

// MirrorConfig tunes the dual-cursor level.
type MirrorConfig struct {
	Walls    int `yaml:"walls"`
	MinDepth int `yaml:"min_depth"`
}

// LightsConfig tunes the lights-out level.
type LightsConfig struct {
	ScrambleSteps int `yaml:"scramble_steps"`
}

// SokobanConfig tunes the push level.
type SokobanConfig struct {
	Walls         int `yaml:"walls"`
	Blocks        int `yaml:"blocks"`
	ScrambleSteps int `yaml:"scramble_steps"`
}

// Params converts the loaded configuration to generator parameters.
// Zero or negative values fall back to the default tuning, so a partial
// YAML file overrides only what it names.
func (c GameConfig) Params() levels.Params {
	p := levels.DefaultParams()

	override(&p.PaintWalls, c.Paint.Walls)
	override(&p.PaintSources, c.Paint.Sources)
	override(&p.PaintMarkers, c.Paint.Markers)

	override(&p.FloodScramble, c.Flood.ScrambleSteps)

	override(&p.TrailWalls, c.Trail.Walls)
	override(&p.TrailSources, c.Trail.Sources)

	override(&p.SlideWalls, c.Slide.Walls)
	override(&p.SlideMinDepth, c.Slide.MinDepth)
	override(&p.SlideMaxDepth, c.Slide.MaxDepth)

	override(&p.MirrorWalls, c.Mirror.Walls)
	override(&p.MirrorMinDepth, c.Mirror.MinDepth)

	override(&p.LightsScramble, c.Lights.ScrambleSteps)

	override(&p.SokobanWalls, c.Sokoban.Walls)
	override(&p.SokobanBlocks, c.Sokoban.Blocks)
	override(&p.SokobanScramble, c.Sokoban.ScrambleSteps)

	return p
}

func override(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
