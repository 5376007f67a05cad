// Package levels implements the seven level variants: each one a (rule,
// generator) pair behind the engine contracts. Rules are pure state
// transitions; generators either place-and-verify or reverse-scramble so
// that every emitted level is solvable, and return the move sequence that
// proves it.
package levels

import (
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

const (
	boardSize        = 8  // variants 1..6
	sokobanBoardSize = 10 // variant 7, perimeter walls included
)

// Params are the tunable generation knobs for each variant. Zero values are
// not meaningful; start from DefaultParams and override.
type Params struct {
	PaintWalls   int
	PaintSources int
	PaintMarkers int

	FloodScramble int

	TrailWalls   int
	TrailSources int

	SlideWalls    int
	SlideMinDepth int
	SlideMaxDepth int

	MirrorWalls    int
	MirrorMinDepth int

	LightsScramble int

	SokobanWalls    int
	SokobanBlocks   int
	SokobanScramble int
}

// DefaultParams returns the standard campaign tuning.
func DefaultParams() Params {
	return Params{
		PaintWalls:   6,
		PaintSources: 3,
		PaintMarkers: 4,

		FloodScramble: 18,

		TrailWalls:   8,
		TrailSources: 3,

		SlideWalls:    8,
		SlideMinDepth: 3,
		SlideMaxDepth: 10,

		MirrorWalls:    10,
		MirrorMinDepth: 4,

		LightsScramble: 8,

		SokobanWalls:    6,
		SokobanBlocks:   2,
		SokobanScramble: 12,
	}
}

// Campaign builds the ordered seven-level roster with the given tuning.
func Campaign(p Params) []engine.Definition {
	return []engine.Definition{
		{
			ID: engine.VariantPaint, Name: "paint", Title: "Color Echo",
			Width: boardSize, Height: boardSize,
			Rule: paintRule{},
			Gen:  paintGen{Walls: p.PaintWalls, Sources: p.PaintSources, Markers: p.PaintMarkers},
		},
		{
			ID: engine.VariantFlood, Name: "flood", Title: "Flood Walker",
			Width: boardSize, Height: boardSize,
			Rule: floodRule{},
			Gen:  floodGen{Scramble: p.FloodScramble},
		},
		{
			ID: engine.VariantTrail, Name: "trail", Title: "Color Trail",
			Width: boardSize, Height: boardSize,
			Rule: trailRule{},
			Gen:  trailGen{Walls: p.TrailWalls, Sources: p.TrailSources},
		},
		{
			ID: engine.VariantSlide, Name: "slide", Title: "Gravity Well",
			Width: boardSize, Height: boardSize,
			Rule: slideRule{},
			Gen:  slideGen{Walls: p.SlideWalls, MinDepth: p.SlideMinDepth, MaxDepth: p.SlideMaxDepth},
		},
		{
			ID: engine.VariantMirror, Name: "mirror", Title: "Mirror Walk",
			Width: boardSize, Height: boardSize,
			Rule: mirrorRule{},
			Gen:  mirrorGen{Walls: p.MirrorWalls, MinDepth: p.MirrorMinDepth},
		},
		{
			ID: engine.VariantLights, Name: "lights", Title: "Lights Up",
			Width: boardSize, Height: boardSize,
			Rule: lightsRule{},
			Gen:  lightsGen{Scramble: p.LightsScramble},
		},
		{
			ID: engine.VariantSokoban, Name: "sokoban", Title: "Block Pusher",
			Width: sokobanBoardSize, Height: sokobanBoardSize,
			Rule: sokobanRule{},
			Gen:  sokobanGen{Walls: p.SokobanWalls, Blocks: p.SokobanBlocks, Scramble: p.SokobanScramble},
		},
	}
}

// All returns the default campaign.
func All() []engine.Definition {
	return Campaign(DefaultParams())
}

// Get looks up one definition by variant ID in the default campaign.
func Get(id engine.VariantID) (engine.Definition, bool) {
	for _, def := range All() {
		if def.ID == id {
			return def, true
		}
	}
	return engine.Definition{}, false
}

// simulate replays moves through a rule from a start state and reports the
// end state. Generators use it to verify a constructed solution actually
// wins before emitting the level.
func simulate(r engine.Rule, start engine.LevelState, moves engine.Solution) engine.LevelState {
	st := start.Clone()
	for _, d := range moves {
		st, _ = r.Apply(st, d)
	}
	return st
}

// checkSolved rejects the layout when the constructed solution does not win.
// A failure here is a generator bug surfacing as a retry, never a level the
// player cannot beat.
func checkSolved(r engine.Rule, start engine.LevelState, sol engine.Solution) error {
	if !r.IsWon(simulate(r, start, sol)) {
		return errLayoutRejected
	}
	return nil
}
