package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// walkRule is a minimal test variant: the cursor steps one cell, walls and
// edges block, winning means standing on Goal. It exercises the session and
// controller machinery without pulling in a real level package.
type walkRule struct{}

func (walkRule) Apply(s LevelState, d core.Direction) (LevelState, bool) {
	dst := s.Cursor.Step(d)
	if s.Blocked(dst) {
		return s, false
	}
	next := s.Clone()
	next.Cursor = dst
	return next, true
}

func (walkRule) IsWon(s LevelState) bool {
	return s.Cursor == s.Goal
}

// walkGen builds a 4x4 board with the cursor at (0,0), a wall at (0,1) and
// the goal at (3,0). Solution: three moves right.
type walkGen struct{}

func (walkGen) Generate(rng *core.RNG, w, h int) (LevelState, Solution, error) {
	g := core.NewGrid(w, h, core.ColorBlack)
	g.Set(core.C(0, 1), core.ColorWall)
	st := LevelState{
		Grid:   g,
		Cursor: core.C(0, 0),
		Goal:   core.C(w-1, 0),
	}
	return st, Solution{core.DirRight, core.DirRight, core.DirRight}, nil
}

// flakyGen fails its first failures attempts, then delegates to walkGen.
type flakyGen struct {
	failures int
	calls    int
}

func (f *flakyGen) Generate(rng *core.RNG, w, h int) (LevelState, Solution, error) {
	f.calls++
	if f.calls <= f.failures {
		return LevelState{}, nil, fmt.Errorf("layout rejected")
	}
	return walkGen{}.Generate(rng, w, h)
}

func walkDef() Definition {
	return Definition{
		ID:     VariantPaint,
		Name:   "walk",
		Title:  "Walk",
		Width:  4,
		Height: 4,
		Rule:   walkRule{},
		Gen:    walkGen{},
	}
}

// testCampaign returns n copies of the walk definition, standing in for the
// real level roster in controller tests.
func testCampaign(n int) []Definition {
	defs := make([]Definition, n)
	for i := range defs {
		defs[i] = walkDef()
	}
	return defs
}
