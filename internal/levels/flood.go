package levels

import (
	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// The two toggle colors. Every cell holds one of them for the whole level.
const (
	floodColorA = core.ColorCyan
	floodColorB = core.ColorOrange
)

// floodRule: the cursor moves one cell, edge-blocked (the board has no
// walls). Landing on a cell flips it between the two toggle colors,
// including on re-entry, so retracing a path undoes its own progress.
type floodRule struct{}

func (floodRule) Apply(s engine.LevelState, d core.Direction) (engine.LevelState, bool) {
	dst := s.Cursor.Step(d)
	if s.Blocked(dst) {
		return s, false
	}
	next := s.Clone()
	next.Cursor = dst
	next.Grid.Set(dst, floodToggle(next.Grid.Get(dst)))
	return next, true
}

func floodToggle(c core.Color) core.Color {
	if c == floodColorA {
		return floodColorB
	}
	return floodColorA
}

func (floodRule) IsWon(s engine.LevelState) bool {
	return s.Grid.Uniform()
}

// floodGen scrambles a uniform board with a random walk from the start
// cursor. Each landing toggles one cell, toggles are self-inverse and
// commute per cell, and movement ignores colors entirely, so replaying the
// identical walk from the same start visits the same cells and flips each
// one back. The walk itself is the solution.
type floodGen struct {
	Scramble int
}

func (g floodGen) Generate(rng *core.RNG, w, h int) (engine.LevelState, engine.Solution, error) {
	grid := core.NewGrid(w, h, floodColorA)
	start := core.C(rng.Intn(w), rng.Intn(h))

	st := engine.LevelState{Grid: grid, Cursor: start}
	var walk engine.Solution
	for len(walk) < g.Scramble {
		d := rng.Direction()
		next, moved := floodRule{}.Apply(st, d)
		if !moved {
			continue
		}
		st = next
		walk = append(walk, d)
	}
	if st.Grid.Uniform() {
		// The walk cancelled itself out; nothing to solve.
		return engine.LevelState{}, nil, errLayoutRejected
	}

	out := engine.LevelState{Grid: st.Grid, Cursor: start}
	if err := checkSolved(floodRule{}, out, walk); err != nil {
		return engine.LevelState{}, nil, err
	}
	return out, walk, nil
}
