package levels

import (
	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// The two lamp states. Winning means every cell is lit.
const (
	lightsOn  = core.ColorYellow
	lightsOff = core.ColorPurple
)

// lightsRule: the cursor moves freely, edge-blocked (no walls). Landing on a
// cell toggles it together with its orthogonal neighbors; edge and corner
// landings toggle fewer cells, with no wrap-around. Cells toggle
// independently, so only visit parity matters.
type lightsRule struct{}

func (lightsRule) Apply(s engine.LevelState, d core.Direction) (engine.LevelState, bool) {
	dst := s.Cursor.Step(d)
	if s.Blocked(dst) {
		return s, false
	}
	next := s.Clone()
	next.Cursor = dst
	lightsToggleAt(next.Grid, dst)
	return next, true
}

func lightsToggleAt(g *core.Grid, c core.Coord) {
	flip := func(p core.Coord) {
		if g.Get(p) == lightsOn {
			g.Set(p, lightsOff)
		} else {
			g.Set(p, lightsOn)
		}
	}
	flip(c)
	for _, n := range g.Neighbors4(c) {
		flip(n)
	}
}

func (lightsRule) IsWon(s engine.LevelState) bool {
	return s.Grid.Count(lightsOff) == 0
}

// lightsGen reverse-scrambles the all-lit board with a random walk from the
// start cursor. Every toggle is its own inverse and toggles commute, so
// replaying the identical walk from the same start flips every touched cell
// back to lit. The walk is the solution.
type lightsGen struct {
	Scramble int
}

func (g lightsGen) Generate(rng *core.RNG, w, h int) (engine.LevelState, engine.Solution, error) {
	grid := core.NewGrid(w, h, lightsOn)
	start := core.C(rng.Intn(w), rng.Intn(h))

	st := engine.LevelState{Grid: grid, Cursor: start}
	var walk engine.Solution
	for len(walk) < g.Scramble {
		d := rng.Direction()
		next, moved := lightsRule{}.Apply(st, d)
		if !moved {
			continue
		}
		st = next
		walk = append(walk, d)
	}
	if st.Grid.Count(lightsOff) == 0 {
		return engine.LevelState{}, nil, errLayoutRejected
	}

	out := engine.LevelState{Grid: st.Grid, Cursor: start}
	if err := checkSolved(lightsRule{}, out, walk); err != nil {
		return engine.LevelState{}, nil, err
	}
	return out, walk, nil
}
