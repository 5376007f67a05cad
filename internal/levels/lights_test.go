package levels

import (
	"testing"

	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

func TestLightsToggleShape(t *testing.T) {
	g := core.NewGrid(3, 3, lightsOn)
	lightsToggleAt(g, core.C(1, 1))

	// Center landing flips the plus shape, corners stay lit.
	dark := []core.Coord{core.C(1, 1), core.C(1, 0), core.C(1, 2), core.C(0, 1), core.C(2, 1)}
	for _, c := range dark {
		if g.Get(c) != lightsOff {
			t.Errorf("cell %v should be off", c)
		}
	}
	for _, c := range []core.Coord{core.C(0, 0), core.C(2, 0), core.C(0, 2), core.C(2, 2)} {
		if g.Get(c) != lightsOn {
			t.Errorf("corner %v should still be on", c)
		}
	}
}

func TestLightsCornerTogglesFewerCells(t *testing.T) {
	g := core.NewGrid(3, 3, lightsOn)
	lightsToggleAt(g, core.C(0, 0))
	if got := g.Count(lightsOff); got != 3 {
		t.Errorf("corner toggle darkened %d cells, want 3", got)
	}
}

func TestLightsToggleInvolution(t *testing.T) {
	g := core.NewGrid(4, 4, lightsOn)
	before := g.Clone()
	lightsToggleAt(g, core.C(2, 1))
	lightsToggleAt(g, core.C(2, 1))
	if !g.Equal(before) {
		t.Error("double toggle of the same cell did not restore the board")
	}
}

func TestLightsToggleOrderIndependent(t *testing.T) {
	a := core.NewGrid(4, 4, lightsOn)
	b := core.NewGrid(4, 4, lightsOn)
	lightsToggleAt(a, core.C(1, 1))
	lightsToggleAt(a, core.C(3, 2))
	lightsToggleAt(b, core.C(3, 2))
	lightsToggleAt(b, core.C(1, 1))
	if !a.Equal(b) {
		t.Error("toggle order changed the final board")
	}
}

func TestLightsShuttleRestoresBoard(t *testing.T) {
	// Right-left-right-left lands on each of two cells twice; parity brings
	// every touched cell back.
	g := core.NewGrid(4, 4, lightsOn)
	st := engine.LevelState{Variant: engine.VariantLights, Grid: g, Cursor: core.C(1, 1)}
	before := st.Grid.Clone()

	for _, d := range []core.Direction{core.DirRight, core.DirLeft, core.DirRight, core.DirLeft} {
		st, _ = lightsRule{}.Apply(st, d)
	}
	if !st.Grid.Equal(before) {
		t.Error("shuttling did not restore the board")
	}
	if st.Cursor != core.C(1, 1) {
		t.Errorf("cursor ended at %v, want the start", st.Cursor)
	}
}

func TestLightsGeneratedBoardNotSolved(t *testing.T) {
	def, _ := Get(engine.VariantLights)
	for _, seed := range []int64{1, 9, 77} {
		st, sol, err := def.Generate(seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if st.Grid.Count(lightsOff) == 0 {
			t.Errorf("seed %d: board already fully lit", seed)
		}
		end := simulate(lightsRule{}, st, sol)
		if end.Grid.Count(lightsOff) != 0 {
			t.Errorf("seed %d: solution did not relight the board", seed)
		}
	}
}
