package levels

import (
	"testing"

	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// trailFixture: a 4x1 strip with a green source at (1,0); cursor at (0,0).
func trailFixture() engine.LevelState {
	g := core.NewGrid(4, 1, core.ColorBlack)
	g.Set(core.C(1, 0), core.ColorGreen)
	return engine.LevelState{
		Variant: engine.VariantTrail,
		Grid:    g,
		Cursor:  core.C(0, 0),
		Targets: map[core.Coord]core.Color{core.C(1, 0): core.ColorGreen},
		Carried: core.ColorBlack,
	}
}

func TestTrailPickupAndPaint(t *testing.T) {
	st := trailFixture()

	st, _ = trailRule{}.Apply(st, core.DirRight) // land on the source
	if st.Carried != core.ColorGreen {
		t.Fatalf("Carried = %v, want green", st.Carried)
	}
	st, _ = trailRule{}.Apply(st, core.DirRight)
	if got := st.Grid.Get(core.C(2, 0)); got != core.ColorGreen {
		t.Errorf("cell (2,0) = %v, want painted green", got)
	}
}

func TestTrailNoCarryNoPaint(t *testing.T) {
	st := trailFixture()
	st.Cursor = core.C(3, 0)
	st, _ = trailRule{}.Apply(st, core.DirLeft)
	if got := st.Grid.Get(core.C(2, 0)); got != core.ColorBlack {
		t.Errorf("cell (2,0) = %v, painting before any pickup", got)
	}
}

func TestTrailSourceNeverOverwritten(t *testing.T) {
	st := trailFixture()
	st.Carried = core.ColorRed
	st, _ = trailRule{}.Apply(st, core.DirRight) // onto the source
	if got := st.Grid.Get(core.C(1, 0)); got != core.ColorGreen {
		t.Errorf("source became %v, must stay green", got)
	}
	// Landing on the source swaps the carried color instead.
	if st.Carried != core.ColorGreen {
		t.Errorf("Carried = %v, want green after touching the source", st.Carried)
	}
}

func TestTrailPaintedCellIsNotASource(t *testing.T) {
	st := trailFixture()
	st, _ = trailRule{}.Apply(st, core.DirRight) // pickup green
	st, _ = trailRule{}.Apply(st, core.DirRight) // paint (2,0) green

	// Re-entering a green painted cell while carrying red must repaint it,
	// not hand back green like a source would.
	st.Carried = core.ColorRed
	st, _ = trailRule{}.Apply(st, core.DirRight) // paint (3,0) red
	st, _ = trailRule{}.Apply(st, core.DirLeft)  // back onto (2,0)
	if got := st.Grid.Get(core.C(2, 0)); got != core.ColorRed {
		t.Errorf("cell (2,0) = %v, want repainted red", got)
	}
	if st.Carried != core.ColorRed {
		t.Errorf("Carried = %v, painted cells must not donate", st.Carried)
	}
}

func TestTrailWinWhenNoBackgroundLeft(t *testing.T) {
	st := trailFixture()
	if (trailRule{}).IsWon(st) {
		t.Fatal("board with background cells should not be won")
	}
	for _, c := range st.Grid.AllCoords() {
		if st.Grid.Get(c) == core.ColorBlack {
			st.Grid.Set(c, core.ColorGreen)
		}
	}
	if !(trailRule{}).IsWon(st) {
		t.Error("fully painted board should be won")
	}
}

func TestTrailTraversalCoversBoard(t *testing.T) {
	def, _ := Get(engine.VariantTrail)
	for _, seed := range []int64{3, 29, 777} {
		st, sol, err := def.Generate(seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		end := simulate(trailRule{}, st, sol)
		if got := end.Grid.Count(core.ColorBlack); got != 0 {
			t.Errorf("seed %d: %d background cells left after the traversal", seed, got)
		}
	}
}
