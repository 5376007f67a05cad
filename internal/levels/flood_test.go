package levels

import (
	"testing"

	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

func floodState(cells [][]core.Color, cursor core.Coord) engine.LevelState {
	h := len(cells)
	w := len(cells[0])
	g := core.NewGrid(w, h, floodColorA)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(core.C(x, y), cells[y][x])
		}
	}
	return engine.LevelState{Variant: engine.VariantFlood, Grid: g, Cursor: cursor}
}

// A retracing loop on a 2x2 checkerboard: each landing flips the cell under
// the cursor, so walking a full circle does not restore the start pattern
// but inverts the visited cells.
func TestFloodLoopScenario(t *testing.T) {
	A, B := floodColorA, floodColorB
	st := floodState([][]core.Color{
		{A, B},
		{B, A},
	}, core.C(0, 0))

	steps := []struct {
		dir    core.Direction
		cursor core.Coord
		want   [][]core.Color
	}{
		{core.DirRight, core.C(1, 0), [][]core.Color{{A, A}, {B, A}}},
		{core.DirDown, core.C(1, 1), [][]core.Color{{A, A}, {B, B}}},
		{core.DirLeft, core.C(0, 1), [][]core.Color{{A, A}, {A, B}}},
		{core.DirUp, core.C(0, 0), [][]core.Color{{B, A}, {A, B}}},
	}
	for i, step := range steps {
		var moved bool
		st, moved = floodRule{}.Apply(st, step.dir)
		if !moved {
			t.Fatalf("step %d (%v) was blocked", i, step.dir)
		}
		if st.Cursor != step.cursor {
			t.Fatalf("step %d: cursor %v, want %v", i, st.Cursor, step.cursor)
		}
		for y := range step.want {
			for x := range step.want[y] {
				if got := st.Grid.Get(core.C(x, y)); got != step.want[y][x] {
					t.Errorf("step %d: cell (%d,%d) = %v, want %v", i, x, y, got, step.want[y][x])
				}
			}
		}
		if (floodRule{}).IsWon(st) {
			t.Errorf("step %d: loop should not win", i)
		}
	}
}

func TestFloodEdgeMoveIsNoop(t *testing.T) {
	st := floodState([][]core.Color{
		{floodColorA, floodColorB},
		{floodColorB, floodColorA},
	}, core.C(0, 0))

	next, moved := floodRule{}.Apply(st, core.DirUp)
	if moved {
		t.Fatal("move off the edge reported moved=true")
	}
	if !next.Equal(st) {
		t.Error("blocked move changed the state")
	}
}

func TestFloodWinIsUniform(t *testing.T) {
	st := floodState([][]core.Color{
		{floodColorB, floodColorB},
		{floodColorB, floodColorB},
	}, core.C(0, 0))
	if !(floodRule{}).IsWon(st) {
		t.Error("uniform board should be won, whichever color it holds")
	}
}

func TestFloodScrambleWalkIsSolution(t *testing.T) {
	// The generator's solution is its own scramble walk; replaying it from
	// the start cursor must restore a uniform board.
	def, _ := Get(engine.VariantFlood)
	for _, seed := range []int64{5, 17, 400} {
		st, sol, err := def.Generate(seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		end := simulate(floodRule{}, st, sol)
		if !end.Grid.Uniform() {
			t.Errorf("seed %d: replaying the walk left a non-uniform board", seed)
		}
	}
}
