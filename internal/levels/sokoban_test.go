package levels

import (
	"testing"

	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// sokobanFixture: a 5x5 walled room. Player at (1,2), red block at (2,2),
// its brown pad at (3,2).
//
//	#####
//	#...#
//	#@$.#
//	#...#
//	#####
func sokobanFixture() engine.LevelState {
	g := core.NewGrid(5, 5, core.ColorBlack)
	for x := 0; x < 5; x++ {
		g.Set(core.C(x, 0), core.ColorWall)
		g.Set(core.C(x, 4), core.ColorWall)
	}
	for y := 0; y < 5; y++ {
		g.Set(core.C(0, y), core.ColorWall)
		g.Set(core.C(4, y), core.ColorWall)
	}
	g.Set(core.C(3, 2), core.ColorBrown)
	return engine.LevelState{
		Variant: engine.VariantSokoban,
		Grid:    g,
		Cursor:  core.C(1, 2),
		Blocks:  map[core.Coord]core.Color{core.C(2, 2): core.ColorRed},
		Targets: map[core.Coord]core.Color{core.C(3, 2): core.ColorBrown},
	}
}

func TestSokobanPushAdvancesBoth(t *testing.T) {
	st := sokobanFixture()
	next, moved := sokobanRule{}.Apply(st, core.DirRight)
	if !moved {
		t.Fatal("push into open space was blocked")
	}
	if next.Cursor != core.C(2, 2) {
		t.Errorf("cursor at %v, want (2,2)", next.Cursor)
	}
	if _, ok := next.Blocks[core.C(3, 2)]; !ok {
		t.Error("block did not advance to (3,2)")
	}
	if !(sokobanRule{}).IsWon(next) {
		t.Error("block on its family pad should win")
	}
}

func TestSokobanPushIntoWallFails(t *testing.T) {
	st := sokobanFixture()
	st.Blocks = map[core.Coord]core.Color{core.C(3, 2): core.ColorRed}
	st.Cursor = core.C(2, 2)

	next, moved := sokobanRule{}.Apply(st, core.DirRight)
	if moved {
		t.Fatal("push against the wall reported moved=true")
	}
	if !next.Equal(st) {
		t.Error("failed push changed the state")
	}
}

func TestSokobanPushIntoBlockFails(t *testing.T) {
	st := sokobanFixture()
	st.Blocks[core.C(3, 2)] = core.ColorBlue

	next, moved := sokobanRule{}.Apply(st, core.DirRight)
	if moved {
		t.Fatal("push into a second block reported moved=true")
	}
	// The cursor must not advance either: a failed push is a total no-op.
	if next.Cursor != st.Cursor {
		t.Error("failed push displaced the cursor")
	}
	if len(next.Blocks) != 2 || next.Blocks[core.C(2, 2)] != core.ColorRed {
		t.Error("failed push displaced a block")
	}
}

func TestSokobanPlainMove(t *testing.T) {
	st := sokobanFixture()
	next, moved := sokobanRule{}.Apply(st, core.DirUp)
	if !moved || next.Cursor != core.C(1, 1) {
		t.Errorf("plain move failed: moved=%v cursor=%v", moved, next.Cursor)
	}
	if next.Blocks[core.C(2, 2)] != core.ColorRed {
		t.Error("plain move touched a block")
	}
}

func TestSokobanWallBlocksCursor(t *testing.T) {
	st := sokobanFixture()
	next, moved := sokobanRule{}.Apply(st, core.DirLeft)
	if moved || !next.Equal(st) {
		t.Error("walking into a wall should be a no-op")
	}
}

func TestSokobanWinNeedsMatchingFamily(t *testing.T) {
	st := sokobanFixture()
	// A blue block on a brown pad does not count.
	st.Blocks = map[core.Coord]core.Color{core.C(3, 2): core.ColorBlue}
	if (sokobanRule{}).IsWon(st) {
		t.Error("wrong-family block satisfied the pad")
	}
}

func TestSokobanGeneratedLayout(t *testing.T) {
	def, _ := Get(engine.VariantSokoban)
	for _, seed := range []int64{2, 33, 505} {
		st, sol, err := def.Generate(seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(st.Blocks) != len(st.Targets) {
			t.Errorf("seed %d: %d blocks for %d pads", seed, len(st.Blocks), len(st.Targets))
		}
		for x := 0; x < st.Grid.W; x++ {
			if !st.IsWall(core.C(x, 0)) || !st.IsWall(core.C(x, st.Grid.H-1)) {
				t.Fatalf("seed %d: perimeter breach at column %d", seed, x)
			}
		}
		end := simulate(sokobanRule{}, st, sol)
		if !(sokobanRule{}).IsWon(end) {
			t.Errorf("seed %d: unwinding the scramble did not win", seed)
		}
	}
}
