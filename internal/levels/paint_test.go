package levels

import (
	"testing"

	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// paintFixture: a red source at (1,1) with a marker at (2,1); cursor at
// (0,1).
func paintFixture() engine.LevelState {
	g := core.NewGrid(4, 3, core.ColorBlack)
	g.Set(core.C(1, 1), core.ColorRed)
	g.Set(core.C(2, 1), paintMarker)
	return engine.LevelState{
		Variant: engine.VariantPaint,
		Grid:    g,
		Cursor:  core.C(0, 1),
	}
}

func TestPaintStepFromSourcePaintsMarker(t *testing.T) {
	st := paintFixture()
	st, _ = paintRule{}.Apply(st, core.DirRight) // onto the source
	st, _ = paintRule{}.Apply(st, core.DirRight) // source -> marker
	if got := st.Grid.Get(core.C(2, 1)); got != core.ColorRed {
		t.Errorf("marker is %v, want red", got)
	}
	if !(paintRule{}).IsWon(st) {
		t.Error("last marker painted, level should be won")
	}
}

func TestPaintStepFromBackgroundDoesNotPaint(t *testing.T) {
	st := paintFixture()
	st.Cursor = core.C(2, 0) // background cell above the marker
	st, _ = paintRule{}.Apply(st, core.DirDown)
	if got := st.Grid.Get(core.C(2, 1)); got != paintMarker {
		t.Errorf("marker became %v after a background step", got)
	}
}

func TestPaintMarkerDoesNotDonate(t *testing.T) {
	g := core.NewGrid(4, 1, core.ColorBlack)
	g.Set(core.C(1, 0), paintMarker)
	g.Set(core.C(2, 0), paintMarker)
	st := engine.LevelState{Variant: engine.VariantPaint, Grid: g, Cursor: core.C(1, 0)}

	// Standing on one marker and stepping onto the next must not chain
	// gray onto gray.
	st, _ = paintRule{}.Apply(st, core.DirRight)
	if got := st.Grid.Get(core.C(2, 0)); got != paintMarker {
		t.Errorf("marker became %v, markers do not donate", got)
	}
}

func TestPaintWallBlocks(t *testing.T) {
	st := paintFixture()
	st.Grid.Set(core.C(0, 0), core.ColorWall)
	next, moved := paintRule{}.Apply(st, core.DirUp)
	if moved || !next.Equal(st) {
		t.Error("step into a wall should be a no-op")
	}
}

func TestPaintGeneratedMarkersSeated(t *testing.T) {
	def, _ := Get(engine.VariantPaint)
	for _, seed := range []int64{8, 44, 1000} {
		st, _, err := def.Generate(seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		markers := 0
		for _, c := range st.Grid.AllCoords() {
			if st.Grid.Get(c) != paintMarker {
				continue
			}
			markers++
			seated := false
			for _, n := range st.Grid.Neighbors4(c) {
				if paintDonor(st.Grid.Get(n)) {
					seated = true
					break
				}
			}
			if !seated {
				t.Errorf("seed %d: marker %v has no adjacent donor", seed, c)
			}
		}
		if markers == 0 {
			t.Errorf("seed %d: level has no markers to paint", seed)
		}
	}
}
