package engine

import "github.com/vovakirdan/tui-pattern/internal/core"

// Snapshot is the observable output contract: everything the presentation
// layer needs after each input, fully detached from engine-owned state.
type Snapshot struct {
	Level   int // 1-based campaign index
	Levels  int // campaign length
	Variant VariantID
	Name    string
	Title   string
	Seed    int64

	Width  int
	Height int
	// Cells is the composed board: terrain (including walls and target
	// markers) with movable blocks drawn over it. Row-major, Cells[y][x].
	Cells [][]core.Color

	Cursor    core.Coord
	HasMirror bool
	Mirror    core.Coord

	Blocks []Block
	Moves  int
	Status Status
}

// buildSnapshot composes the observable view of a session.
func buildSnapshot(s *Session, level, levels int, status Status) Snapshot {
	st := s.State()
	g := st.Grid

	cells := make([][]core.Color, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]core.Color, g.W)
		for x := 0; x < g.W; x++ {
			row[x] = g.Get(core.C(x, y))
		}
		cells[y] = row
	}
	for p, c := range st.Blocks {
		if g.InBounds(p) {
			cells[p.Y][p.X] = c
		}
	}

	return Snapshot{
		Level:     level,
		Levels:    levels,
		Variant:   st.Variant,
		Name:      s.def.Name,
		Title:     s.def.Title,
		Seed:      s.seed,
		Width:     g.W,
		Height:    g.H,
		Cells:     cells,
		Cursor:    st.Cursor,
		HasMirror: st.HasMirror,
		Mirror:    st.Mirror,
		Blocks:    st.SortedBlocks(),
		Moves:     st.Moves,
		Status:    status,
	}
}
