package levels

import (
	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// paintMarker is the unpainted-marker color. Winning means no cell holds it.
const paintMarker = core.ColorLightGray

// paintRule: the cursor moves one cell (wall and edge blocked). Stepping
// onto a marker cell paints it with the color of the cell just vacated,
// provided that color is an actual paint color. Vacating background or
// another marker donates nothing, so markers are painted by walking off a
// colored cell onto them.
type paintRule struct{}

func (paintRule) Apply(s engine.LevelState, d core.Direction) (engine.LevelState, bool) {
	dst := s.Cursor.Step(d)
	if s.Blocked(dst) {
		return s, false
	}
	next := s.Clone()
	vacated := next.Grid.Get(next.Cursor)
	if next.Grid.Get(dst) == paintMarker && paintDonor(vacated) {
		next.Grid.Set(dst, vacated)
	}
	next.Cursor = dst
	return next, true
}

func paintDonor(c core.Color) bool {
	return c != core.ColorBlack && c != paintMarker && c != core.ColorWall
}

func (paintRule) IsWon(s engine.LevelState) bool {
	return s.Grid.Count(paintMarker) == 0
}

// paintGen places walls, colored source cells and gray marker cells. Every
// marker is seated orthogonally next to a source, and the whole non-wall
// region is connected, so each marker can be painted by walking onto its
// source and stepping across. The returned solution does exactly that,
// marker by marker.
type paintGen struct {
	Walls   int
	Sources int
	Markers int
}

func (g paintGen) Generate(rng *core.RNG, w, h int) (engine.LevelState, engine.Solution, error) {
	grid := core.NewGrid(w, h, core.ColorBlack)
	placeWalls(rng, grid, g.Walls, nil)

	cursor, ok := randomFreeCell(rng, grid, nil)
	if !ok || !allReachable(grid, cursor) {
		return engine.LevelState{}, nil, errLayoutRejected
	}

	taken := map[core.Coord]bool{cursor: true}
	sources := make([]core.Coord, 0, g.Sources)
	for i := 0; i < g.Sources; i++ {
		c, ok := randomFreeCell(rng, grid, taken)
		if !ok {
			return engine.LevelState{}, nil, errLayoutRejected
		}
		grid.Set(c, core.PlayableColors[rng.Intn(len(core.PlayableColors))])
		taken[c] = true
		sources = append(sources, c)
	}

	// Seat each marker next to a randomly chosen source.
	type seat struct{ src, marker core.Coord }
	seats := make([]seat, 0, g.Markers)
	for i := 0; i < g.Markers; i++ {
		placed := false
		for tries := 0; tries < 20 && !placed; tries++ {
			src := sources[rng.Intn(len(sources))]
			for _, n := range grid.Neighbors4(src) {
				if grid.Get(n) != core.ColorBlack || taken[n] {
					continue
				}
				grid.Set(n, paintMarker)
				taken[n] = true
				seats = append(seats, seat{src: src, marker: n})
				placed = true
				break
			}
		}
		if !placed {
			return engine.LevelState{}, nil, errLayoutRejected
		}
	}

	start := engine.LevelState{Grid: grid, Cursor: cursor}

	// Solve by walking to each marker's source and stepping across. Markers
	// that got painted incidentally on the way cost nothing extra.
	var sol engine.Solution
	cur := start.Clone()
	for _, st := range seats {
		path := bfsPath(cur.Grid, cur.Cursor, st.src)
		if path == nil {
			return engine.LevelState{}, nil, errLayoutRejected
		}
		path = append(path, stepBetween(st.src, st.marker))
		for _, d := range path {
			cur, _ = paintRule{}.Apply(cur, d)
		}
		sol = append(sol, path...)
	}
	if err := checkSolved(paintRule{}, start, sol); err != nil {
		return engine.LevelState{}, nil, err
	}
	return start, sol, nil
}
