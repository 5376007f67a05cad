package levels

import (
	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// trailRule: the cursor moves one cell (wall and edge blocked) and leaves a
// trail. Landing on a source cell picks up that source's color as the
// carried color; landing anywhere else overwrites the cell with the carried
// color, once there is one. Source cells are fixed donors and are never
// overwritten; they are tracked in Targets so a painted cell of the same
// color cannot masquerade as one.
type trailRule struct{}

func (trailRule) Apply(s engine.LevelState, d core.Direction) (engine.LevelState, bool) {
	dst := s.Cursor.Step(d)
	if s.Blocked(dst) {
		return s, false
	}
	next := s.Clone()
	next.Cursor = dst
	if c, isSource := next.Targets[dst]; isSource {
		next.Carried = c
	} else if next.Carried != core.ColorBlack {
		next.Grid.Set(dst, next.Carried)
	}
	return next, true
}

func (trailRule) IsWon(s engine.LevelState) bool {
	return s.Grid.Count(core.ColorBlack) == 0
}

// trailGen places walls and a handful of colored sources on a connected
// board. The solution walks to the nearest source to pick up a color, then
// runs a depth-first traversal of the whole non-wall region; the traversal
// enters every cell at least once while carrying, which paints everything
// that is not a wall or source.
type trailGen struct {
	Walls   int
	Sources int
}

func (g trailGen) Generate(rng *core.RNG, w, h int) (engine.LevelState, engine.Solution, error) {
	grid := core.NewGrid(w, h, core.ColorBlack)
	placeWalls(rng, grid, g.Walls, nil)

	cursor, ok := randomFreeCell(rng, grid, nil)
	if !ok || !allReachable(grid, cursor) {
		return engine.LevelState{}, nil, errLayoutRejected
	}

	sources := map[core.Coord]core.Color{}
	taken := map[core.Coord]bool{cursor: true}
	for i := 0; i < g.Sources; i++ {
		c, ok := randomFreeCell(rng, grid, taken)
		if !ok {
			return engine.LevelState{}, nil, errLayoutRejected
		}
		color := core.PlayableColors[rng.Intn(len(core.PlayableColors))]
		grid.Set(c, color)
		sources[c] = color
		taken[c] = true
	}

	start := engine.LevelState{
		Grid:    grid,
		Cursor:  cursor,
		Targets: sources,
		Carried: core.ColorBlack,
	}

	// Nearest source first, then paint the whole region.
	first := nearestSource(grid, cursor, sources)
	sol := engine.Solution(bfsPath(grid, cursor, first))
	if sol == nil {
		return engine.LevelState{}, nil, errLayoutRejected
	}
	sol = append(sol, traversalWalk(grid, first)...)

	if err := checkSolved(trailRule{}, start, sol); err != nil {
		return engine.LevelState{}, nil, err
	}
	return start, sol, nil
}

func nearestSource(g *core.Grid, from core.Coord, sources map[core.Coord]core.Color) core.Coord {
	best := core.Coord{}
	bestLen := -1
	for _, c := range g.AllCoords() {
		if _, ok := sources[c]; !ok {
			continue
		}
		if p := bfsPath(g, from, c); p != nil && (bestLen < 0 || len(p) < bestLen) {
			best, bestLen = c, len(p)
		}
	}
	return best
}

// traversalWalk returns a walk that enters every non-wall cell reachable
// from start and returns to start, by depth-first descent with backtracking.
func traversalWalk(g *core.Grid, start core.Coord) []core.Direction {
	var walk []core.Direction
	visited := map[core.Coord]bool{start: true}
	var descend func(p core.Coord)
	descend = func(p core.Coord) {
		for _, d := range core.Directions {
			q := p.Step(d)
			if !g.InBounds(q) || g.Get(q) == core.ColorWall || visited[q] {
				continue
			}
			visited[q] = true
			walk = append(walk, d)
			descend(q)
			walk = append(walk, d.Opposite())
		}
	}
	descend(start)
	return walk
}
