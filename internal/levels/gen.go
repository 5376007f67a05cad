package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// errLayoutRejected marks a generation attempt that produced an unusable
// layout. The engine retries with a derived seed.
var errLayoutRejected = fmt.Errorf("levels: layout rejected")

// placeWalls scatters up to n wall cells on background cells, never touching
// keep cells. Fewer than n walls may land if the board runs out of room.
func placeWalls(rng *core.RNG, g *core.Grid, n int, keep map[core.Coord]bool) {
	placed := 0
	for tries := 0; placed < n && tries < n*20; tries++ {
		c := core.C(rng.Intn(g.W), rng.Intn(g.H))
		if g.Get(c) != core.ColorBlack || keep[c] {
			continue
		}
		g.Set(c, core.ColorWall)
		placed++
	}
}

// randomFreeCell returns a random background cell outside exclude. Reports
// false if no such cell exists.
func randomFreeCell(rng *core.RNG, g *core.Grid, exclude map[core.Coord]bool) (core.Coord, bool) {
	free := make([]core.Coord, 0, g.W*g.H)
	for _, c := range g.AllCoords() {
		if g.Get(c) == core.ColorBlack && !exclude[c] {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return core.Coord{}, false
	}
	return free[rng.Intn(len(free))], true
}

// allReachable reports whether every non-wall cell can be reached from start
// by orthogonal steps over non-wall cells.
func allReachable(g *core.Grid, start core.Coord) bool {
	seen := reachableFrom(g, start)
	for _, c := range g.AllCoords() {
		if g.Get(c) != core.ColorWall && !seen[c] {
			return false
		}
	}
	return true
}

// reachableFrom floods outward from start over non-wall cells.
func reachableFrom(g *core.Grid, start core.Coord) map[core.Coord]bool {
	seen := map[core.Coord]bool{start: true}
	queue := []core.Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors4(c) {
			if g.Get(n) == core.ColorWall || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

// bfsPath returns a shortest direction sequence from src to dst over
// non-wall cells, or nil if dst is unreachable.
func bfsPath(g *core.Grid, src, dst core.Coord) []core.Direction {
	if src == dst {
		return []core.Direction{}
	}
	prev := map[core.Coord]core.Direction{}
	seen := map[core.Coord]bool{src: true}
	queue := []core.Coord{src}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			n := c.Step(d)
			if !g.InBounds(n) || g.Get(n) == core.ColorWall || seen[n] {
				continue
			}
			seen[n] = true
			prev[n] = d
			if n == dst {
				return unwindPath(prev, src, dst)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

func unwindPath(prev map[core.Coord]core.Direction, src, dst core.Coord) []core.Direction {
	var rev []core.Direction
	for c := dst; c != src; {
		d := prev[c]
		rev = append(rev, d)
		c = c.Step(d.Opposite())
	}
	path := make([]core.Direction, len(rev))
	for i, d := range rev {
		path[len(rev)-1-i] = d
	}
	return path
}

// stepBetween returns the direction of the single orthogonal step from a to
// b. Panics if the cells are not orthogonally adjacent; callers construct
// adjacency themselves.
func stepBetween(a, b core.Coord) core.Direction {
	for _, d := range core.Directions {
		if a.Step(d) == b {
			return d
		}
	}
	panic(fmt.Sprintf("levels: %v and %v are not adjacent", a, b))
}
