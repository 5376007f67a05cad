package levels

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// slideRule: one input tilts the whole board. The cursor steps one cell if
// not blocked, and every block slides in the input direction until it hits
// a wall, the grid edge or another block. Blocks and cursor do not obstruct
// each other. The move counts if anything moved at all.
type slideRule struct{}

func (slideRule) Apply(s engine.LevelState, d core.Direction) (engine.LevelState, bool) {
	next := s.Clone()
	moved := false

	if dst := s.Cursor.Step(d); !s.Blocked(dst) {
		next.Cursor = dst
		moved = true
	}
	next.Blocks = slideAll(&s, d)
	if !blocksEqual(next.Blocks, s.Blocks) {
		moved = true
	}
	if !moved {
		return s, false
	}
	return next, true
}

// slideAll resolves the simultaneous slide. Blocks are processed leading
// edge first, so a trailing block stops against the settled position of the
// block ahead of it, never against its stale one.
func slideAll(s *engine.LevelState, d core.Direction) map[core.Coord]core.Color {
	blocks := s.SortedBlocks()
	sort.SliceStable(blocks, func(i, j int) bool {
		switch d {
		case core.DirUp:
			return blocks[i].Pos.Y < blocks[j].Pos.Y
		case core.DirDown:
			return blocks[i].Pos.Y > blocks[j].Pos.Y
		case core.DirLeft:
			return blocks[i].Pos.X < blocks[j].Pos.X
		default:
			return blocks[i].Pos.X > blocks[j].Pos.X
		}
	})

	occupied := make(map[core.Coord]bool, len(blocks))
	for p := range s.Blocks {
		occupied[p] = true
	}
	out := make(map[core.Coord]core.Color, len(blocks))
	for _, b := range blocks {
		delete(occupied, b.Pos)
		p := b.Pos
		for {
			q := p.Step(d)
			if !s.Grid.InBounds(q) || s.IsWall(q) || occupied[q] {
				break
			}
			p = q
		}
		out[p] = b.Color
		occupied[p] = true
	}
	return out
}

func blocksEqual(a, b map[core.Coord]core.Color) bool {
	if len(a) != len(b) {
		return false
	}
	for p, c := range a {
		if b[p] != c {
			return false
		}
	}
	return true
}

func (slideRule) IsWon(s engine.LevelState) bool {
	for p, c := range s.Blocks {
		if s.Targets[p] != c {
			return false
		}
	}
	return len(s.Blocks) > 0
}

// slideGen places walls and two distinctly colored blocks, then explores the
// block-configuration graph breadth-first (block motion is deterministic per
// input, so each configuration has at most four successors). A reachable
// configuration at the requested depth becomes the target layout, which
// makes the level solvable by construction; the BFS path to it is the
// solution.
type slideGen struct {
	Walls    int
	MinDepth int
	MaxDepth int
}

func (g slideGen) Generate(rng *core.RNG, w, h int) (engine.LevelState, engine.Solution, error) {
	grid := core.NewGrid(w, h, core.ColorBlack)
	placeWalls(rng, grid, g.Walls, nil)

	cursor, ok := randomFreeCell(rng, grid, nil)
	if !ok {
		return engine.LevelState{}, nil, errLayoutRejected
	}

	colors := pickDistinctColors(rng, 2)
	blocks := map[core.Coord]core.Color{}
	taken := map[core.Coord]bool{}
	for _, c := range colors {
		p, ok := randomFreeCell(rng, grid, taken)
		if !ok {
			return engine.LevelState{}, nil, errLayoutRejected
		}
		blocks[p] = c
		taken[p] = true
	}

	start := engine.LevelState{Grid: grid, Cursor: cursor, Blocks: blocks}

	goal, sol, ok := pickSlideGoal(rng, start, g.MinDepth, g.MaxDepth)
	if !ok {
		return engine.LevelState{}, nil, errLayoutRejected
	}
	// The chosen configuration becomes the target layout. Target cells are
	// tinted with the required color so the goal is visible on the board.
	start.Targets = goal
	for p, c := range goal {
		grid.Set(p, c)
	}

	if err := checkSolved(slideRule{}, start, sol); err != nil {
		return engine.LevelState{}, nil, err
	}
	return start, sol, nil
}

// pickSlideGoal walks the configuration graph and returns a random
// configuration whose BFS depth lies in [minDepth, maxDepth], with the move
// sequence leading to it.
func pickSlideGoal(rng *core.RNG, start engine.LevelState, minDepth, maxDepth int) (map[core.Coord]core.Color, engine.Solution, bool) {
	type node struct {
		state engine.LevelState
		moves engine.Solution
	}
	const stateCap = 4096

	startKey := blocksKey(start.Blocks)
	seen := map[string]bool{startKey: true}
	queue := []node{{state: start, moves: nil}}
	var candidates []node

	for len(queue) > 0 && len(seen) < stateCap {
		n := queue[0]
		queue = queue[1:]
		if len(n.moves) >= maxDepth {
			continue
		}
		for _, d := range core.Directions {
			next, moved := slideRule{}.Apply(n.state, d)
			if !moved {
				continue
			}
			key := blocksKey(next.Blocks)
			if seen[key] {
				continue
			}
			seen[key] = true
			moves := append(append(engine.Solution{}, n.moves...), d)
			nn := node{state: next, moves: moves}
			if len(moves) >= minDepth {
				candidates = append(candidates, nn)
			}
			queue = append(queue, nn)
		}
	}
	if len(candidates) == 0 {
		return nil, nil, false
	}
	chosen := candidates[rng.Intn(len(candidates))]
	goal := make(map[core.Coord]core.Color, len(chosen.state.Blocks))
	for p, c := range chosen.state.Blocks {
		goal[p] = c
	}
	return goal, chosen.moves, true
}

// blocksKey is a canonical string form of a block configuration.
func blocksKey(blocks map[core.Coord]core.Color) string {
	type entry struct {
		p core.Coord
		c core.Color
	}
	entries := make([]entry, 0, len(blocks))
	for p, c := range blocks {
		entries = append(entries, entry{p, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].p.Y != entries[j].p.Y {
			return entries[i].p.Y < entries[j].p.Y
		}
		return entries[i].p.X < entries[j].p.X
	})
	key := ""
	for _, e := range entries {
		key += fmt.Sprintf("%d,%d,%d;", e.p.X, e.p.Y, e.c)
	}
	return key
}

// pickDistinctColors draws n distinct playable colors.
func pickDistinctColors(rng *core.RNG, n int) []core.Color {
	pool := make([]core.Color, len(core.PlayableColors))
	copy(pool, core.PlayableColors)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}
