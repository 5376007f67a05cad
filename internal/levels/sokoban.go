package levels

import (
	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// Block colors map to target tints one family apart, so a block never
// visually merges with the pad it must reach.
var sokobanFamilies = map[core.Color]core.Color{
	core.ColorRed:  core.ColorBrown,
	core.ColorBlue: core.ColorTeal,
}

var sokobanBlockColors = []core.Color{core.ColorRed, core.ColorBlue}

// sokobanRule: the cursor moves one cell. Walking into a block attempts a
// push: the block advances one cell in the same direction only if that cell
// is in-bounds, not a wall and not another block; then both block and cursor
// step forward. A failed push moves nothing at all.
type sokobanRule struct{}

func (sokobanRule) Apply(s engine.LevelState, d core.Direction) (engine.LevelState, bool) {
	dst := s.Cursor.Step(d)
	if s.Blocked(dst) {
		return s, false
	}
	blockColor, pushing := s.Blocks[dst]
	if !pushing {
		next := s.Clone()
		next.Cursor = dst
		return next, true
	}
	beyond := dst.Step(d)
	if s.Blocked(beyond) {
		return s, false
	}
	if _, occupied := s.Blocks[beyond]; occupied {
		return s, false
	}
	next := s.Clone()
	delete(next.Blocks, dst)
	next.Blocks[beyond] = blockColor
	next.Cursor = dst
	return next, true
}

func (sokobanRule) IsWon(s engine.LevelState) bool {
	for p, c := range s.Blocks {
		if s.Targets[p] != sokobanFamilies[c] {
			return false
		}
	}
	return len(s.Blocks) > 0
}

// sokobanGen reverse-scrambles from the solved position: blocks start on
// their target pads and the player walks a bounded random retreat,
// sometimes dragging the block that sits behind the vacated cell. Every
// retreat step has an exact forward counterpart (a drag inverts to a push,
// a plain step to a plain step), so replaying the retreat reversed with
// each direction negated is a complete solution. This also guarantees each
// block keeps an open push lane back to its pad.
type sokobanGen struct {
	Walls    int
	Blocks   int
	Scramble int
}

// retreatStep is one recorded scramble step: the movement direction and
// whether a block was dragged along.
type retreatStep struct {
	dir  core.Direction
	drag bool
}

func (g sokobanGen) Generate(rng *core.RNG, w, h int) (engine.LevelState, engine.Solution, error) {
	grid := core.NewGrid(w, h, core.ColorBlack)
	for x := 0; x < w; x++ {
		grid.Set(core.C(x, 0), core.ColorWall)
		grid.Set(core.C(x, h-1), core.ColorWall)
	}
	for y := 0; y < h; y++ {
		grid.Set(core.C(0, y), core.ColorWall)
		grid.Set(core.C(w-1, y), core.ColorWall)
	}
	placeWalls(rng, grid, g.Walls, nil)

	// Solved position: each block on its own pad.
	nblocks := core.Min(g.Blocks, len(sokobanBlockColors))
	blocks := map[core.Coord]core.Color{}
	targets := map[core.Coord]core.Color{}
	taken := map[core.Coord]bool{}
	for i := 0; i < nblocks; i++ {
		p, ok := randomFreeCell(rng, grid, taken)
		if !ok {
			return engine.LevelState{}, nil, errLayoutRejected
		}
		c := sokobanBlockColors[i]
		blocks[p] = c
		targets[p] = sokobanFamilies[c]
		taken[p] = true
	}

	player, ok := randomFreeCell(rng, grid, taken)
	if !ok {
		return engine.LevelState{}, nil, errLayoutRejected
	}

	// Retreat walk. The player steps away from the solved position and with
	// even chance drags the block directly behind the vacated cell.
	steps := make([]retreatStep, 0, g.Scramble)
	for tries := 0; len(steps) < g.Scramble && tries < g.Scramble*20; tries++ {
		d := rng.Direction()
		dst := player.Step(d)
		if !grid.InBounds(dst) || grid.Get(dst) == core.ColorWall {
			continue
		}
		if _, occupied := blocks[dst]; occupied {
			continue
		}
		step := retreatStep{dir: d}
		behind := player.Step(d.Opposite())
		if c, ok := blocks[behind]; ok && rng.Chance(0.5) {
			delete(blocks, behind)
			blocks[player] = c
			step.drag = true
		}
		player = dst
		steps = append(steps, step)
	}

	// Tint the pads now that the blocks have left them.
	for p, c := range targets {
		grid.Set(p, c)
	}

	start := engine.LevelState{
		Grid:    grid,
		Cursor:  player,
		Blocks:  blocks,
		Targets: targets,
	}
	if (sokobanRule{}).IsWon(start) {
		return engine.LevelState{}, nil, errLayoutRejected
	}

	// Forward solution: the retreat reversed, every direction negated.
	sol := make(engine.Solution, 0, len(steps))
	for i := len(steps) - 1; i >= 0; i-- {
		sol = append(sol, steps[i].dir.Opposite())
	}
	if err := checkSolved(sokobanRule{}, start, sol); err != nil {
		return engine.LevelState{}, nil, err
	}
	return start, sol, nil
}
