package levels

import (
	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// Goal cells are tinted so both destinations are visible on the board.
const (
	mirrorGoalColor       = core.ColorGreen
	mirrorMirrorGoalColor = core.ColorMagenta
)

// mirrorRule: one input moves both cursors, the primary in the input
// direction and the mirror in the opposite one. Each cursor is blocked
// independently by walls and edges; a pinned cursor stays put while the
// other still moves. Pinning one cursor against a wall while the other
// walks is the whole trick of the variant.
type mirrorRule struct{}

func (mirrorRule) Apply(s engine.LevelState, d core.Direction) (engine.LevelState, bool) {
	p := s.Cursor.Step(d)
	q := s.Mirror.Step(d.Opposite())

	next := s.Clone()
	moved := false
	if !s.Blocked(p) {
		next.Cursor = p
		moved = true
	}
	if !s.Blocked(q) {
		next.Mirror = q
		moved = true
	}
	if !moved {
		return s, false
	}
	return next, true
}

func (mirrorRule) IsWon(s engine.LevelState) bool {
	return s.Cursor == s.Goal && s.Mirror == s.MirrorGoal
}

// mirrorGen places walls and two cursors, then explores the joint
// (primary, mirror) position graph breadth-first. A random joint state at
// depth MinDepth or more becomes the goal pair, so the level is solvable by
// construction and the BFS path is the solution.
type mirrorGen struct {
	Walls    int
	MinDepth int
}

type mirrorState struct {
	P, Q core.Coord
}

func (g mirrorGen) Generate(rng *core.RNG, w, h int) (engine.LevelState, engine.Solution, error) {
	grid := core.NewGrid(w, h, core.ColorBlack)
	placeWalls(rng, grid, g.Walls, nil)

	primary, ok := randomFreeCell(rng, grid, nil)
	if !ok {
		return engine.LevelState{}, nil, errLayoutRejected
	}
	mirror, ok := randomFreeCell(rng, grid, map[core.Coord]bool{primary: true})
	if !ok {
		return engine.LevelState{}, nil, errLayoutRejected
	}

	start := engine.LevelState{
		Grid:      grid,
		Cursor:    primary,
		HasMirror: true,
		Mirror:    mirror,
	}

	goal, sol, ok := pickMirrorGoal(rng, start, g.MinDepth)
	if !ok {
		return engine.LevelState{}, nil, errLayoutRejected
	}
	start.Goal = goal.P
	start.MirrorGoal = goal.Q
	grid.Set(goal.P, mirrorGoalColor)
	grid.Set(goal.Q, mirrorMirrorGoalColor)

	if err := checkSolved(mirrorRule{}, start, sol); err != nil {
		return engine.LevelState{}, nil, err
	}
	return start, sol, nil
}

// pickMirrorGoal walks the joint-position graph and returns a random state
// at depth minDepth or more, with the move sequence leading to it.
func pickMirrorGoal(rng *core.RNG, start engine.LevelState, minDepth int) (mirrorState, engine.Solution, bool) {
	type node struct {
		state engine.LevelState
		moves engine.Solution
	}
	const depthCap = 24

	first := mirrorState{P: start.Cursor, Q: start.Mirror}
	seen := map[mirrorState]bool{first: true}
	queue := []node{{state: start}}
	var candidates []node

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if len(n.moves) >= depthCap {
			continue
		}
		for _, d := range core.Directions {
			next, moved := mirrorRule{}.Apply(n.state, d)
			if !moved {
				continue
			}
			js := mirrorState{P: next.Cursor, Q: next.Mirror}
			if seen[js] {
				continue
			}
			seen[js] = true
			moves := append(append(engine.Solution{}, n.moves...), d)
			nn := node{state: next, moves: moves}
			// The goal pair must be two distinct cells so both tints fit.
			if len(moves) >= minDepth && js.P != js.Q {
				candidates = append(candidates, nn)
			}
			queue = append(queue, nn)
		}
	}
	if len(candidates) == 0 {
		return mirrorState{}, nil, false
	}
	chosen := candidates[rng.Intn(len(candidates))]
	return mirrorState{P: chosen.state.Cursor, Q: chosen.state.Mirror}, chosen.moves, true
}
