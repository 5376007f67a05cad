package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// Rule is the state-transition law of one level variant.
//
// Apply is a total function: every (state, direction) pair has a defined
// outcome. Blocked moves return the state unchanged with moved=false; there
// is no error path for bad input. Apply must not mutate its input state.
//
// IsWon is a pure predicate: once true for a state value it stays true for
// that value.
type Rule interface {
	Apply(s LevelState, d core.Direction) (next LevelState, moved bool)
	IsWon(s LevelState) bool
}

// Solution is a move sequence known to take a generated level from its
// start state to a won state. Generators produce it as a byproduct of their
// solvability guarantee (scramble inverse or search path); it is advisory
// and never part of the observable state.
type Solution []core.Direction

// Generator builds one solvable start state. A single call is one attempt:
// it may fail (layout rejected), in which case the session retries with a
// derived seed up to MaxGenAttempts times. The rng carries all randomness;
// generators hold no other mutable state and are safe to share.
type Generator interface {
	Generate(rng *core.RNG, w, h int) (LevelState, Solution, error)
}

// MaxGenAttempts bounds generation retries for one seed. Exceeding it is a
// fatal generation failure for that seed, never a silently unsolvable level.
const MaxGenAttempts = 50

// Definition binds a variant ID to its rule, generator and board size.
// The campaign is an ordered slice of definitions; the set is fixed at
// startup (static lookup, no runtime registration).
type Definition struct {
	ID     VariantID
	Name   string // short identifier, e.g. "flood"
	Title  string // display name, e.g. "Flood Walker"
	Width  int
	Height int
	Rule   Rule
	Gen    Generator
}

// Generate runs the definition's generator with bounded retries, deriving a
// fresh sub-seed per attempt so results stay reproducible from the level
// seed alone.
func (d Definition) Generate(seed int64) (LevelState, Solution, error) {
	var lastErr error
	for attempt := 0; attempt < MaxGenAttempts; attempt++ {
		rng := core.NewRNG(core.DeriveSeed(seed, int64(attempt)))
		st, sol, err := d.Gen.Generate(rng, d.Width, d.Height)
		if err != nil {
			lastErr = err
			continue
		}
		st.Variant = d.ID
		if verr := st.Validate(); verr != nil {
			return LevelState{}, nil, fmt.Errorf("engine: generator for variant %d produced invalid state: %w", d.ID, verr)
		}
		return st, sol, nil
	}
	return LevelState{}, nil, fmt.Errorf("engine: no solvable %s level for seed %d after %d attempts: %w",
		d.Name, seed, MaxGenAttempts, lastErr)
}
