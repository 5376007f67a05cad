package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// OpKind distinguishes the two inputs a session records: directional moves
// and undos. Level resets clear the log, so they need no entry.
type OpKind int

const (
	OpMove OpKind = iota
	OpUndo
)

// Op is one accepted session input. The ordered op log since level entry,
// replayed against the same seed, reconstructs the exact session state
// including its history stack.
type Op struct {
	Kind OpKind
	Dir  core.Direction // meaningful for OpMove only
}

// Session owns the live state of one level: the generated LevelState, its
// undo history, the accepted-input log and the (rule, generator) pair of
// its variant. Sessions are single-caller; concurrent users must each hold
// their own.
type Session struct {
	def      Definition
	seed     int64
	state    LevelState
	history  History
	solution Solution
	ops      []Op
}

// NewSession creates an unstarted session for the given variant definition.
func NewSession(def Definition, seed int64) *Session {
	return &Session{def: def, seed: seed}
}

// Start generates the level from the session seed. Fails only if no
// solvable layout exists within the retry bound.
func (s *Session) Start() error {
	st, sol, err := s.def.Generate(s.seed)
	if err != nil {
		return err
	}
	s.state = st
	s.solution = sol
	s.history.Clear()
	s.ops = nil
	return nil
}

// Input routes one directional move through the variant rule. The current
// state is snapshotted to history before the rule runs, so undo restores
// the pre-move state exactly, including for blocked moves, where undoing
// the resulting no-op is itself a no-op. Returns whether anything moved.
func (s *Session) Input(d core.Direction) bool {
	s.history.Push(s.state)
	next, moved := s.def.Rule.Apply(s.state, d)
	if moved {
		next.Moves++
	}
	next.Won = s.def.Rule.IsWon(next)
	s.state = next
	s.ops = append(s.ops, Op{Kind: OpMove, Dir: d})
	return moved
}

// Undo restores the state preceding the last input. No-op on empty history.
func (s *Session) Undo() bool {
	prev, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.state = prev
	s.ops = append(s.ops, Op{Kind: OpUndo})
	return true
}

// Reset regenerates the level from the same seed and clears history and the
// op log.
func (s *Session) Reset() error {
	return s.Start()
}

// IsWon reports whether the current state satisfies the variant's win
// predicate.
func (s *Session) IsWon() bool {
	return s.state.Won
}

// State returns the current level state. Callers must treat it as
// read-only; Snapshot provides a detached, caller-safe view.
func (s *Session) State() LevelState {
	return s.state
}

// Seed returns the seed the level was generated from.
func (s *Session) Seed() int64 {
	return s.seed
}

// Definition returns the variant definition backing this session.
func (s *Session) Definition() Definition {
	return s.def
}

// Solution returns the generator's known winning move sequence for the
// freshly generated state. It is not updated as the player moves.
func (s *Session) Solution() Solution {
	return s.solution
}

// Ops returns the accepted-input log since level entry.
func (s *Session) Ops() []Op {
	out := make([]Op, len(s.ops))
	copy(out, s.ops)
	return out
}

// HistoryLen exposes the undo stack depth (for HUD display).
func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// Replay applies a recorded op log to a freshly started session. Used when
// resuming a suspended game: the same seed regenerates the level, the ops
// rebuild the state and history.
func (s *Session) Replay(ops []Op) error {
	for i, op := range ops {
		switch op.Kind {
		case OpMove:
			s.Input(op.Dir)
		case OpUndo:
			s.Undo()
		default:
			return fmt.Errorf("engine: op %d has unknown kind %d", i, op.Kind)
		}
	}
	return nil
}
