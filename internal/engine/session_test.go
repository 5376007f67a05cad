package engine

import (
	"testing"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

func TestSessionStartDeterministic(t *testing.T) {
	a := NewSession(walkDef(), 42)
	b := NewSession(walkDef(), 42)
	if err := a.Start(); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	if !a.State().Equal(b.State()) {
		t.Error("same seed produced different start states")
	}
}

func TestSessionMoveAndWin(t *testing.T) {
	s := NewSession(walkDef(), 1)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	for i, d := range s.Solution() {
		if s.IsWon() {
			t.Fatalf("won after %d moves, before solution finished", i)
		}
		if !s.Input(d) {
			t.Fatalf("solution move %d (%v) was blocked", i, d)
		}
	}
	if !s.IsWon() {
		t.Fatal("replaying the generator's solution did not win")
	}
	if s.State().Moves != len(s.Solution()) {
		t.Errorf("Moves = %d, want %d", s.State().Moves, len(s.Solution()))
	}
}

func TestSessionBlockedMoveCounts(t *testing.T) {
	s := NewSession(walkDef(), 1)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	// (0,1) is a wall, so down from the start is blocked.
	if s.Input(core.DirDown) {
		t.Fatal("move into a wall reported moved=true")
	}
	if s.State().Moves != 0 {
		t.Errorf("blocked move incremented Moves to %d", s.State().Moves)
	}
	// Blocked moves still go on the history stack.
	if s.HistoryLen() != 1 {
		t.Errorf("HistoryLen = %d, want 1", s.HistoryLen())
	}
}

func TestSessionUndoIsInverse(t *testing.T) {
	s := NewSession(walkDef(), 1)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	start := s.State().Clone()

	moves := []core.Direction{core.DirRight, core.DirDown, core.DirDown, core.DirRight}
	for _, d := range moves {
		s.Input(d)
	}
	for range moves {
		if !s.Undo() {
			t.Fatal("undo failed with history remaining")
		}
	}
	if !s.State().Equal(start) {
		t.Error("undoing every move did not restore the start state")
	}
	if s.Undo() {
		t.Error("undo with empty history reported true")
	}
}

func TestSessionUndoOfBlockedMove(t *testing.T) {
	s := NewSession(walkDef(), 1)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.Input(core.DirRight)
	after := s.State().Clone()

	// A blocked move pushes an identical snapshot; undoing it changes nothing.
	s.Input(core.DirDown)
	s.Undo()
	if !s.State().Equal(after) {
		t.Error("undo of a blocked move changed the state")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession(walkDef(), 7)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	start := s.State().Clone()

	s.Input(core.DirRight)
	s.Input(core.DirRight)
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if !s.State().Equal(start) {
		t.Error("reset did not regenerate the original level")
	}
	if s.HistoryLen() != 0 || len(s.Ops()) != 0 {
		t.Error("reset did not clear history and the op log")
	}
}

func TestSessionReplayReconstructs(t *testing.T) {
	s := NewSession(walkDef(), 99)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	inputs := []core.Direction{core.DirRight, core.DirDown, core.DirRight}
	for _, d := range inputs {
		s.Input(d)
	}
	s.Undo()
	s.Input(core.DirLeft)

	r := NewSession(walkDef(), 99)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	if err := r.Replay(s.Ops()); err != nil {
		t.Fatal(err)
	}
	if !r.State().Equal(s.State()) {
		t.Error("replayed session state differs from the original")
	}
	if r.HistoryLen() != s.HistoryLen() {
		t.Errorf("replayed HistoryLen = %d, want %d", r.HistoryLen(), s.HistoryLen())
	}
}

func TestDefinitionGenerateRetries(t *testing.T) {
	def := walkDef()
	def.Gen = &flakyGen{failures: 3}
	st, sol, err := def.Generate(5)
	if err != nil {
		t.Fatalf("generation should succeed after retries: %v", err)
	}
	if st.Variant != def.ID {
		t.Errorf("Variant = %d, want %d", st.Variant, def.ID)
	}
	if len(sol) == 0 {
		t.Error("successful generation returned no solution")
	}
}

func TestDefinitionGenerateExhaustsRetries(t *testing.T) {
	def := walkDef()
	def.Gen = &flakyGen{failures: MaxGenAttempts}
	if _, _, err := def.Generate(5); err == nil {
		t.Fatal("expected an error after exhausting all attempts")
	}
}
