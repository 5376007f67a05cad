package engine

// History is the undo stack for one level: an append-only sequence of full
// LevelState snapshots. The stack is unbounded: states are small (boards
// are at most 64×64) and history never crosses a level boundary, so the
// worst case is one snapshot per move of a single level.
type History struct {
	stack []LevelState
}

// Push records a snapshot. The state is deep-copied so later mutations can
// never corrupt stored history.
func (h *History) Push(s LevelState) {
	h.stack = append(h.stack, s.Clone())
}

// Undo pops and returns the most recent snapshot. The second return is
// false when the stack is empty; undo on an empty stack is a no-op, not an
// error.
func (h *History) Undo() (LevelState, bool) {
	if len(h.stack) == 0 {
		return LevelState{}, false
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return top, true
}

// Clear discards all history. Called on level reset and level advance.
func (h *History) Clear() {
	h.stack = nil
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.stack)
}
