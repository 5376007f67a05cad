package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// SavedGame is the portable form of a suspended game: the game seed, the
// 1-based level the player was on, and the encoded op log of that level.
// Nothing else is persisted; level layout, board state and undo history all
// reconstruct deterministically from these three values.
type SavedGame struct {
	Seed  int64
	Level int
	Ops   string
}

// Op letters. One byte per op keeps saved logs compact and human-readable.
const (
	opLetterUp    = 'U'
	opLetterDown  = 'D'
	opLetterLeft  = 'L'
	opLetterRight = 'R'
	opLetterUndo  = 'Z'
)

// EncodeOps serializes an op log to its letter form.
func EncodeOps(ops []Op) string {
	buf := make([]byte, 0, len(ops))
	for _, op := range ops {
		if op.Kind == OpUndo {
			buf = append(buf, opLetterUndo)
			continue
		}
		switch op.Dir {
		case core.DirUp:
			buf = append(buf, opLetterUp)
		case core.DirDown:
			buf = append(buf, opLetterDown)
		case core.DirLeft:
			buf = append(buf, opLetterLeft)
		case core.DirRight:
			buf = append(buf, opLetterRight)
		}
	}
	return string(buf)
}

// DecodeOps parses a letter-encoded op log. Any unrecognized byte makes the
// whole log invalid; a truncated-but-valid prefix is indistinguishable from
// a shorter game, so corruption past this check cannot be detected here.
func DecodeOps(s string) ([]Op, error) {
	ops := make([]Op, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case opLetterUp:
			ops = append(ops, Op{Kind: OpMove, Dir: core.DirUp})
		case opLetterDown:
			ops = append(ops, Op{Kind: OpMove, Dir: core.DirDown})
		case opLetterLeft:
			ops = append(ops, Op{Kind: OpMove, Dir: core.DirLeft})
		case opLetterRight:
			ops = append(ops, Op{Kind: OpMove, Dir: core.DirRight})
		case opLetterUndo:
			ops = append(ops, Op{Kind: OpUndo})
		default:
			return nil, fmt.Errorf("engine: invalid op byte %q at offset %d", s[i], i)
		}
	}
	return ops, nil
}

// Save captures the controller's suspendable state. Saving a completed game
// is not meaningful and returns an error.
func Save(c *Controller) (SavedGame, error) {
	if !c.started {
		return SavedGame{}, fmt.Errorf("engine: nothing to save, game not started")
	}
	if c.complete {
		return SavedGame{}, fmt.Errorf("engine: game already complete")
	}
	return SavedGame{
		Seed:  c.seed,
		Level: c.level,
		Ops:   EncodeOps(c.session.Ops()),
	}, nil
}

// Resume rebuilds a controller from a saved game: regenerate the saved level
// from the derived seed, then replay the op log. The resulting state is
// validated before use, so a corrupt or hand-edited save fails loudly
// instead of yielding an inconsistent board.
func Resume(sg SavedGame, defs []Definition) (*Controller, error) {
	if sg.Seed == 0 {
		return nil, fmt.Errorf("engine: saved game has no seed")
	}
	ops, err := DecodeOps(sg.Ops)
	if err != nil {
		return nil, fmt.Errorf("engine: corrupt saved game: %w", err)
	}

	c := NewController(sg.Seed, defs)
	if err := c.StartAt(sg.Level); err != nil {
		return nil, err
	}
	if err := c.session.Replay(ops); err != nil {
		return nil, err
	}
	st := c.session.State()
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("engine: corrupt saved game: %w", err)
	}
	// A log ending on a winning move would have advanced the level before
	// the save; rejecting it here keeps resumed games on the same footing.
	if st.Won {
		return nil, fmt.Errorf("engine: corrupt saved game: op log ends on a completed level")
	}
	return c, nil
}
