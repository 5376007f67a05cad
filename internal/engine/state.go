// Package engine implements the level-rule engine: state snapshots, the
// rule/generator contracts, undo history, per-level sessions and the
// seven-level game controller. All computation is pure and in-memory; the
// engine performs no I/O and owns no shared state across sessions.
package engine

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// VariantID identifies one of the seven level rule sets. The set is closed:
// each ID maps to a fixed (Generator, Rule) pair chosen once at level start.
type VariantID int

const (
	VariantPaint   VariantID = 1 // paint-on-step ("Color Echo")
	VariantFlood   VariantID = 2 // toggle-flood ("Flood Walker")
	VariantTrail   VariantID = 3 // trail-paint ("Color Trail")
	VariantSlide   VariantID = 4 // sliding-block ("Gravity Well")
	VariantMirror  VariantID = 5 // dual-cursor mirror ("Mirror Walk")
	VariantLights  VariantID = 6 // neighbor-toggle ("Lights Up")
	VariantSokoban VariantID = 7 // sokoban push ("Block Pusher")
)

// Valid reports whether the ID names one of the seven variants.
func (v VariantID) Valid() bool {
	return v >= VariantPaint && v <= VariantSokoban
}

// Status is the engine's observable progress flag.
type Status int

const (
	StatusInProgress Status = iota
	StatusLevelWon
	StatusGameComplete
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusLevelWon:
		return "level-won"
	case StatusGameComplete:
		return "game-complete"
	default:
		return "unknown"
	}
}

// LevelState is the complete snapshot of one level instance. It is treated
// as a value: rules never mutate their input, each transition produces a new
// state, and history stores whole states. Which fields are meaningful
// depends on the variant (Mirror for variant 5, Blocks/Targets for 4 and 7,
// Carried for 3).
type LevelState struct {
	Variant VariantID

	// Grid holds static terrain (background, walls, target markers) plus
	// any paint mutations the rule applies. Walls are cells colored
	// core.ColorWall.
	Grid *core.Grid

	Cursor core.Coord

	// Mirror is the secondary cursor of the dual-cursor variant.
	HasMirror  bool
	Mirror     core.Coord
	Goal       core.Coord // primary cursor goal (variant 5)
	MirrorGoal core.Coord // secondary cursor goal (variant 5)

	// Blocks maps position to block color. Keying by position enforces
	// the one-block-per-cell invariant.
	Blocks map[core.Coord]core.Color

	// Targets maps a target cell to the block color required on it.
	// Static for the life of the level.
	Targets map[core.Coord]core.Color

	// Carried is the color the trail-paint cursor is carrying;
	// core.ColorBlack means none yet.
	Carried core.Color

	Moves int
	Won   bool
}

// IsWall reports whether the cell at c is an immovable wall.
// Out-of-bounds cells are not walls; they are handled by bounds checks.
func (s *LevelState) IsWall(c core.Coord) bool {
	return s.Grid.InBounds(c) && s.Grid.Get(c) == core.ColorWall
}

// Blocked reports whether a cursor may not occupy c: out of bounds or wall.
func (s *LevelState) Blocked(c core.Coord) bool {
	return !s.Grid.InBounds(c) || s.IsWall(c)
}

// Clone returns a deep copy. Rules clone before mutating so that stored
// history snapshots can never be corrupted by later moves.
func (s LevelState) Clone() LevelState {
	out := s
	out.Grid = s.Grid.Clone()
	if s.Blocks != nil {
		out.Blocks = make(map[core.Coord]core.Color, len(s.Blocks))
		for p, c := range s.Blocks {
			out.Blocks[p] = c
		}
	}
	if s.Targets != nil {
		out.Targets = make(map[core.Coord]core.Color, len(s.Targets))
		for p, c := range s.Targets {
			out.Targets[p] = c
		}
	}
	return out
}

// Equal reports whether two states are observably identical.
func (s LevelState) Equal(other LevelState) bool {
	if s.Variant != other.Variant ||
		s.Cursor != other.Cursor ||
		s.HasMirror != other.HasMirror ||
		s.Mirror != other.Mirror ||
		s.Goal != other.Goal ||
		s.MirrorGoal != other.MirrorGoal ||
		s.Carried != other.Carried ||
		s.Moves != other.Moves ||
		s.Won != other.Won {
		return false
	}
	if !s.Grid.Equal(other.Grid) {
		return false
	}
	if len(s.Blocks) != len(other.Blocks) {
		return false
	}
	for p, c := range s.Blocks {
		if other.Blocks[p] != c {
			return false
		}
	}
	if len(s.Targets) != len(other.Targets) {
		return false
	}
	for p, c := range s.Targets {
		if other.Targets[p] != c {
			return false
		}
	}
	return true
}

// Validate checks structural invariants: valid variant, valid color codes,
// cursors in bounds and off walls, blocks in bounds, off walls and uniquely
// placed. It is the gate for resumed or deserialized states; the engine
// refuses to operate on invalid state rather than attempting repair.
func (s *LevelState) Validate() error {
	if !s.Variant.Valid() {
		return fmt.Errorf("engine: invalid variant %d", s.Variant)
	}
	if s.Grid == nil {
		return fmt.Errorf("engine: state has no grid")
	}
	if s.Grid.W < 1 || s.Grid.W > core.MaxGridSize ||
		s.Grid.H < 1 || s.Grid.H > core.MaxGridSize ||
		len(s.Grid.Cells) != s.Grid.W*s.Grid.H {
		return fmt.Errorf("engine: malformed grid %dx%d (%d cells)",
			s.Grid.W, s.Grid.H, len(s.Grid.Cells))
	}
	for i, c := range s.Grid.Cells {
		if !c.Valid() {
			return fmt.Errorf("engine: invalid color %d at cell %d", c, i)
		}
	}
	if s.Blocked(s.Cursor) {
		return fmt.Errorf("engine: cursor %v out of bounds or on wall", s.Cursor)
	}
	if s.HasMirror && s.Blocked(s.Mirror) {
		return fmt.Errorf("engine: mirror cursor %v out of bounds or on wall", s.Mirror)
	}
	for p, c := range s.Blocks {
		if !s.Grid.InBounds(p) {
			return fmt.Errorf("engine: block at %v out of bounds", p)
		}
		if s.IsWall(p) {
			return fmt.Errorf("engine: block at %v overlaps wall", p)
		}
		if !c.Valid() {
			return fmt.Errorf("engine: block at %v has invalid color %d", p, c)
		}
	}
	for p, c := range s.Targets {
		if !s.Grid.InBounds(p) {
			return fmt.Errorf("engine: target at %v out of bounds", p)
		}
		if !c.Valid() {
			return fmt.Errorf("engine: target at %v has invalid color %d", p, c)
		}
	}
	if s.Moves < 0 {
		return fmt.Errorf("engine: negative move counter %d", s.Moves)
	}
	return nil
}

// SortedBlocks returns the block set as a slice ordered by row then column,
// for deterministic output.
func (s *LevelState) SortedBlocks() []Block {
	out := make([]Block, 0, len(s.Blocks))
	for p, c := range s.Blocks {
		out = append(out, Block{Pos: p, Color: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}

// Block is a movable colored entity, reported in snapshots.
type Block struct {
	Pos   core.Coord
	Color core.Color
}
