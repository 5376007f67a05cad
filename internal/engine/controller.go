package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// Controller sequences the campaign from level 1 through the last level to
// game complete. It owns one live Session at a time, advances only when that
// session reports a win, and never second-guesses the session's
// determination.
type Controller struct {
	defs     []Definition
	seed     int64 // game seed; per-level seeds are derived from it
	level    int   // 1-based; valid after Start
	session  *Session
	complete bool
	started  bool
}

// LevelResult is reported alongside each snapshot so callers can react to
// level completions (e.g. record them) without re-deriving state.
type LevelResult struct {
	Completed bool
	Level     int
	Variant   VariantID
	Seed      int64
	Moves     int
}

// NewController creates a controller over the given campaign. A zero seed
// derives one from the wall clock; the chosen seed is fixed afterwards and
// visible in every snapshot, so captured games stay reproducible.
func NewController(seed int64, defs []Definition) *Controller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Controller{defs: defs, seed: seed}
}

// Seed returns the game seed.
func (c *Controller) Seed() int64 {
	return c.seed
}

// Start generates level 1.
func (c *Controller) Start() error {
	return c.startLevel(1)
}

// StartAt generates the given level directly, used when resuming a
// suspended game.
func (c *Controller) StartAt(level int) error {
	if level < 1 || level > len(c.defs) {
		return fmt.Errorf("engine: level %d out of range 1..%d", level, len(c.defs))
	}
	return c.startLevel(level)
}

func (c *Controller) startLevel(level int) error {
	def := c.defs[level-1]
	sess := NewSession(def, core.DeriveSeed(c.seed, int64(level)))
	if err := sess.Start(); err != nil {
		return err
	}
	c.level = level
	c.session = sess
	c.complete = false
	c.started = true
	return nil
}

// Move forwards one directional input to the active session. On a win the
// controller advances to the next level (or marks the game complete); the
// returned snapshot still shows the winning board so the caller can present
// it. Advancing can fail only on a generation error for the next level.
func (c *Controller) Move(d core.Direction) (Snapshot, LevelResult, error) {
	if !c.started {
		return Snapshot{}, LevelResult{}, fmt.Errorf("engine: controller not started")
	}
	if c.complete {
		return c.snapshot(StatusGameComplete), LevelResult{}, nil
	}

	c.session.Input(d)
	if !c.session.IsWon() {
		return c.snapshot(StatusInProgress), LevelResult{}, nil
	}

	result := LevelResult{
		Completed: true,
		Level:     c.level,
		Variant:   c.session.Definition().ID,
		Seed:      c.session.Seed(),
		Moves:     c.session.State().Moves,
	}

	if c.level == len(c.defs) {
		c.complete = true
		return c.snapshot(StatusGameComplete), result, nil
	}

	snap := c.snapshot(StatusLevelWon)
	if err := c.startLevel(c.level + 1); err != nil {
		return Snapshot{}, LevelResult{}, err
	}
	return snap, result, nil
}

// Undo reverses the last input of the active level. Undo never crosses a
// level boundary.
func (c *Controller) Undo() Snapshot {
	if c.started && !c.complete {
		c.session.Undo()
	}
	return c.Snapshot()
}

// ResetLevel regenerates the active level from its original seed.
func (c *Controller) ResetLevel() (Snapshot, error) {
	if !c.started || c.complete {
		return c.Snapshot(), nil
	}
	if err := c.session.Reset(); err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

// Restart begins a fresh game at level 1 with a new wall-clock seed.
func (c *Controller) Restart() (Snapshot, error) {
	return c.RestartSeed(time.Now().UnixNano())
}

// RestartSeed begins a fresh game at level 1 with the given seed
// (zero keeps the current seed, replaying the same campaign).
func (c *Controller) RestartSeed(seed int64) (Snapshot, error) {
	if seed != 0 {
		c.seed = seed
	}
	if err := c.startLevel(1); err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

// Level returns the 1-based index of the active level.
func (c *Controller) Level() int {
	return c.level
}

// Complete reports whether all levels have been won.
func (c *Controller) Complete() bool {
	return c.complete
}

// Session exposes the active level session (read-mostly: solve command and
// persistence use it).
func (c *Controller) Session() *Session {
	return c.session
}

// Snapshot returns the current observable state.
func (c *Controller) Snapshot() Snapshot {
	status := StatusInProgress
	if c.complete {
		status = StatusGameComplete
	}
	return c.snapshot(status)
}

func (c *Controller) snapshot(status Status) Snapshot {
	return buildSnapshot(c.session, c.level, len(c.defs), status)
}
