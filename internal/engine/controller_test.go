package engine

import (
	"testing"

	"github.com/vovakirdan/tui-pattern/internal/core"
)

// winLevel plays the active level's solution. The final move returns the
// winning snapshot.
func winLevel(t *testing.T, c *Controller) (Snapshot, LevelResult) {
	t.Helper()
	sol := c.Session().Solution()
	var snap Snapshot
	var res LevelResult
	var err error
	for _, d := range sol {
		snap, res, err = c.Move(d)
		if err != nil {
			t.Fatal(err)
		}
	}
	return snap, res
}

func TestControllerZeroSeedGetsReplaced(t *testing.T) {
	c := NewController(0, testCampaign(2))
	if c.Seed() == 0 {
		t.Fatal("zero seed was not replaced")
	}
}

func TestControllerLevelAdvance(t *testing.T) {
	c := NewController(11, testCampaign(3))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if c.Level() != 1 {
		t.Fatalf("Level = %d, want 1", c.Level())
	}

	snap, res := winLevel(t, c)
	if snap.Status != StatusLevelWon {
		t.Fatalf("Status = %v, want %v", snap.Status, StatusLevelWon)
	}
	if !res.Completed || res.Level != 1 {
		t.Fatalf("result = %+v, want completion of level 1", res)
	}
	// The winning snapshot shows the finished board of the old level.
	if snap.Level != 1 {
		t.Errorf("winning snapshot Level = %d, want 1", snap.Level)
	}
	// The controller has already advanced.
	if c.Level() != 2 {
		t.Errorf("Level after win = %d, want 2", c.Level())
	}
	if c.Snapshot().Moves != 0 {
		t.Error("new level did not start with zero moves")
	}
}

func TestControllerGameComplete(t *testing.T) {
	c := NewController(11, testCampaign(2))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	winLevel(t, c)
	snap, res := winLevel(t, c)
	if snap.Status != StatusGameComplete {
		t.Fatalf("Status = %v, want %v", snap.Status, StatusGameComplete)
	}
	if !res.Completed || res.Level != 2 {
		t.Fatalf("result = %+v, want completion of level 2", res)
	}
	if !c.Complete() {
		t.Fatal("Complete() = false after final win")
	}

	// Inputs after completion are ignored.
	snap, res, err := c.Move(core.DirLeft)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Status != StatusGameComplete || res.Completed {
		t.Error("move after completion changed status or reported a result")
	}
}

func TestControllerSameSeedSameCampaign(t *testing.T) {
	a := NewController(77, testCampaign(3))
	b := NewController(77, testCampaign(3))
	if err := a.Start(); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	winLevel(t, a)
	winLevel(t, b)
	if !a.Session().State().Equal(b.Session().State()) {
		t.Error("same seed produced different level-2 states")
	}
}

func TestControllerPerLevelSeedsDiffer(t *testing.T) {
	c := NewController(5, testCampaign(2))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	s1 := c.Session().Seed()
	winLevel(t, c)
	if s2 := c.Session().Seed(); s2 == s1 {
		t.Error("levels 1 and 2 share a seed")
	}
}

func TestControllerResetLevel(t *testing.T) {
	c := NewController(13, testCampaign(2))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	start := c.Session().State().Clone()
	c.Move(core.DirRight)
	if _, err := c.ResetLevel(); err != nil {
		t.Fatal(err)
	}
	if !c.Session().State().Equal(start) {
		t.Error("reset did not restore the generated level")
	}
	if c.Level() != 1 {
		t.Errorf("reset changed the level to %d", c.Level())
	}
}

func TestControllerRestartSeed(t *testing.T) {
	c := NewController(13, testCampaign(2))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	winLevel(t, c)

	if _, err := c.RestartSeed(21); err != nil {
		t.Fatal(err)
	}
	if c.Level() != 1 || c.Seed() != 21 || c.Complete() {
		t.Errorf("restart state: level=%d seed=%d complete=%v", c.Level(), c.Seed(), c.Complete())
	}
}

func TestControllerMoveBeforeStart(t *testing.T) {
	c := NewController(13, testCampaign(1))
	if _, _, err := c.Move(core.DirUp); err == nil {
		t.Fatal("move before Start should error")
	}
}

func TestSnapshotComposesBlocks(t *testing.T) {
	c := NewController(3, testCampaign(1))
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	// Inject a block to verify composition; snapshots draw blocks over
	// terrain.
	sess := c.Session()
	st := sess.State().Clone()
	st.Blocks = map[core.Coord]core.Color{core.C(2, 2): core.ColorRed}
	sess.state = st

	snap := c.Snapshot()
	if snap.Cells[2][2] != core.ColorRed {
		t.Errorf("cell (2,2) = %v, want block color over terrain", snap.Cells[2][2])
	}
	if snap.Cells[1][0] != core.ColorWall {
		t.Errorf("cell (0,1) = %v, want wall", snap.Cells[1][0])
	}
	if len(snap.Blocks) != 1 || snap.Blocks[0].Pos != core.C(2, 2) {
		t.Errorf("Blocks = %v, want the injected block", snap.Blocks)
	}
}
