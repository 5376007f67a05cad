package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pattern/internal/core"
	"github.com/vovakirdan/tui-pattern/internal/engine"
	"github.com/vovakirdan/tui-pattern/internal/storage"
)

// GameModel is the Bubble Tea model for the play screen. The game is
// turn-based: there is no tick loop, every state change is a response to a
// key press.
type GameModel struct {
	ctrl   *engine.Controller
	store  *storage.Store
	screen *core.Screen
	keys   GameKeyMap
	help   help.Model

	snap     engine.Snapshot
	message  string
	width    int
	height   int
	quitting bool

	scoreboard *ScoreboardModel // non-nil while the scores overlay is open
}

// NewGameModel creates a play-screen model over a started controller.
// The store may be nil; completions are then simply not recorded.
func NewGameModel(ctrl *engine.Controller, store *storage.Store, width, height int) GameModel {
	h := help.New()
	h.ShowAll = false
	return GameModel{
		ctrl:   ctrl,
		store:  store,
		screen: core.NewScreen(width, height),
		keys:   DefaultGameKeyMap(),
		help:   h,
		snap:   ctrl.Snapshot(),
		width:  width,
		height: height,
	}
}

// Init implements tea.Model. No tick: the model waits for input.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.scoreboard != nil {
			m.scoreboard.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input on the play screen.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Undo):
		m.snap = m.ctrl.Undo()
		m.message = ""
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		snap, err := m.ctrl.ResetLevel()
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.snap = snap
		m.message = "level reset"
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		snap, err := m.ctrl.Restart()
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.snap = snap
		m.message = fmt.Sprintf("new game, seed %d", m.ctrl.Seed())
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		sb := NewScoreboardModel(m.store, m.width, m.height)
		m.scoreboard = &sb
		return m, nil
	}

	if d, ok := m.keys.Direction(msg.String()); ok {
		return m.handleMove(d)
	}
	return m, nil
}

// handleMove forwards one direction to the controller and reacts to level
// completions.
func (m GameModel) handleMove(d core.Direction) (tea.Model, tea.Cmd) {
	if m.snap.Status == engine.StatusGameComplete {
		return m, nil
	}
	snap, res, err := m.ctrl.Move(d)
	if err != nil {
		m.message = err.Error()
		return m, nil
	}
	m.snap = snap
	m.message = ""

	if res.Completed {
		m.message = fmt.Sprintf("%s cleared in %d moves", snap.Title, res.Moves)
		if m.store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveCompletion(snap.Name, res.Level, res.Seed, res.Moves)
		}
		if snap.Status != engine.StatusGameComplete {
			// Show the fresh board of the next level right away; the
			// completion note stays on the message line.
			m.snap = m.ctrl.Snapshot()
		}
	}
	return m, nil
}

// updateScoreboard routes input to the scores overlay.
func (m GameModel) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, quit := m.scoreboard.Handle(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if done {
		m.scoreboard = nil
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	m.drawBoard()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Board layout constants
const (
	boardLeft = 2 // left margin in cells
	boardTop  = 3 // rows reserved for the header
	cellWidth = 2 // terminal characters per grid cell
)

// drawBoard paints the snapshot into the screen buffer.
func (m GameModel) drawBoard() {
	m.screen.Clear()
	snap := m.snap

	header := fmt.Sprintf("Pattern Master  level %d/%d  %s", snap.Level, snap.Levels, snap.Title)
	if snap.Status == engine.StatusGameComplete {
		header = "Pattern Master  all levels clear!"
	}
	m.screen.DrawText(boardLeft, 0, header)
	m.screen.DrawText(boardLeft, 1, fmt.Sprintf("seed %d  moves %d", snap.Seed, snap.Moves))

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			drawCell(m.screen, x, y, snap.Cells[y][x])
		}
	}
	drawCursor(m.screen, snap.Cursor, "[]")
	if snap.HasMirror {
		drawCursor(m.screen, snap.Mirror, "<>")
	}

	msgRow := boardTop + snap.Height + 1
	if m.message != "" {
		m.screen.DrawText(boardLeft, msgRow, m.message)
	}
	if snap.Status == engine.StatusGameComplete {
		m.screen.DrawText(boardLeft, msgRow+1, "press R for a new game, q to quit")
	}
}

// drawCell renders one grid cell as a two-character block. Background cells
// get a faint dot so the board shape stays visible on empty terrain.
func drawCell(s *core.Screen, x, y int, c core.Color) {
	sx := boardLeft + x*cellWidth
	sy := boardTop + y
	if c == core.ColorBlack {
		s.SetCell(sx, sy, core.ScreenCell{Rune: '·', Color: core.ColorDarkGray})
		s.SetCell(sx+1, sy, core.ScreenCell{Rune: ' ', Color: core.ColorDarkGray})
		return
	}
	s.SetCell(sx, sy, core.ScreenCell{Rune: '█', Color: c})
	s.SetCell(sx+1, sy, core.ScreenCell{Rune: '█', Color: c})
}

// drawCursor overlays a two-rune bracket pair on the cell under a cursor.
func drawCursor(s *core.Screen, pos core.Coord, brackets string) {
	sx := boardLeft + pos.X*cellWidth
	sy := boardTop + pos.Y
	for i, r := range brackets {
		s.SetCell(sx+i, sy, core.ScreenCell{Rune: r, Color: core.ColorWhite})
	}
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(ctrl *engine.Controller, store *storage.Store, width, height int) error {
	model := NewGameModel(ctrl, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
