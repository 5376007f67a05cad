package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pattern/internal/levels"
	"github.com/vovakirdan/tui-pattern/internal/storage"
)

// Scoreboard layout constants
const (
	maxEntries     = 50 // Max completions to load per variant
	tableHeight    = 12
	tableMinHeight = 4
)

// ScoreboardKeyMap defines the key bindings for the scores overlay.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextVar key.Binding
	PrevVar key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVar, k.PrevVar, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVar, k.PrevVar},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVar: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevVar: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// ScoreboardModel is the fewest-moves leaderboard, one page per level
// variant.
type ScoreboardModel struct {
	store  *storage.Store
	defs   []levelInfo
	cursor int
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

type levelInfo struct {
	name  string
	title string
}

// NewScoreboardModel creates a scoreboard over the campaign roster.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var defs []levelInfo
	for _, def := range levels.All() {
		defs = append(defs, levelInfo{name: def.Name, title: def.Title})
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		defs:   defs,
		help:   h,
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.buildTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Moves", Width: 8},
		{Title: "Seed", Width: 22},
		{Title: "When", Width: 20},
	}
	height := tableHeight
	if m.height-8 < height {
		height = m.height - 8
	}
	if height < tableMinHeight {
		height = tableMinHeight
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	return t
}

// reload fetches the completions for the selected variant.
func (m *ScoreboardModel) reload() {
	var rows []table.Row
	if m.store != nil {
		entries, err := m.store.BestCompletions(m.defs[m.cursor].name, maxEntries)
		if err == nil {
			for i, e := range entries {
				when := ""
				if !e.CreatedAt.IsZero() {
					when = e.CreatedAt.Format("2006-01-02 15:04")
				}
				rows = append(rows, table.Row{
					strconv.Itoa(i + 1),
					strconv.Itoa(e.Moves),
					strconv.FormatInt(e.Seed, 10),
					when,
				})
			}
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Resize adjusts the overlay to a new terminal size.
func (m *ScoreboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.buildTable()
	m.reload()
}

// Handle processes one key press. Returns done=true when the overlay should
// close, quit=true on a quit request.
func (m *ScoreboardModel) Handle(msg tea.KeyMsg) (done, quit bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, true
	case key.Matches(msg, m.keys.Back):
		return true, false
	case key.Matches(msg, m.keys.NextVar):
		m.cursor = (m.cursor + 1) % len(m.defs)
		m.reload()
		return false, false
	case key.Matches(msg, m.keys.PrevVar):
		m.cursor = (m.cursor - 1 + len(m.defs)) % len(m.defs)
		m.reload()
		return false, false
	}
	m.table, _ = m.table.Update(msg)
	return false, false
}

// View renders the scoreboard.
func (m *ScoreboardModel) View() string {
	info := m.defs[m.cursor]
	title := scoreboardTitleStyle.Render(
		fmt.Sprintf("Best runs  %d/%d  %s", m.cursor+1, len(m.defs), info.title),
	)
	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = "\n  no completions recorded yet\n"
	}
	return "\n " + title + "\n\n" + body + "\n" + m.help.View(m.keys)
}
