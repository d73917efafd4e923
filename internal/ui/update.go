package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/e2t/leaderboard/internal/api"
	"github.com/e2t/leaderboard/internal/board"
	"github.com/e2t/leaderboard/internal/schedule"
)

// tickMsg is sent once per second to drive the countdown
type tickMsg time.Time

// SnapshotMsg carries a freshly fetched snapshot into the UI loop. The
// poll chain sends it through Program.Send; manual refreshes resolve to
// it directly.
type SnapshotMsg struct {
	Snapshot *api.Snapshot
}

// RefreshErrMsg reports a failed refresh. The previous snapshot stays
// on screen; only the status line changes.
type RefreshErrMsg struct {
	Err error
}

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		m.Remaining, _ = m.Countdown.Tick()
		if now := m.clock.Now(); !now.Before(m.NextPoll) {
			m.NextPoll = schedule.NextPollAnchor(now)
		}
		return m, tick()

	case SnapshotMsg:
		m.Sections = board.Build(msg.Snapshot)
		m.Counts = msg.Snapshot.Counts
		m.Baseline = baselineLabel(msg.Snapshot.BaselineAt)
		m.LastUpdated = m.clock.Now()
		m.RefreshError = ""
		m.Refreshing = false
		m.syncTable()
		return m, nil

	case RefreshErrMsg:
		m.RefreshError = msg.Err.Error()
		m.Refreshing = false
		return m, nil

	case tea.KeyMsg:
		if m.Search.Focused() {
			return updateSearch(msg, m)
		}
		return updateBoard(msg, m)
	}

	return m, nil
}

// updateSearch routes keys to the search input while it is focused.
func updateSearch(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.Search.Blur()
		return m, nil
	case "esc":
		m.Search.Blur()
		m.Search.Reset()
		m.syncTable()
		m.Table.GotoTop()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	m.syncTable()
	m.Table.GotoTop()
	return m, cmd
}

// updateBoard handles keys while the boards have focus.
func updateBoard(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	case "tab":
		m.setSection((m.Section + 1) % sectionCount)
		return m, nil
	case "shift+tab":
		m.setSection((m.Section + sectionCount - 1) % sectionCount)
		return m, nil
	case "1", "2", "3", "4":
		m.setSection(section(msg.String()[0] - '1'))
		return m, nil
	case "/":
		return m, m.Search.Focus()
	case "r":
		if m.Fetch == nil || m.Refreshing {
			return m, nil
		}
		m.Refreshing = true
		m.RefreshError = ""
		return m, m.Fetch
	case "esc":
		if m.Search.Value() != "" {
			m.Search.Reset()
			m.syncTable()
			m.Table.GotoTop()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
