package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/e2t/leaderboard/internal/api"
	"github.com/e2t/leaderboard/internal/board"
	"github.com/e2t/leaderboard/internal/schedule"
)

// section identifies one of the four boards on screen.
type section int

const (
	sectionActive section = iota
	sectionBlown
	sectionPurchases
	sectionPlan50K
	sectionCount
)

func (s section) String() string {
	switch s {
	case sectionActive:
		return "Active"
	case sectionBlown:
		return "Blown"
	case sectionPurchases:
		return "Purchases"
	case sectionPlan50K:
		return "50K Plan"
	default:
		return "Unknown"
	}
}

// Geometry used until the first WindowSizeMsg arrives, and the screen
// lines the header, tabs, prize strip, and footer occupy around the
// table.
const (
	defaultWidth  = 100
	defaultHeight = 24
	chromeHeight  = 9
)

// Model holds the dashboard state: the latest snapshot split into
// display sections, the countdown driver, and the table and search
// widgets.
type Model struct {
	Section  section
	Sections board.Sections
	Counts   api.Counts
	Baseline string

	Countdown *schedule.Countdown
	Remaining schedule.Remaining
	NextPoll  time.Time

	Table  table.Model
	Search textinput.Model
	Help   help.Model
	Keys   KeyMap

	Fetch        tea.Cmd
	LastUpdated  time.Time
	RefreshError string
	Refreshing   bool

	Version string
	Width   int
	Height  int

	clock schedule.Clock
}

// NewModel returns the initial model for the dashboard. fetch performs
// one snapshot load and must resolve to a SnapshotMsg or RefreshErrMsg;
// it runs once at startup and again on every manual refresh.
func NewModel(clock schedule.Clock, fetch tea.Cmd, version string) Model {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "trader, account or country"
	search.CharLimit = 48
	search.Width = 32

	countdown := schedule.NewCountdown(clock)
	now := clock.Now()

	m := Model{
		Section:   sectionActive,
		Countdown: countdown,
		Remaining: schedule.Until(countdown.Target(), now),
		NextPoll:  schedule.NextPollAnchor(now),
		Search:    search,
		Help:      NewHelpModel(),
		Keys:      DefaultKeys(),
		Fetch:     fetch,
		Version:   version,
		Width:     defaultWidth,
		Height:    defaultHeight,
		clock:     clock,
	}
	m.Table = table.New(
		table.WithColumns(sectionColumns(sectionActive, m.tableWidth())),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
		table.WithStyles(tableStyles()),
	)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.Fetch != nil {
		return tea.Batch(m.Fetch, tick())
	}
	return tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// sectionRows returns the unfiltered rows behind the visible board.
func (m Model) sectionRows() []board.Row {
	switch m.Section {
	case sectionBlown:
		return m.Sections.Blown
	case sectionPurchases:
		return m.Sections.Purchases
	case sectionPlan50K:
		return m.Sections.Plan50K
	default:
		return m.Sections.Active
	}
}

// tableWidth returns the width available to the table widget.
func (m Model) tableWidth() int {
	w := m.Width - 2
	if w < 60 {
		w = 60
	}
	return w
}

// tableHeight returns the lines available to the table widget.
func (m Model) tableHeight() int {
	h := m.Height - chromeHeight
	if h < 5 {
		h = 5
	}
	return h
}

// setSection switches the visible board and rebuilds the table.
func (m *Model) setSection(s section) {
	if s == m.Section {
		return
	}
	m.Section = s
	m.syncTable()
	m.Table.GotoTop()
}

// syncTable rebuilds the table for the current section with the search
// filter applied. Rows are cleared before the columns change so the
// widget never renders old cells against a new layout.
func (m *Model) syncTable() {
	cursor := m.Table.Cursor()
	m.Table.SetRows(nil)
	m.Table.SetColumns(sectionColumns(m.Section, m.tableWidth()))
	m.Table.SetRows(tableRows(m.Section, board.Filter(m.sectionRows(), m.Search.Value())))
	m.Table.SetCursor(cursor)
}

// resize recomputes widget geometry after a terminal size change.
func (m *Model) resize() {
	m.Help.Width = m.Width
	m.Table.SetWidth(m.tableWidth())
	m.Table.SetHeight(m.tableHeight())
	m.syncTable()
}

// stretch marks a column whose width is computed from the terminal.
const stretch = 0

// sectionColumns returns the column layout for s. The trader and
// country columns stretch into whatever width the fixed columns leave.
func sectionColumns(s section, width int) []table.Column {
	var cols []table.Column
	switch s {
	case sectionBlown:
		cols = []table.Column{
			{Title: "Account", Width: 10},
			{Title: "Trader", Width: stretch},
			{Title: "Country", Width: stretch},
			{Title: "Plan", Width: 11},
			{Title: "Balance", Width: 12},
			{Title: "Equity", Width: 12},
			{Title: "Open P&L", Width: 11},
			{Title: "Updated", Width: 8},
		}
	case sectionPurchases:
		cols = []table.Column{
			{Title: "Account", Width: 10},
			{Title: "Trader", Width: stretch},
			{Title: "Country", Width: stretch},
			{Title: "Plan", Width: 11},
			{Title: "Balance", Width: 12},
			{Title: "Group", Width: 14},
			{Title: "Updated", Width: 8},
		}
	case sectionPlan50K:
		cols = []table.Column{
			{Title: "Account", Width: 10},
			{Title: "Trader", Width: stretch},
			{Title: "Country", Width: stretch},
			{Title: "Balance", Width: 12},
			{Title: "Equity", Width: 12},
			{Title: "Open P&L", Width: 11},
			{Title: "Updated", Width: 8},
		}
	default:
		cols = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Account", Width: 10},
			{Title: "Trader", Width: stretch},
			{Title: "Country", Width: stretch},
			{Title: "Plan", Width: 11},
			{Title: "Balance", Width: 12},
			{Title: "Equity", Width: 12},
			{Title: "Open P&L", Width: 11},
			{Title: "Change", Width: 9},
			{Title: "Updated", Width: 8},
		}
	}
	stretchColumns(cols, width)
	return cols
}

// stretchColumns distributes the width the fixed columns leave over the
// stretch-marked ones, two cells of padding per column accounted for.
func stretchColumns(cols []table.Column, total int) {
	fixed, flex := 0, 0
	for _, c := range cols {
		if c.Width == stretch {
			flex++
		} else {
			fixed += c.Width
		}
	}
	if flex == 0 {
		return
	}
	per := (total - fixed - 2*len(cols)) / flex
	if per < 14 {
		per = 14
	}
	for i := range cols {
		if cols[i].Width == stretch {
			cols[i].Width = per
		}
	}
}

// tableRows flattens display rows into the cell order of s. The layout
// must match sectionColumns.
func tableRows(s section, rows []board.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		switch s {
		case sectionBlown:
			out = append(out, table.Row{r.AccountID, r.Trader, r.Country, r.Plan, r.Balance, r.Equity, r.OpenPnL, r.Updated})
		case sectionPurchases:
			out = append(out, table.Row{r.AccountID, r.Trader, r.Country, r.Plan, r.Balance, r.Group, r.Updated})
		case sectionPlan50K:
			out = append(out, table.Row{r.AccountID, r.Trader, r.Country, r.Balance, r.Equity, r.OpenPnL, r.Updated})
		default:
			out = append(out, table.Row{strconv.Itoa(r.Rank), r.AccountID, r.Trader, r.Country, r.Plan, r.Balance, r.Equity, r.OpenPnL, r.PctChange, r.Updated})
		}
	}
	return out
}
