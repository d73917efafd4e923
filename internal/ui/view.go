package ui

import (
	"fmt"
	"strings"

	"github.com/e2t/leaderboard/internal/board"
	"github.com/e2t/leaderboard/internal/util"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	var b strings.Builder

	b.WriteString(headerView(m))
	b.WriteString("\n")
	b.WriteString(tabsView(m))
	b.WriteString("\n")
	b.WriteString(prizeView(m))
	b.WriteString("\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n")
	if m.Search.Focused() || m.Search.Value() != "" {
		b.WriteString(Current.Meta.Render(m.Search.View()))
		b.WriteString("\n")
	}
	b.WriteString(statusView(m))
	b.WriteString("\n")
	b.WriteString(Current.Help.Render(m.Help.View(m.Keys.ForSearch(m.Search.Focused()))))

	return b.String()
}

func headerView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("E2T Weekly Leaderboard"))
	if m.Version != "" {
		b.WriteString(Current.Meta.Render(m.Version))
	}
	b.WriteString("\n")

	b.WriteString(Current.Countdown.Render("Resets in " + m.Remaining.String()))
	meta := "next refresh " + m.NextPoll.Format("15:04")
	if m.Baseline != "" {
		meta += " • baseline " + m.Baseline
	}
	b.WriteString(Current.Meta.Render(meta))
	return b.String()
}

func tabsView(m Model) string {
	counts := [...]int{m.Counts.Active, m.Counts.Blown, m.Counts.Purchases, m.Counts.Plan50K}
	var b strings.Builder
	for s := sectionActive; s < sectionCount; s++ {
		label := fmt.Sprintf("%s (%d)", s, counts[s])
		if s == m.Section {
			b.WriteString(Current.TabActive.Render(label))
		} else {
			b.WriteString(Current.TabInactive.Render(label))
		}
	}
	return b.String()
}

// prizeView renders the weekly payout strip. Only the active board
// competes for prizes.
func prizeView(m Model) string {
	if m.Section != sectionActive {
		return ""
	}
	parts := make([]string, 0, 8)
	for _, p := range board.Prizes() {
		parts = append(parts, p.Place+" "+Current.PrizeAmount.Render(p.Reward))
	}
	return Current.Prize.Render("Prizes: " + strings.Join(parts, " • "))
}

func statusView(m Model) string {
	parts := make([]string, 0, 2)
	switch {
	case m.Refreshing:
		parts = append(parts, "refreshing")
	case m.LastUpdated.IsZero() && m.RefreshError == "":
		parts = append(parts, "waiting for first snapshot")
	}
	if !m.LastUpdated.IsZero() {
		parts = append(parts, "updated "+m.LastUpdated.Format("15:04:05"))
	}
	line := Current.Status.Render(strings.Join(parts, " • "))
	if m.RefreshError != "" {
		line += Current.Error.Render("refresh failed: " + m.RefreshError)
	}
	return line
}

// baselineLabel renders the snapshot's baseline timestamp for the
// header, in local time.
func baselineLabel(ts string) string {
	if ts == "" {
		return ""
	}
	t, err := util.ParseTimestamp(ts)
	if err != nil {
		return ""
	}
	return t.Local().Format("Mon 15:04")
}
