package board

import (
	"sort"
	"strings"

	"github.com/e2t/leaderboard/internal/api"
	"github.com/e2t/leaderboard/internal/country"
	"github.com/e2t/leaderboard/internal/util"
)

// Row is one display-ready leaderboard line. All cells are final
// strings; values the upstream left null show as "—".
type Row struct {
	Rank      int // 1-based on the active board, 0 elsewhere
	AccountID string
	Trader    string
	Country   string
	Plan      string
	Balance   string
	Equity    string
	OpenPnL   string
	PctChange string
	Group     string
	Updated   string

	search string
}

// Sections holds the four tables of one snapshot, display-ready.
type Sections struct {
	Active    []Row
	Blown     []Row
	Purchases []Row
	Plan50K   []Row
}

// Build converts a snapshot into display rows. Active rows are sorted
// by percent change descending with missing values last (stable), then
// ranked 1..n. The other sections keep the API's order, most recently
// updated first.
func Build(snap *api.Snapshot) Sections {
	active := make([]api.Account, len(snap.Active))
	copy(active, snap.Active)
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i].PctChange, active[j].PctChange
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})

	s := Sections{
		Active:    make([]Row, 0, len(active)),
		Blown:     make([]Row, 0, len(snap.Blown)),
		Purchases: make([]Row, 0, len(snap.Purchases)),
		Plan50K:   make([]Row, 0, len(snap.Plan50K)),
	}
	for i, a := range active {
		r := rowFrom(a)
		r.Rank = i + 1
		s.Active = append(s.Active, r)
	}
	for _, a := range snap.Blown {
		s.Blown = append(s.Blown, rowFrom(a))
	}
	for _, a := range snap.Purchases {
		s.Purchases = append(s.Purchases, rowFrom(a))
	}
	for _, a := range snap.Plan50K {
		s.Plan50K = append(s.Plan50K, rowFrom(a))
	}
	return s
}

// Filter returns the rows whose trader name, account id, or country
// contains q, case-insensitively. An empty query returns rows
// unchanged.
func Filter(rows []Row, q string) []Row {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(r.search, q) {
			out = append(out, r)
		}
	}
	return out
}

func rowFrom(a api.Account) Row {
	r := Row{
		AccountID: dash(a.AccountID),
		Trader:    dash(a.CustomerName),
		Country:   flagged(a.Country),
		Plan:      money(a.Plan),
		Balance:   money(a.Balance),
		Equity:    money(a.Equity),
		OpenPnL:   money(a.OpenPnL),
		PctChange: percent(a.PctChange),
		Group:     dash(a.GroupName),
		Updated:   clock(a.UpdatedAt),
	}
	r.search = strings.ToLower(a.CustomerName + " " + a.AccountID + " " + a.Country)
	return r
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func money(v *float64) string {
	if v == nil {
		return "—"
	}
	return util.FormatMoney(*v)
}

func percent(v *float64) string {
	if v == nil {
		return "—"
	}
	return util.FormatPercent(*v)
}

// flagged prefixes the country with its flag when the name resolves.
func flagged(name string) string {
	if strings.TrimSpace(name) == "" {
		return "—"
	}
	if flag, ok := country.Flag(name); ok {
		return flag + " " + name
	}
	return name
}

// clock shows the row's update instant as HH:MM in the zone the API
// reported it in.
func clock(ts string) string {
	if ts == "" {
		return "—"
	}
	t, err := util.ParseTimestamp(ts)
	if err != nil {
		return "—"
	}
	return t.Format("15:04")
}
