package api

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/e2t/leaderboard/internal/schedule"
)

// DemoSnapshot fabricates a deterministic /data/latest payload so the
// dashboard can run and be demoed without a live API.
func DemoSnapshot(now time.Time) *Snapshot {
	f := gofakeit.New(42)

	countries := []string{
		"USA", "United Kingdom", "Germany", "France", "UAE",
		"South Korea", "Brazil", "India", "Canada", "Australia",
		"Nigeria", "Vietnam",
	}
	plans := []float64{25000, 50000, 100000, 200000}

	account := func() Account {
		plan := plans[f.Number(0, len(plans)-1)]
		balance := plan * f.Float64Range(0.82, 1.3)
		equity := balance + f.Float64Range(-1500, 1500)
		pnl := f.Float64Range(-900, 900)
		return Account{
			AccountID:    fmt.Sprintf("%d", f.Number(100000, 999999)),
			CustomerName: f.Name(),
			Country:      f.RandomString(countries),
			Plan:         &plan,
			Balance:      &balance,
			Equity:       &equity,
			OpenPnL:      &pnl,
			UpdatedAt:    now.Add(-time.Duration(f.Number(1, 110)) * time.Minute).UTC().Format(time.RFC3339),
		}
	}

	// Active comes pre-sorted by pct_change descending, nulls last,
	// exactly as the API serves it.
	active := make([]Account, 0, 25)
	pct := f.Float64Range(9, 14)
	for i := 0; i < 25; i++ {
		a := account()
		if i < 23 {
			v := pct
			a.PctChange = &v
			pct -= f.Float64Range(0.1, 1.4)
		}
		active = append(active, a)
	}

	// A few holes so the display path for missing data gets exercised.
	active[2].CustomerName = ""
	active[2].Balance = nil
	active[4].Country = "Atlantis"

	blown := make([]Account, 0, 5)
	for i := 0; i < 5; i++ {
		a := account()
		zero := 0.0
		a.Equity = &zero
		blown = append(blown, a)
	}

	purchases := make([]Account, 0, 4)
	for i := 0; i < 4; i++ {
		a := account()
		a.GroupName = "Purchases-API"
		purchases = append(purchases, a)
	}

	plan50k := make([]Account, 0, 6)
	for i := 0; i < 6; i++ {
		a := account()
		v := 50000.0
		a.Plan = &v
		plan50k = append(plan50k, a)
	}

	return &Snapshot{
		TS:         now.UTC().Format(time.RFC3339),
		BaselineAt: schedule.LastReset(now).UTC().Format(time.RFC3339),
		Counts: Counts{
			Active:    len(active),
			Blown:     len(blown),
			Purchases: len(purchases),
			Plan50K:   len(plan50k),
			Baseline:  len(active) + len(blown) + len(purchases) + len(plan50k),
		},
		Active:    active,
		Blown:     blown,
		Purchases: purchases,
		Plan50K:   plan50k,
	}
}
