package api

import (
	"testing"
	"time"
)

func TestDemoSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 19, 15, 0, 0, 0, time.UTC) // Wednesday

	snap := DemoSnapshot(now)

	if snap.Counts.Active != len(snap.Active) {
		t.Errorf("Counts.Active = %d, want %d", snap.Counts.Active, len(snap.Active))
	}
	if snap.Counts.Baseline != len(snap.Active)+len(snap.Blown)+len(snap.Purchases)+len(snap.Plan50K) {
		t.Errorf("Counts.Baseline = %d does not cover all rows", snap.Counts.Baseline)
	}
	if len(snap.Active) == 0 || len(snap.Blown) == 0 || len(snap.Purchases) == 0 || len(snap.Plan50K) == 0 {
		t.Fatal("demo snapshot should populate every section")
	}

	// Active is sorted by pct descending with nulls at the end.
	sawNull := false
	var prev float64
	for i, a := range snap.Active {
		if a.PctChange == nil {
			sawNull = true
			continue
		}
		if sawNull {
			t.Fatalf("Active[%d] has pct after a null entry", i)
		}
		if i > 0 && *a.PctChange > prev {
			t.Errorf("Active[%d] pct %.2f > previous %.2f", i, *a.PctChange, prev)
		}
		prev = *a.PctChange
	}
	if !sawNull {
		t.Error("demo snapshot should include null pct rows")
	}

	for _, a := range snap.Purchases {
		if a.GroupName == "" {
			t.Error("purchase rows should carry a group name")
		}
	}
	for _, a := range snap.Plan50K {
		if a.Plan == nil || *a.Plan != 50000 {
			t.Errorf("plan50k row has plan %v, want 50000", a.Plan)
		}
	}

	// Seeded generator: two snapshots agree.
	again := DemoSnapshot(now)
	if again.Active[0].CustomerName != snap.Active[0].CustomerName {
		t.Error("DemoSnapshot should be deterministic for a fixed time")
	}
}
