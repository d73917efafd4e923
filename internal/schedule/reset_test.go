package schedule

import (
	"testing"
	"time"
)

func TestWeekAnchor(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name:     "monday morning",
			now:      time.Date(2026, 8, 17, 11, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "monday afternoon stays in same week",
			now:      time.Date(2026, 8, 17, 13, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "wednesday",
			now:      time.Date(2026, 8, 19, 15, 30, 0, 0, time.UTC),
			expected: time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday night",
			now:      time.Date(2026, 8, 23, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "week spanning a month boundary",
			now:      time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC), // Wednesday July 1st
			expected: time.Date(2026, 6, 29, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "week spanning a year boundary",
			now:      time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC), // Friday January 1st
			expected: time.Date(2026, 12, 28, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekAnchor(tt.now)
			if !got.Equal(tt.expected) {
				t.Errorf("WeekAnchor(%v) = %v, want %v", tt.now, got, tt.expected)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("WeekAnchor(%v) fell on %v", tt.now, got.Weekday())
			}
			if again := WeekAnchor(got); !again.Equal(got) {
				t.Errorf("WeekAnchor not idempotent: %v -> %v", got, again)
			}
		})
	}
}

func TestWeekAnchorKeepsLocation(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2026, 8, 20, 8, 0, 0, 0, loc) // Thursday

	got := WeekAnchor(now)

	if got.Location() != loc {
		t.Errorf("WeekAnchor location = %v, want %v", got.Location(), loc)
	}
	if got.Hour() != 12 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("WeekAnchor should land on local noon exactly, got %v", got)
	}
}

func TestNextReset(t *testing.T) {
	monday := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name:     "monday 11:00 counts down to the same day",
			now:      time.Date(2026, 8, 17, 11, 0, 0, 0, time.UTC),
			expected: monday,
		},
		{
			name:     "monday 13:00 counts down to next week",
			now:      time.Date(2026, 8, 17, 13, 0, 0, 0, time.UTC),
			expected: monday.AddDate(0, 0, 7),
		},
		{
			name:     "exactly noon rolls a full week forward",
			now:      monday,
			expected: monday.AddDate(0, 0, 7),
		},
		{
			name:     "one nanosecond before noon stays on this week",
			now:      monday.Add(-time.Nanosecond),
			expected: monday,
		},
		{
			name:     "thursday",
			now:      time.Date(2026, 8, 20, 23, 0, 0, 0, time.UTC),
			expected: monday.AddDate(0, 0, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReset(tt.now)
			if !got.Equal(tt.expected) {
				t.Errorf("NextReset(%v) = %v, want %v", tt.now, got, tt.expected)
			}
		})
	}

	t.Run("always strictly in the future", func(t *testing.T) {
		now := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 7*24; i++ {
			if got := NextReset(now); !got.After(now) {
				t.Fatalf("NextReset(%v) = %v is not in the future", now, got)
			}
			now = now.Add(time.Hour)
		}
	})
}

func TestLastReset(t *testing.T) {
	monday := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name:     "wednesday looks back to this week",
			now:      time.Date(2026, 8, 19, 15, 0, 0, 0, time.UTC),
			expected: monday,
		},
		{
			name:     "monday morning looks back to last week",
			now:      time.Date(2026, 8, 17, 11, 0, 0, 0, time.UTC),
			expected: monday.AddDate(0, 0, -7),
		},
		{
			name:     "exactly noon is its own reset",
			now:      monday,
			expected: monday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastReset(tt.now)
			if !got.Equal(tt.expected) {
				t.Errorf("LastReset(%v) = %v, want %v", tt.now, got, tt.expected)
			}
		})
	}
}

func TestUntil(t *testing.T) {
	target := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected Remaining
	}{
		{
			name:     "days hours minutes seconds",
			now:      target.Add(-(2*24*time.Hour + 3*time.Hour + 12*time.Minute + 44*time.Second)),
			expected: Remaining{Days: 2, Hours: 3, Minutes: 12, Seconds: 44},
		},
		{
			name:     "exactly at target",
			now:      target,
			expected: Remaining{},
		},
		{
			name:     "past target clamps to zero",
			now:      target.Add(90 * time.Minute),
			expected: Remaining{},
		},
		{
			name:     "sub-second remainder drops to zero",
			now:      target.Add(-500 * time.Millisecond),
			expected: Remaining{},
		},
		{
			name:     "one second",
			now:      target.Add(-time.Second),
			expected: Remaining{Seconds: 1},
		},
		{
			name:     "full week",
			now:      target.AddDate(0, 0, -7),
			expected: Remaining{Days: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Until(target, tt.now); got != tt.expected {
				t.Errorf("Until(%v, %v) = %+v, want %+v", target, tt.now, got, tt.expected)
			}
		})
	}

	t.Run("fields stay in range and shrink monotonically", func(t *testing.T) {
		now := target.AddDate(0, 0, -7)
		prev := 7 * 24 * 3600
		for i := 0; i < 7*24*60; i++ {
			r := Until(target, now)
			if r.Seconds < 0 || r.Seconds > 59 || r.Minutes < 0 || r.Minutes > 59 ||
				r.Hours < 0 || r.Hours > 23 || r.Days < 0 {
				t.Fatalf("Until(%v) produced out-of-range fields %+v", now, r)
			}
			total := ((r.Days*24+r.Hours)*60+r.Minutes)*60 + r.Seconds
			if total > prev {
				t.Fatalf("Until grew from %d to %d seconds at %v", prev, total, now)
			}
			prev = total
			now = now.Add(time.Minute)
		}
	})
}

func TestRemainingString(t *testing.T) {
	tests := []struct {
		name     string
		r        Remaining
		expected string
	}{
		{"with days", Remaining{Days: 2, Hours: 3, Minutes: 12, Seconds: 44}, "2d 03:12:44"},
		{"under a day", Remaining{Hours: 3, Minutes: 12, Seconds: 44}, "03:12:44"},
		{"zero", Remaining{}, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResetAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	t.Run("spring forward", func(t *testing.T) {
		// Clocks jump 02:00 -> 03:00 on Sunday 2026-03-08.
		now := time.Date(2026, 3, 8, 1, 0, 0, 0, loc)

		got := NextReset(now)
		if got.Weekday() != time.Monday || got.Hour() != 12 {
			t.Errorf("NextReset(%v) = %v, want Monday local noon", now, got)
		}
		if got.Day() != 9 {
			t.Errorf("NextReset(%v) landed on day %d, want 9", now, got.Day())
		}

		// The wall-clock gap reads 35h but the skipped hour makes it 34h
		// of real time, and that is what the countdown shows.
		if r := Until(got, now); r != (Remaining{Days: 1, Hours: 10}) {
			t.Errorf("Until across spring forward = %+v, want 1d 10h", r)
		}
	})

	t.Run("fall back", func(t *testing.T) {
		// Clocks repeat 01:00-02:00 on Sunday 2026-11-01.
		now := time.Date(2026, 11, 1, 0, 30, 0, 0, loc)

		got := NextReset(now)
		if got.Weekday() != time.Monday || got.Hour() != 12 {
			t.Errorf("NextReset(%v) = %v, want Monday local noon", now, got)
		}
		if got.Day() != 2 {
			t.Errorf("NextReset(%v) landed on day %d, want 2", now, got.Day())
		}
	})
}
