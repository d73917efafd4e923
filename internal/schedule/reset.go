// Package schedule holds the competition's two clocks: the weekly reset
// the countdown targets, and the even-hour polling grid that paces API
// refreshes. All arithmetic is on wall-clock fields in the caller's
// location, so DST transitions stretch or shrink a week instead of
// moving its anchors.
package schedule

import (
	"fmt"
	"time"
)

// WeekAnchor returns Monday 12:00:00 of the week containing now, in
// now's location. Monday is the start of the week.
func WeekAnchor(now time.Time) time.Time {
	delta := (int(now.Weekday()) + 6) % 7 // Monday = 0
	return time.Date(now.Year(), now.Month(), now.Day()-delta, 12, 0, 0, 0, now.Location())
}

// NextReset returns the reset the countdown targets: this week's anchor
// while now is strictly before it, otherwise the following week's. An
// instant exactly on the anchor belongs to the finished week and rolls
// a full week forward.
func NextReset(now time.Time) time.Time {
	anchor := WeekAnchor(now)
	if now.Before(anchor) {
		return anchor
	}
	return anchor.AddDate(0, 0, 7)
}

// LastReset returns the most recent reset at or before now, the instant
// the current week's baseline was seeded.
func LastReset(now time.Time) time.Time {
	anchor := WeekAnchor(now)
	if now.Before(anchor) {
		return anchor.AddDate(0, 0, -7)
	}
	return anchor
}

// Remaining is a countdown split into display units.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Until decomposes the span from now to target into display units,
// clamping negative spans to zero. Sub-second remainders are dropped.
func Until(target, now time.Time) Remaining {
	d := target.Sub(now)
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return Remaining{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// String renders like "2d 03:12:44", dropping the day part when zero.
func (r Remaining) String() string {
	if r.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", r.Days, r.Hours, r.Minutes, r.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", r.Hours, r.Minutes, r.Seconds)
}
