package util

import (
	"fmt"
	"strings"
	"time"
)

// Layouts the API emits. The upstream serializes Python datetimes, which
// show up with or without fractional seconds and with "Z", "+00:00", or
// no zone at all depending on how the row was produced.
const (
	iso8601Naive      = "2006-01-02T15:04:05.999999"
	iso8601NaiveSpace = "2006-01-02 15:04:05.999999"
)

// ParseTimestamp parses an ISO-8601 timestamp string from the API.
// Zone-less timestamps are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(iso8601Naive, s, time.UTC)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(iso8601NaiveSpace, s, time.UTC)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("failed to parse %q as timestamp", s)
}
