package domain

import "time"

// DisplayTimeLayout is the fixed format used for timestamps in reports.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses an ISO-8601 timestamp with a trailing Z (RFC 3339)
// into a UTC instant. Callers on sorting or comparison paths must skip
// records whose timestamps fail to parse rather than letting them sort as
// the zero time.
func ParseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatTimestamp renders an instant as "YYYY-MM-DD HH:MM:SS".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(DisplayTimeLayout)
}

// FormatTimestampString reformats a raw ISO-8601 string for display.
// Unparseable input is returned unmodified; this is acceptable only on
// display paths where the value is never compared or sorted.
func FormatTimestampString(ts string) string {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	return FormatTimestamp(t)
}
