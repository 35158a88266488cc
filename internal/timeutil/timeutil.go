package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout defines the canonical kickoff time format (HH:MM, 24h).
const ClockLayout = "15:04"

// StampLayout is used for timestamped output filenames.
const StampLayout = "20060102_150405"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock formats a time as HH:MM in its current location.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatStamp formats a time for use in timestamped filenames.
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}
