package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-05-01")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-05-01" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatClock(t *testing.T) {
	value := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	if got := FormatClock(value); got != "15:00" {
		t.Fatalf("expected 15:00, got %s", got)
	}
}

func TestFormatStamp(t *testing.T) {
	value := time.Date(2024, 5, 1, 15, 4, 5, 0, time.UTC)
	if got := FormatStamp(value); got != "20240501_150405" {
		t.Fatalf("expected filename stamp, got %s", got)
	}
}
