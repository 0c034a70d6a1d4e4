package dates

import (
	"testing"
	"time"
)

func TestFormat_UsesLocalFields(t *testing.T) {
	// 23:30 on Dec 31 in a UTC+8 zone is already Jan 1 in UTC; the formatted
	// date must stay on the local calendar day.
	loc := time.FixedZone("UTC+8", 8*60*60)
	d := time.Date(2025, time.December, 31, 23, 30, 0, 0, loc)
	if got := Format(d); got != "2025-12-31" {
		t.Fatalf("expected 2025-12-31, got %q", got)
	}
}

func TestFormat_PadsSingleDigits(t *testing.T) {
	d := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := Format(d); got != "2026-03-05" {
		t.Fatalf("expected 2026-03-05, got %q", got)
	}
}

func TestIsToday(t *testing.T) {
	if !IsToday(Today()) {
		t.Fatalf("Today must be today")
	}
	if IsToday("1999-01-01") {
		t.Fatalf("1999-01-01 is not today")
	}
}
