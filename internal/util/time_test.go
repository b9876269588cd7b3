package util

import (
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		now      time.Time
		expected string
	}{
		{"just started", start, "0d 0h 0m"},
		{"minutes only", start.Add(42 * time.Minute), "0d 0h 42m"},
		{"hours and minutes", start.Add(3*time.Hour + 5*time.Minute), "0d 3h 5m"},
		{"days", start.Add(49*time.Hour + 61*time.Minute), "2d 2h 1m"},
		{"clock behind start", start.Add(-time.Hour), "0d 0h 0m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatUptime(start, tc.now); got != tc.expected {
				t.Fatalf("got %q expected %q", got, tc.expected)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 110); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}

	long := make([]rune, 0, 120)
	for i := 0; i < 120; i++ {
		long = append(long, 'a')
	}
	got := TruncateString(string(long), 110)
	if len([]rune(got)) != 113 {
		t.Fatalf("expected 110 runes plus ellipsis, got %d", len([]rune(got)))
	}
}
