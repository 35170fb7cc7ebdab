package util

import (
	"testing"
	"time"
)

func TestFormatStarted(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 30, 5, 0, time.Local)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"same day", start.Add(2 * time.Hour), "09:30:05"},
		{"next day", start.Add(24 * time.Hour), "2026-10-19 09:30"},
		{"same day last year", start.AddDate(1, 0, 0), "2026-10-19 09:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStarted(start.UnixMilli(), tt.now.UnixMilli()); got != tt.want {
				t.Errorf("FormatStarted() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		start, end int64
		want       string
	}{
		{0, 0, "0s"},
		{1_000, 73_400, "1m12s"},
		{0, 3_600_000, "1h0m0s"},
		{5_000, 1_000, "0s"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.start, tt.end); got != tt.want {
			t.Errorf("FormatElapsed(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
