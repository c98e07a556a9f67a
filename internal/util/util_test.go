package util

import (
	"testing"
	"time"
)

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{name: "three days ahead", end: now.Add(72 * time.Hour), expected: 3},
		{name: "partial day rounds up", end: now.Add(49 * time.Hour), expected: 3},
		{name: "same instant", end: now, expected: 0},
		{name: "expired yesterday", end: now.Add(-24 * time.Hour), expected: -1},
		{name: "expired partial day", end: now.Add(-36 * time.Hour), expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DaysRemaining(tt.end, now); got != tt.expected {
				t.Fatalf("DaysRemaining(%s) = %d, want %d", tt.end, got, tt.expected)
			}
		})
	}
}
