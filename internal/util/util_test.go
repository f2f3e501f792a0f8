package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "zero", duration: 0, expected: "0m"},
		{name: "minutes only", duration: 45 * time.Minute, expected: "45m"},
		{name: "seconds round to minute", duration: 29*time.Minute + 40*time.Second, expected: "30m"},
		{name: "whole hours", duration: 2 * time.Hour, expected: "2h"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "multi day", duration: 26 * time.Hour, expected: "26h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
