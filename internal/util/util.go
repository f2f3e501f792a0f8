// Package util holds small formatting helpers for API responses.
package util

import (
	"fmt"
	"time"
)

// FormatDuration renders an event length the way organizers write it: "45m", "1h30m", "2h".
// Zero renders as "0m".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Minute)

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
