// Package lifecycle defines timing values shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as DB pings and server shutdown.
const DefaultTimeout = 10 * time.Second
