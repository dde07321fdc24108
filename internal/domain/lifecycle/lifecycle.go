// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of infrastructure
// components (database ping, HTTP server drain).
const DefaultTimeout = 10 * time.Second
