// Package lifecycle holds shutdown timings for deliveries.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of the API server.
const DefaultTimeout = 10 * time.Second
