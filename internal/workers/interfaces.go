// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// several workers together and stops them with a shared context.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is the normal way to stop.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// Purger drops blacklist entries of tokens that expired before now.
type Purger interface {
	Purge(ctx context.Context, now time.Time) (int64, error)
}
