// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to return quickly from Run and perform their
// work in internally spawned goroutines, stopping them again on Stop.
type Worker interface {
	Run()
	Stop()
}

// RefreshTarget is the surface the periodic refresh job needs from the
// list controller.
type RefreshTarget interface {
	Refresh(ctx context.Context) error
	SearchActive() bool
	Enabled() bool
}
