// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without blocking; the worker keeps
// running in its own goroutines until ctx is cancelled or Stop is called.
// Stop blocks until the worker has fully exited.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // start background processing
//	}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
