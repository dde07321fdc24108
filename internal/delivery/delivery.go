// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport started from main. Implementations
// block inside Serve until the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
