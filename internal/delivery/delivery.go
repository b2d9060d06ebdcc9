// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP today). Serve blocks until the
// server stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
