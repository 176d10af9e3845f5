// Package delivery defines the transports the application is served over.
package delivery

import "context"

// Delivery is a long-running transport started by main and stopped through fx.Lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
