// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) managed by
// the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
