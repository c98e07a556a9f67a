package repository

import "context"

// SnapshotStore persists one opaque snapshot per store namespace so cached
// state survives a process restart.
type SnapshotStore interface {
	// Save overwrites the snapshot for the namespace.
	Save(ctx context.Context, namespace string, data []byte) error

	// Load returns the last snapshot for the namespace. The boolean is false
	// when no snapshot has ever been written; that is not an error.
	Load(ctx context.Context, namespace string) ([]byte, bool, error)
}
