// Package memory implements the entity stores as mutex-guarded in-memory
// mirrors with JSON snapshot write-back. A store never originates data: it
// holds whatever the last confirmed upstream state was, and a restart
// restores the last snapshot instead of re-fetching.
package memory

import (
	"context"
	"encoding/json"
	"log/slog"

	"squareone/internal/domain/repository"
)

// collection is the shared backing slice for one entity family. Callers
// must hold the owning store's lock; collection itself does no locking.
type collection[T any] struct {
	items []T
	idOf  func(T) string
}

func (c *collection[T]) replaceAll(items []T) {
	c.items = make([]T, len(items))
	copy(c.items, items)
}

func (c *collection[T]) add(item T) {
	// Append-only: duplicate ids produce duplicate entries. Identity is
	// owned upstream; the mirror does not merge.
	c.items = append(c.items, item)
}

func (c *collection[T]) update(id string, item T) {
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item

			return
		}
	}
	// Absent id: no-op, never an insert.
}

func (c *collection[T]) remove(id string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *collection[T]) byID(id string) (T, bool) {
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

func (c *collection[T]) all() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// persister writes a store's state to its snapshot namespace. Mutations are
// synchronous and cannot fail, so snapshot errors are logged and dropped.
type persister struct {
	namespace string
	snapshots repository.SnapshotStore
	logger    *slog.Logger
}

func (p *persister) persist(state any) {
	data, err := json.Marshal(state)
	if err != nil {
		p.logger.Warn("marshal store snapshot failed",
			slog.String("namespace", p.namespace),
			slog.Any("error", err))

		return
	}

	if err := p.snapshots.Save(context.Background(), p.namespace, data); err != nil {
		p.logger.Warn("write store snapshot failed",
			slog.String("namespace", p.namespace),
			slog.Any("error", err))
	}
}

// restore loads the last snapshot into state. A missing snapshot leaves
// state zero-valued; a corrupt one is logged and ignored.
func (p *persister) restore(state any) {
	data, ok, err := p.snapshots.Load(context.Background(), p.namespace)
	if err != nil {
		p.logger.Warn("read store snapshot failed",
			slog.String("namespace", p.namespace),
			slog.Any("error", err))

		return
	}
	if !ok {
		return
	}

	if err := json.Unmarshal(data, state); err != nil {
		p.logger.Warn("decode store snapshot failed",
			slog.String("namespace", p.namespace),
			slog.Any("error", err))
	}
}
