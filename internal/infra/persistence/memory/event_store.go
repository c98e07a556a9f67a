package memory

import (
	"log/slog"
	"sync"

	"squareone/internal/domain/entity"
	"squareone/internal/domain/repository"

	"go.uber.org/fx"
)

type eventStore struct {
	mu sync.RWMutex

	events collection[entity.Event]
	persister
}

// EventStoreParams holds dependencies for the event store, injected by Fx.
type EventStoreParams struct {
	fx.In

	Snapshots repository.SnapshotStore
	Logger    *slog.Logger
}

// NewEventStore builds the event mirror and restores its last snapshot.
func NewEventStore(params EventStoreParams) repository.EventStore {
	store := &eventStore{
		events: collection[entity.Event]{idOf: func(e entity.Event) string { return e.ID }},
		persister: persister{
			namespace: repository.NamespaceEvent,
			snapshots: params.Snapshots,
			logger:    params.Logger,
		},
	}
	store.restore(&store.events.items)

	return store
}

func (s *eventStore) ReplaceAll(events []entity.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events.replaceAll(events)
	s.persist(s.events.items)
}

func (s *eventStore) Add(event entity.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events.add(event)
	s.persist(s.events.items)
}

func (s *eventStore) Update(id string, event entity.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events.update(id, event)
	s.persist(s.events.items)
}

func (s *eventStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events.remove(id)
	s.persist(s.events.items)
}

func (s *eventStore) GetByID(id string) (entity.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.events.byID(id)
}

func (s *eventStore) All() []entity.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.events.all()
}
