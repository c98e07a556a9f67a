package memory

import (
	"log/slog"
	"sync"

	"squareone/internal/domain/entity"
	"squareone/internal/domain/repository"

	"go.uber.org/fx"
)

type adStore struct {
	mu sync.RWMutex

	ads collection[entity.Ad]
	persister
}

// AdStoreParams holds dependencies for the ad store, injected by Fx.
type AdStoreParams struct {
	fx.In

	Snapshots repository.SnapshotStore
	Logger    *slog.Logger
}

// NewAdStore builds the ad mirror and restores its last snapshot.
func NewAdStore(params AdStoreParams) repository.AdStore {
	store := &adStore{
		ads: collection[entity.Ad]{idOf: func(a entity.Ad) string { return a.ID }},
		persister: persister{
			namespace: repository.NamespaceAd,
			snapshots: params.Snapshots,
			logger:    params.Logger,
		},
	}
	store.restore(&store.ads.items)

	return store
}

func (s *adStore) ReplaceAll(ads []entity.Ad) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ads.replaceAll(ads)
	s.persist(s.ads.items)
}

func (s *adStore) Add(ad entity.Ad) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ads.add(ad)
	s.persist(s.ads.items)
}

func (s *adStore) Update(id string, ad entity.Ad) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ads.update(id, ad)
	s.persist(s.ads.items)
}

func (s *adStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ads.remove(id)
	s.persist(s.ads.items)
}

func (s *adStore) GetByID(id string) (entity.Ad, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ads.byID(id)
}

func (s *adStore) All() []entity.Ad {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ads.all()
}
