package memory

import (
	"log/slog"
	"sync"

	"squareone/internal/domain/entity"
	"squareone/internal/domain/repository"

	"go.uber.org/fx"
)

type brandStore struct {
	mu sync.RWMutex

	brands collection[entity.Brand]
	persister
}

// BrandStoreParams holds dependencies for the brand store, injected by Fx.
type BrandStoreParams struct {
	fx.In

	Snapshots repository.SnapshotStore
	Logger    *slog.Logger
}

// cloneBrand copies the brand's slice fields so a value crossing the store
// boundary never aliases the store's backing arrays. Without this a held
// All() snapshot would observe later in-place deal mutations.
func cloneBrand(b entity.Brand) entity.Brand {
	if b.WorkingHours != nil {
		hours := make([]entity.WorkingHours, len(b.WorkingHours))
		copy(hours, b.WorkingHours)
		b.WorkingHours = hours
	}
	if b.Deals != nil {
		deals := make([]entity.Deal, len(b.Deals))
		for i, d := range b.Deals {
			deals[i] = cloneDeal(d)
		}
		b.Deals = deals
	}

	return b
}

func cloneDeal(d entity.Deal) entity.Deal {
	if d.Redemptions != nil {
		records := make([]entity.Redemption, len(d.Redemptions))
		copy(records, d.Redemptions)
		d.Redemptions = records
	}

	return d
}

func cloneBrands(brands []entity.Brand) []entity.Brand {
	out := make([]entity.Brand, len(brands))
	for i, b := range brands {
		out[i] = cloneBrand(b)
	}

	return out
}

// NewBrandStore builds the brand mirror and restores its last snapshot.
func NewBrandStore(params BrandStoreParams) repository.BrandStore {
	store := &brandStore{
		brands: collection[entity.Brand]{idOf: func(b entity.Brand) string { return b.ID }},
		persister: persister{
			namespace: repository.NamespaceBrand,
			snapshots: params.Snapshots,
			logger:    params.Logger,
		},
	}
	store.restore(&store.brands.items)

	return store
}

func (s *brandStore) ReplaceAll(brands []entity.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brands.replaceAll(cloneBrands(brands))
	s.persist(s.brands.items)
}

func (s *brandStore) Add(brand entity.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brands.add(cloneBrand(brand))
	s.persist(s.brands.items)
}

func (s *brandStore) Update(id string, brand entity.Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brands.update(id, cloneBrand(brand))
	s.persist(s.brands.items)
}

func (s *brandStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brands.remove(id)
	s.persist(s.brands.items)
}

func (s *brandStore) GetByID(id string) (entity.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	brand, ok := s.brands.byID(id)
	if !ok {
		return entity.Brand{}, false
	}

	return cloneBrand(brand), true
}

func (s *brandStore) FindByName(name string) (entity.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Names are treated as unique but upstream does not guarantee it:
	// first match wins.
	for _, brand := range s.brands.items {
		if brand.Name == name {
			return cloneBrand(brand), true
		}
	}

	return entity.Brand{}, false
}

func (s *brandStore) All() []entity.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneBrands(s.brands.items)
}

func (s *brandStore) AddDeal(brandID string, deal entity.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.brands.items {
		if s.brands.items[i].ID == brandID {
			s.brands.items[i].Deals = append(s.brands.items[i].Deals, cloneDeal(deal))
			s.persist(s.brands.items)

			return
		}
	}
}

func (s *brandStore) UpdateDeal(brandID string, deal entity.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.brands.items {
		if s.brands.items[i].ID != brandID {
			continue
		}
		for j := range s.brands.items[i].Deals {
			if s.brands.items[i].Deals[j].ID == deal.ID {
				s.brands.items[i].Deals[j] = cloneDeal(deal)
				s.persist(s.brands.items)

				return
			}
		}

		return
	}
}

func (s *brandStore) RemoveDeal(brandID, dealID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.brands.items {
		if s.brands.items[i].ID != brandID {
			continue
		}

		deals := s.brands.items[i].Deals
		kept := deals[:0]
		for _, d := range deals {
			if d.ID != dealID {
				kept = append(kept, d)
			}
		}
		s.brands.items[i].Deals = kept
		s.persist(s.brands.items)

		return
	}
}
