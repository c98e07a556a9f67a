// Package repository defines the contracts for the cached-state layer.
// Each store is a named, independently addressable mirror of one slice of
// the platform API. Stores are synchronous and cannot fail: lookups signal
// absence with a boolean, mutations on absent ids are no-ops, and all
// failure handling belongs to the calling layer.
package repository

import "squareone/internal/domain/entity"

// Store namespaces. Each store persists its snapshot under its own key so a
// restart restores the last-known cache without a re-fetch.
const (
	NamespaceAuth  = "auth-storage"
	NamespaceBrand = "brand-storage"
	NamespaceAd    = "ad-storage"
	NamespaceEvent = "event-storage"
)

// BrandStore mirrors the brand collection, including each brand's owned
// deals. Deal mutators locate the owning brand first and leave sibling deals
// and all other brand fields untouched.
type BrandStore interface {
	ReplaceAll(brands []entity.Brand)
	Add(brand entity.Brand)
	Update(id string, brand entity.Brand)
	Remove(id string)
	GetByID(id string) (entity.Brand, bool)
	// FindByName returns the first brand whose name matches exactly.
	FindByName(name string) (entity.Brand, bool)
	All() []entity.Brand

	AddDeal(brandID string, deal entity.Deal)
	UpdateDeal(brandID string, deal entity.Deal)
	RemoveDeal(brandID, dealID string)
}

// AdStore mirrors the top-level ad collection.
type AdStore interface {
	ReplaceAll(ads []entity.Ad)
	Add(ad entity.Ad)
	Update(id string, ad entity.Ad)
	Remove(id string)
	GetByID(id string) (entity.Ad, bool)
	All() []entity.Ad
}

// EventStore mirrors the top-level event collection.
type EventStore interface {
	ReplaceAll(events []entity.Event)
	Add(event entity.Event)
	Update(id string, event entity.Event)
	Remove(id string)
	GetByID(id string) (entity.Event, bool)
	All() []entity.Event
}

// AuthStore holds the operator identity singleton plus the end-user
// collection shown on the users screen.
type AuthStore interface {
	SetAdmin(admin entity.Admin)
	Admin() (entity.Admin, bool)
	ReplaceUsers(users []entity.User)
	Users() []entity.User
}
