package memory

import (
	"log/slog"
	"sync"

	"squareone/internal/domain/entity"
	"squareone/internal/domain/repository"

	"go.uber.org/fx"
)

// authState is the persisted shape of the auth store: the operator identity
// singleton plus the end-user collection.
type authState struct {
	Admin *entity.Admin `json:"admin,omitempty"`
	Users []entity.User `json:"users"`
}

type authStore struct {
	mu sync.RWMutex

	state authState
	persister
}

// AuthStoreParams holds dependencies for the auth store, injected by Fx.
type AuthStoreParams struct {
	fx.In

	Snapshots repository.SnapshotStore
	Logger    *slog.Logger
}

// NewAuthStore builds the auth mirror and restores its last snapshot.
func NewAuthStore(params AuthStoreParams) repository.AuthStore {
	store := &authStore{
		persister: persister{
			namespace: repository.NamespaceAuth,
			snapshots: params.Snapshots,
			logger:    params.Logger,
		},
	}
	store.restore(&store.state)

	return store
}

func (s *authStore) SetAdmin(admin entity.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Admin = &admin
	s.persist(s.state)
}

func (s *authStore) Admin() (entity.Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Admin == nil {
		return entity.Admin{}, false
	}

	return *s.state.Admin, true
}

func (s *authStore) ReplaceUsers(users []entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Users = make([]entity.User, len(users))
	copy(s.state.Users, users)
	s.persist(s.state)
}

func (s *authStore) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.User, len(s.state.Users))
	copy(out, s.state.Users)

	return out
}
