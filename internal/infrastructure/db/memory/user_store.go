// Package memory provides the reference in-memory UserStore. It backs
// development deployments and tests; production points at MongoDB instead.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// UserStore keeps user records in a mutex-guarded map keyed by email.
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:  make(map[string]*domain.User),
		nextID: 1,
	}
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// CreateIfAbsent inserts the user unless the email is taken. The existence
// check and the insert happen under one lock, so concurrent registrations
// with the same email produce exactly one record.
func (s *UserStore) CreateIfAbsent(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}

	stored := cloneUser(user)
	stored.ID = s.nextID
	s.nextID++
	s.users[stored.Email] = stored

	return cloneUser(stored), nil
}

func (s *UserStore) UpdateLastLogin(_ context.Context, email string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	ts := at
	user.LastLoginAt = &ts
	return nil
}

func (s *UserStore) List(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.LastLoginAt != nil {
		ts := *u.LastLoginAt
		clone.LastLoginAt = &ts
	}
	return &clone
}
