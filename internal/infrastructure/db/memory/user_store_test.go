package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

func newUser(email string, role domain.Role) *domain.User {
	return &domain.User{
		Email:        email,
		FullName:     "Test User",
		PasswordHash: "$2a$04$fakehash",
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserStore_CreateAndGet(t *testing.T) {
	store := NewUserStore()

	created, err := store.CreateIfAbsent(context.Background(), newUser("a@example.com", domain.RoleViewer))
	if err != nil {
		t.Fatalf("CreateIfAbsent returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected ID 1, got %d", created.ID)
	}

	got, err := store.GetByEmail(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if got.Email != "a@example.com" || got.Role != domain.RoleViewer {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserStore_GetByEmail_Missing(t *testing.T) {
	store := NewUserStore()
	if _, err := store.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserStore_CreateIfAbsent_Duplicate(t *testing.T) {
	store := NewUserStore()

	if _, err := store.CreateIfAbsent(context.Background(), newUser("b@example.com", domain.RoleViewer)); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := store.CreateIfAbsent(context.Background(), newUser("b@example.com", domain.RoleAdmin)); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserStore_CreateIfAbsent_ConcurrentSameEmail(t *testing.T) {
	store := NewUserStore()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.CreateIfAbsent(context.Background(), newUser("race@example.com", domain.RoleViewer))
		}(i)
	}
	wg.Wait()

	var winners int
	for _, err := range errs {
		if err == nil {
			winners++
		} else if !errors.Is(err, domain.ErrDuplicateEmail) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one successful create, got %d", winners)
	}
}

func TestUserStore_UpdateLastLogin(t *testing.T) {
	store := NewUserStore()
	_, _ = store.CreateIfAbsent(context.Background(), newUser("c@example.com", domain.RoleViewer))

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if err := store.UpdateLastLogin(context.Background(), "c@example.com", at); err != nil {
		t.Fatalf("UpdateLastLogin returned error: %v", err)
	}

	got, _ := store.GetByEmail(context.Background(), "c@example.com")
	if got.LastLoginAt == nil || !got.LastLoginAt.Equal(at) {
		t.Fatalf("expected last login %v, got %v", at, got.LastLoginAt)
	}

	if err := store.UpdateLastLogin(context.Background(), "nobody@example.com", at); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserStore_List_OrderedByID(t *testing.T) {
	store := NewUserStore()
	for i := 0; i < 5; i++ {
		_, _ = store.CreateIfAbsent(context.Background(), newUser(fmt.Sprintf("u%d@example.com", i), domain.RoleViewer))
	}

	users, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 5 {
		t.Fatalf("expected 5 users, got %d", len(users))
	}
	for i, u := range users {
		if u.ID != int64(i+1) {
			t.Fatalf("expected ascending IDs, got %v at index %d", u.ID, i)
		}
	}
}

func TestUserStore_ReturnsClones(t *testing.T) {
	store := NewUserStore()
	_, _ = store.CreateIfAbsent(context.Background(), newUser("d@example.com", domain.RoleViewer))

	got, _ := store.GetByEmail(context.Background(), "d@example.com")
	got.Role = domain.RoleAdmin

	again, _ := store.GetByEmail(context.Background(), "d@example.com")
	if again.Role != domain.RoleViewer {
		t.Fatalf("mutating a returned user must not affect the store")
	}
}

type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func TestSeedDemoUsers(t *testing.T) {
	store := NewUserStore()

	if err := SeedDemoUsers(context.Background(), store, stubHasher{}); err != nil {
		t.Fatalf("SeedDemoUsers returned error: %v", err)
	}

	want := map[string]domain.Role{
		"admin@example.com":   domain.RoleAdmin,
		"manager@example.com": domain.RoleManager,
		"analyst@example.com": domain.RoleAnalyst,
	}
	for email, role := range want {
		user, err := store.GetByEmail(context.Background(), email)
		if err != nil {
			t.Fatalf("seeded user %s missing: %v", email, err)
		}
		if user.Role != role {
			t.Fatalf("%s: expected role %s, got %s", email, role, user.Role)
		}
	}

	// Re-seeding must be a no-op, not an error.
	if err := SeedDemoUsers(context.Background(), store, stubHasher{}); err != nil {
		t.Fatalf("re-seeding returned error: %v", err)
	}
	users, _ := store.List(context.Background())
	if len(users) != 3 {
		t.Fatalf("expected 3 users after re-seed, got %d", len(users))
	}
}
