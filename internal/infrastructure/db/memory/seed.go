package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// Hasher is the password hashing capability SeedDemoUsers needs.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

// demoPassword is the shared credential for seeded demo accounts. These
// accounts exist only for local development; seeding is off by default.
const demoPassword = "secret"

var demoUsers = []struct {
	email    string
	fullName string
	role     domain.Role
}{
	{"admin@example.com", "Admin User", domain.RoleAdmin},
	{"manager@example.com", "Manager User", domain.RoleManager},
	{"analyst@example.com", "Data Analyst", domain.RoleAnalyst},
}

// SeedDemoUsers loads the demo accounts into the store. Existing emails are
// left untouched.
func SeedDemoUsers(ctx context.Context, store *UserStore, hasher Hasher) error {
	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	now := time.Now().UTC()
	for _, du := range demoUsers {
		_, err := store.CreateIfAbsent(ctx, &domain.User{
			Email:        du.email,
			FullName:     du.fullName,
			PasswordHash: hash,
			Role:         du.role,
			IsActive:     true,
			CreatedAt:    now,
		})
		if err != nil && err != domain.ErrDuplicateEmail {
			return fmt.Errorf("seed users: %w", err)
		}
	}
	return nil
}
