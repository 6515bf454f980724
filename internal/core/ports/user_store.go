package ports

import (
	"context"
	"time"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// UserStore defines the interface for user record persistence.
type UserStore interface {
	// GetByEmail returns the user keyed by email, or domain.ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateIfAbsent atomically inserts the user unless the email is already
	// taken, in which case it returns domain.ErrDuplicateEmail. The returned
	// user carries the store-assigned ID.
	CreateIfAbsent(ctx context.Context, user *domain.User) (*domain.User, error)

	// UpdateLastLogin stamps the user's last successful login. Lost updates
	// under concurrency are acceptable; the timestamp is advisory.
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error

	// List returns all users ordered by ID.
	List(ctx context.Context) ([]*domain.User, error)
}
