package ports

import (
	"context"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string, role domain.Role) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier checks a bearer token and returns its subject claim. The
// subject identifies the user by email; callers must re-resolve the full
// record through a UserStore rather than trust anything else in the token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
