package service

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/pulseboard/dashboard-api/internal/api/metrics"
	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	store  ports.UserStore
	hasher *PasswordHasher
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(store ports.UserStore, hasher *PasswordHasher, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, hasher: hasher, tokens: tokens, log: log}
}

// Register creates a user account and returns a freshly issued token for it.
// An empty role defaults to viewer.
//
// TODO: the request may carry any role, including admin, with no check
// against the caller's own privileges. Elevated roles should require an
// already-authenticated users:manage caller.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string, role domain.Role) (string, *domain.User, error) {
	if role == "" {
		role = domain.RoleViewer
	}
	if !role.Valid() {
		return "", nil, domain.ErrInvalidRole
	}
	if !passwordMeetsPolicy(password) {
		return "", nil, domain.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.store.CreateIfAbsent(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.Email)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(created.Role)).Inc()
	return token, created, nil
}

// Login verifies credentials and returns a token plus the resolved user.
// Unknown email and wrong password collapse into the same error so callers
// cannot probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrAccountDisabled
	}

	// Best effort: a failed timestamp write must not fail the login.
	now := time.Now().UTC()
	if err := s.store.UpdateLastLogin(ctx, user.Email, now); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("last login update failed")
	} else {
		user.LastLoginAt = &now
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// passwordMeetsPolicy reports whether pw is at least 8 characters and mixes
// upper-case, lower-case, and at least one digit.
func passwordMeetsPolicy(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
