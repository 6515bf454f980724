package domain

import "errors"

var (
	// ErrUnauthenticated covers every way a request can fail to prove an
	// identity: missing or malformed header, bad or expired token, or a
	// subject claim that resolves to no user. Callers never learn which.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrAccountDisabled is returned for users with is_active=false, even
	// when they present an otherwise valid token or password.
	ErrAccountDisabled = errors.New("account disabled")

	// ErrForbidden means the caller authenticated fine but their role lacks
	// the permission the operation requires.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrInvalidCredentials is the single login failure for both "no such
	// user" and "wrong password", so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrDuplicateEmail = errors.New("email already registered")
	ErrWeakPassword   = errors.New("password does not meet strength requirements")
	ErrInvalidRole    = errors.New("unknown role")

	// ErrUserNotFound is a store-level miss. It never crosses the API
	// boundary as-is; the auth layer folds it into ErrUnauthenticated or
	// ErrInvalidCredentials.
	ErrUserNotFound = errors.New("user not found")

	// Token verification failures. Both surface as ErrUnauthenticated.
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
