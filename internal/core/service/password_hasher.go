package service

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is used when no explicit cost is configured. Raising it
// slows offline brute-force attacks at the price of CPU per login.
const DefaultBcryptCost = 12

// PasswordHasher wraps bcrypt with a tunable cost factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given cost. Costs outside
// bcrypt's supported range fall back to DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted digest of plaintext. Each call salts independently,
// so the same plaintext yields different digests.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Malformed digests verify
// as false rather than erroring; bcrypt's own comparison is constant time.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
