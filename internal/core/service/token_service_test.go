package service

import (
	"strings"
	"testing"
	"time"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, err := tokens.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("expected subject alice@example.com, got %q", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	// Negative TTL bypasses the constructor fallback to produce an already
	// expired token with the same signing key.
	expired := &TokenService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := expired.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := tokens.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, err := tokens.Issue("carol@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Corrupt one byte of the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three JWT segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := tokens.Verify(tampered); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue("dave@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, err := tokens.Issue("")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := tokens.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for empty subject, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := tokens.Verify(token); err != domain.ErrTokenInvalid {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestNewTokenService_TTLFallback(t *testing.T) {
	tokens := NewTokenService("test-secret", 0)
	if tokens.ttl != DefaultTokenTTL {
		t.Fatalf("expected fallback TTL %v, got %v", DefaultTokenTTL, tokens.ttl)
	}
}
