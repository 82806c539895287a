package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/quantity262/Myweb/internal/apperr"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	tok, err := tm.Issue(42, "alice", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := tm.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, "alice")
	}
	if claims.Role != "user" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "user")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", -1*time.Second)

	tok, err := tm.Issue(1, "u1", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = tm.Verify(tok)
	if !errors.Is(err, apperr.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", time.Hour).Issue(2, "u2", "admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenManager("wrong-secret", time.Hour).Verify(tok)
	if !errors.Is(err, apperr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("k", time.Hour).Verify("not.a.jwt")
	if !errors.Is(err, apperr.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
