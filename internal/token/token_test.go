package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("super-secret")

	tok, err := iss.Issue(42, PurposeVerifyEmail, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	userID, err := iss.Verify(tok, PurposeVerifyEmail)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", userID)
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("secret")
	tok, err := iss.Issue(1, PurposePasswordReset, -1*time.Minute)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = iss.Verify(tok, PurposePasswordReset)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer("right-secret").Issue(1, PurposeVerifyEmail, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewIssuer("wrong-secret").Verify(tok, PurposeVerifyEmail)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyWrongPurpose(t *testing.T) {
	t.Parallel()

	iss := NewIssuer("secret")
	tok, err := iss.Issue(7, PurposeVerifyEmail, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// a verification token must not redeem a password reset
	_, err = iss.Verify(tok, PurposePasswordReset)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong purpose, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("k").Verify("not.a.jwt", PurposeVerifyEmail)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}
