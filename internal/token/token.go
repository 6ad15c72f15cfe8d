// Package token issues and verifies the signed, time-limited tokens used by
// the out-of-band auth flows (email verification, password reset). Tokens are
// self-contained; nothing is persisted server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Purpose scopes a token to one flow. A token issued for one purpose never
// verifies for another.
type Purpose string

const (
	PurposeVerifyEmail   Purpose = "verify_email"
	PurposePasswordReset Purpose = "password_reset"
)

// Token lifetimes. Reset tokens live much shorter than verification tokens
// because a leaked reset token takes over the account outright.
const (
	VerifyEmailTTL   = 24 * time.Hour
	PasswordResetTTL = 1 * time.Hour
)

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// wrong purpose, malformed claims. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload for both flows.
type Claims struct {
	UserID  int64   `json:"uid"`
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a server-side HMAC secret.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue creates a signed token for the given user and purpose.
func (i *Issuer) Issue(userID int64, purpose Purpose, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "afrilearnhub",
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses the token and returns the subject user id. It fails with
// ErrInvalidToken unless the signature checks out, the token has not expired
// and the embedded purpose matches.
func (i *Issuer) Verify(tokenString string, purpose Purpose) (int64, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return 0, ErrInvalidToken
	}
	if claims.Purpose != purpose || claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
