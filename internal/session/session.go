// Package session implements the server-side session store behind the
// session cookie. The client only ever sees an opaque id; all state lives on
// the server with a fixed lifetime.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// CookieName is part of the observable contract with clients.
const CookieName = "afrilearn_session"

// TTL is fixed at creation time. There is no sliding expiration: activity
// does not extend a session.
const TTL = 24 * time.Hour

// ErrNoSession is returned when an id is unknown or expired. Callers treat
// it as "unauthenticated", never as a server error.
var ErrNoSession = errors.New("no such session")

// Store persists sessions. Implementations: MemoryStore and PostgresStore.
type Store interface {
	// Create registers a new session for the user and returns its opaque id.
	Create(ctx context.Context, userID int64) (string, error)
	// Resolve maps a session id to the owning user id, or ErrNoSession.
	Resolve(ctx context.Context, sessionID string) (int64, error)
	// Destroy removes a session. Destroying an unknown id is a no-op.
	Destroy(ctx context.Context, sessionID string) error
	// PurgeExpired removes sessions past their expiry.
	PurgeExpired(ctx context.Context) error
}

// NewCookie builds the session cookie. HttpOnly is always set; Secure only
// in production, or local development over plain HTTP breaks.
func NewCookie(sessionID string, production bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(TTL / time.Second),
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie returns a cookie that clears the session on the client.
func ExpiredCookie(production bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
	}
}
