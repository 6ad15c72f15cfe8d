package middleware

import (
	"context"
	"net/http"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/session"

	"github.com/labstack/echo/v4"
)

// PrincipalLookup resolves a stored principal id back to the full user
// record. The digest is stripped before the user is attached to the request.
type PrincipalLookup interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

const principalKey = "principal"

// SessionAuth resolves the session cookie and attaches the sanitized user to
// the context. A missing, expired or dangling session leaves the request
// unauthenticated; RequireAuth and RequireRole decide whether that matters.
func SessionAuth(store session.Store, users PrincipalLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			userID, err := store.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return next(c)
			}
			u, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				// user deleted since login; treat as unauthenticated
				return next(c)
			}
			c.Set(principalKey, u.Sanitize())
			return next(c)
		}
	}
}

// GetPrincipal returns the authenticated user attached by SessionAuth, or
// nil for an unauthenticated request.
func GetPrincipal(c echo.Context) *model.User {
	v := c.Get(principalKey)
	if v == nil {
		return nil
	}
	if u, ok := v.(*model.User); ok {
		return u
	}
	return nil
}

// RequireAuth rejects requests that carry no resolved principal.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetPrincipal(c) == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}
		return next(c)
	}
}

// RequireRole admits only the listed roles. Every route names its full
// allow-list; admin carries no implicit access and must be listed wherever
// it is intended. Unauthenticated requests fail with 401 before the role
// check runs.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := GetPrincipal(c)
			if u == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
			}
			if !allowed[u.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}
