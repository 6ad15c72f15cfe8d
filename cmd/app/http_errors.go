package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/repository"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/token"

	"github.com/labstack/echo/v4"
)

// httpError maps service errors onto the response taxonomy. Unknown errors
// become a generic 500; internal detail never reaches the client.
func httpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, token.ErrInvalidToken):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired token"})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	case errors.Is(err, services.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "already exists"})
	default:
		slog.Error("request failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
