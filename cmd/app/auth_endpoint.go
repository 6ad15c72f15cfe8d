package main

import (
	"net/http"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/config"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/session"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// registerHandler creates the account and establishes a session in the
// same request.
func registerHandler(authSvc *services.AuthService, sessions session.Store, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		user, err := authSvc.Register(c.Request().Context(), services.RegisterInput{
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
			Role:      model.Role(req.Role),
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			return httpError(c, err)
		}

		sid, err := sessions.Create(c.Request().Context(), user.ID)
		if err != nil {
			return httpError(c, err)
		}
		c.SetCookie(session.NewCookie(sid, cfg.IsProduction()))

		return c.JSON(http.StatusCreated, user)
	}
}

func loginHandler(authSvc *services.AuthService, sessions session.Store, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		user, err := authSvc.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return httpError(c, err)
		}

		sid, err := sessions.Create(c.Request().Context(), user.ID)
		if err != nil {
			return httpError(c, err)
		}
		c.SetCookie(session.NewCookie(sid, cfg.IsProduction()))

		return c.JSON(http.StatusOK, user)
	}
}

func logoutHandler(sessions session.Store, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
			if err := sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
				return httpError(c, err)
			}
		}
		c.SetCookie(session.ExpiredCookie(cfg.IsProduction()))
		return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
	}
}

// currentUserHandler returns the sanitized principal for the session.
func currentUserHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, middleware.GetPrincipal(c))
	}
}

func verifyEmailHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			Token string `json:"token"`
		}
		if err := c.Bind(&req); err != nil || req.Token == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
		}
		if err := authSvc.VerifyEmail(c.Request().Context(), req.Token); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "email verified"})
	}
}

// forgotPasswordHandler answers identically whether or not the address has
// an account, so the endpoint cannot be used to enumerate users.
func forgotPasswordHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		authSvc.ForgotPassword(c.Request().Context(), req.Email)
		return c.JSON(http.StatusOK, echo.Map{
			"message": "if the email exists, a reset link has been sent",
		})
	}
}

func resetPasswordHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			Token       string `json:"token"`
			NewPassword string `json:"new_password"`
		}
		if err := c.Bind(&req); err != nil || req.Token == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
		}
		if err := authSvc.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, sessions session.Store, cfg *config.Config) {
	// public
	g.POST("/register", registerHandler(authSvc, sessions, cfg))
	g.POST("/login", loginHandler(authSvc, sessions, cfg))
	g.POST("/verify-email", verifyEmailHandler(authSvc))
	g.POST("/forgot-password", forgotPasswordHandler(authSvc))
	g.POST("/reset-password", resetPasswordHandler(authSvc))

	// session required
	g.POST("/logout", logoutHandler(sessions, cfg), middleware.RequireAuth)
	g.GET("/user", currentUserHandler(), middleware.RequireAuth)
}
