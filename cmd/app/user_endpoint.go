package main

import (
	"net/http"
	"strconv"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

func registerUserRoutes(g *echo.Group, us *services.UserService) {
	g.GET("/users", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		list, err := us.ListUsers(c.Request().Context(), limit, offset)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}, middleware.RequireRole(model.RoleAdmin))

	g.GET("/users/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		u, err := us.GetUser(c.Request().Context(), middleware.GetPrincipal(c), id)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, u)
	}, middleware.RequireAuth)

	g.PUT("/users/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		var req struct {
			FirstName   string `json:"first_name"`
			LastName    string `json:"last_name"`
			Bio         string `json:"bio,omitempty"`
			Institution string `json:"institution,omitempty"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		u := &model.User{
			ID:          id,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Bio:         req.Bio,
			Institution: req.Institution,
		}
		if err := us.UpdateProfile(c.Request().Context(), middleware.GetPrincipal(c), u); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
	}, middleware.RequireAuth)
}
