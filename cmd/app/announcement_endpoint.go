package main

import (
	"net/http"
	"strconv"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

func registerAnnouncementRoutes(g *echo.Group, as *services.AnnouncementService) {
	g.GET("/courses/:id/announcements", func(c echo.Context) error {
		courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
		}
		list, err := as.ListByCourse(c.Request().Context(), courseID)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}, middleware.RequireAuth)

	g.POST("/courses/:id/announcements", func(c echo.Context) error {
		courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
		}
		var req struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		a := &model.Announcement{
			CourseID: courseID,
			Title:    req.Title,
			Body:     req.Body,
		}
		id, err := as.Post(c.Request().Context(), middleware.GetPrincipal(c), a)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"announcement_id": id})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.DELETE("/announcements/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid announcement id"})
		}
		if err := as.Remove(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "announcement deleted"})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))
}
