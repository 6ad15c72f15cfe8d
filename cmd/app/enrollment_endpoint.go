package main

import (
	"net/http"
	"strconv"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

// registerEnrollmentRoutes mounts enrollment endpoints.
//
// Students enroll themselves and list their own enrollments; the course
// roster is reserved for the owning instructor and admins.
func registerEnrollmentRoutes(g *echo.Group, es *services.EnrollmentService) {
	g.POST("/enrollments", func(c echo.Context) error {
		var req struct {
			CourseID int64 `json:"course_id"`
		}
		if err := c.Bind(&req); err != nil || req.CourseID <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "course_id required"})
		}
		id, err := es.Enroll(c.Request().Context(), middleware.GetPrincipal(c), req.CourseID)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"enrollment_id": id})
	}, middleware.RequireRole(model.RoleStudent))

	g.GET("/enrollments", func(c echo.Context) error {
		list, err := es.ListMine(c.Request().Context(), middleware.GetPrincipal(c))
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}, middleware.RequireRole(model.RoleStudent))

	g.GET("/courses/:id/enrollments", func(c echo.Context) error {
		courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
		}
		list, err := es.Roster(c.Request().Context(), middleware.GetPrincipal(c), courseID)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.DELETE("/enrollments/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid enrollment id"})
		}
		if err := es.Unenroll(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "unenrolled"})
	}, middleware.RequireRole(model.RoleStudent, model.RoleAdmin))
}
