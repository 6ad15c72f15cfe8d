package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type assignmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"` // RFC 3339
	MaxPoints   int    `json:"max_points"`
}

func (r *assignmentRequest) toModel() (*model.Assignment, error) {
	a := &model.Assignment{
		Title:       r.Title,
		Description: r.Description,
		MaxPoints:   r.MaxPoints,
	}
	if r.DueDate != "" {
		due, err := time.Parse(time.RFC3339, r.DueDate)
		if err != nil {
			return nil, err
		}
		a.DueDate = &due
	}
	return a, nil
}

func registerAssignmentRoutes(g *echo.Group, as *services.AssignmentService) {
	g.GET("/courses/:id/assignments", func(c echo.Context) error {
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

	g.GET("/assignments/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid assignment id"})
		}
		a, err := as.GetAssignment(c.Request().Context(), id)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, a)
	}, middleware.RequireAuth)

	g.POST("/courses/:id/assignments", func(c echo.Context) error {
		courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
		}
		req := new(assignmentRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		a, err := req.toModel()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "due_date must be RFC 3339"})
		}
		a.CourseID = courseID
		id, err := as.CreateAssignment(c.Request().Context(), middleware.GetPrincipal(c), a)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"assignment_id": id})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.PUT("/assignments/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid assignment id"})
		}
		req := new(assignmentRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		a, err := req.toModel()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "due_date must be RFC 3339"})
		}
		a.AssignmentID = id
		if err := as.UpdateAssignment(c.Request().Context(), middleware.GetPrincipal(c), a); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "assignment updated"})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.DELETE("/assignments/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid assignment id"})
		}
		if err := as.DeleteAssignment(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "assignment deleted"})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))
}
