package main

import (
	"net/http"
	"strconv"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type courseRequest struct {
	InstructorID int64  `json:"instructor_id,omitempty"`
	Title        string `json:"title"`
	Code         string `json:"code"`
	Description  string `json:"description,omitempty"`
	Semester     string `json:"semester,omitempty"`
}

// registerCourseRoutes mounts the course endpoints.
//
// Reads need any session; creation is limited to instructors and admins,
// and updates/deletes additionally require ownership of the course.
func registerCourseRoutes(g *echo.Group, cs *services.CourseService) {
	g.GET("/courses", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		list, err := cs.ListCourses(c.Request().Context(), limit, offset)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}, middleware.RequireAuth)

	g.GET("/courses/teaching", func(c echo.Context) error {
		list, err := cs.ListTeaching(c.Request().Context(), middleware.GetPrincipal(c))
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.GET("/courses/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
		}
		course, err := cs.GetCourse(c.Request().Context(), id)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, course)
	}, middleware.RequireAuth)

	g.POST("/courses", func(c echo.Context) error {
		req := new(courseRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		course := &model.Course{
			InstructorID: req.InstructorID,
			Title:        req.Title,
			Code:         req.Code,
			Description:  req.Description,
			Semester:     req.Semester,
		}
		id, err := cs.CreateCourse(c.Request().Context(), middleware.GetPrincipal(c), course)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"course_id": id})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.PUT("/courses/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
		}
		req := new(courseRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		course := &model.Course{
			CourseID:    id,
			Title:       req.Title,
			Code:        req.Code,
			Description: req.Description,
			Semester:    req.Semester,
		}
		if err := cs.UpdateCourse(c.Request().Context(), middleware.GetPrincipal(c), course); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "course updated"})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.DELETE("/courses/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
		}
		if err := cs.DeleteCourse(c.Request().Context(), middleware.GetPrincipal(c), id); err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "course deleted"})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))
}
