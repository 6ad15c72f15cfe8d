package main

import (
	"net/http"
	"strconv"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/middleware"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

// registerSubmissionRoutes mounts submission, grading and attachment
// endpoints.
func registerSubmissionRoutes(g *echo.Group, ss *services.SubmissionService,
	gs *services.GradeService, attach *services.AttachmentService) {

	// re-submitting replaces the previous submission in place
	g.POST("/assignments/:id/submissions", func(c echo.Context) error {
		assignmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid assignment id"})
		}
		var req struct {
			Content       string `json:"content"`
			AttachmentKey string `json:"attachment_key,omitempty"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		sub := &model.Submission{
			AssignmentID:  assignmentID,
			Content:       req.Content,
			AttachmentKey: req.AttachmentKey,
		}
		id, err := ss.Submit(c.Request().Context(), middleware.GetPrincipal(c), sub)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"submission_id": id})
	}, middleware.RequireRole(model.RoleStudent))

	g.GET("/assignments/:id/submissions", func(c echo.Context) error {
		assignmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid assignment id"})
		}
		list, err := ss.ListByAssignment(c.Request().Context(), middleware.GetPrincipal(c), assignmentID)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.GET("/submissions/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid submission id"})
		}
		sub, err := ss.GetSubmission(c.Request().Context(), middleware.GetPrincipal(c), id)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, sub)
	}, middleware.RequireAuth)

	g.PUT("/submissions/:id/grade", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid submission id"})
		}
		var req struct {
			Points   int    `json:"points"`
			Feedback string `json:"feedback,omitempty"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		gradeID, err := gs.GradeSubmission(c.Request().Context(), middleware.GetPrincipal(c), id, req.Points, req.Feedback)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"grade_id": gradeID})
	}, middleware.RequireRole(model.RoleInstructor, model.RoleAdmin))

	g.GET("/submissions/:id/grade", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid submission id"})
		}
		grade, err := gs.GetForSubmission(c.Request().Context(), middleware.GetPrincipal(c), id)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, grade)
	}, middleware.RequireAuth)

	g.GET("/grades", func(c echo.Context) error {
		list, err := gs.ListMine(c.Request().Context(), middleware.GetPrincipal(c))
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}, middleware.RequireRole(model.RoleStudent))

	g.GET("/submissions/:id/attachment", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid submission id"})
		}
		// GetSubmission decides who may see the attachment
		sub, err := ss.GetSubmission(c.Request().Context(), middleware.GetPrincipal(c), id)
		if err != nil {
			return httpError(c, err)
		}
		if sub.AttachmentKey == "" {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "submission has no attachment"})
		}
		url, err := attach.PresignDownload(c.Request().Context(), sub.AttachmentKey)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"download_url": url})
	}, middleware.RequireAuth)

	g.POST("/submissions/attachments/presign", func(c echo.Context) error {
		key, url, err := attach.PresignUpload(c.Request().Context(), middleware.GetPrincipal(c).ID)
		if err != nil {
			return httpError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"key": key, "upload_url": url})
	}, middleware.RequireRole(model.RoleStudent))
}
