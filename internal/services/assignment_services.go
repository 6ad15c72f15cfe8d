package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
)

type AssignmentStore interface {
	Create(ctx context.Context, a *model.Assignment) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Assignment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.Assignment, error)
	Update(ctx context.Context, a *model.Assignment) error
	Delete(ctx context.Context, id int64) error
}

type AssignmentService struct {
	Assignments AssignmentStore
	Courses     CourseStore
}

func NewAssignmentService(assignments AssignmentStore, courses CourseStore) *AssignmentService {
	return &AssignmentService{Assignments: assignments, Courses: courses}
}

func (s *AssignmentService) validate(a *model.Assignment) error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if a.MaxPoints <= 0 {
		return fmt.Errorf("%w: max_points must be positive", ErrValidation)
	}
	return nil
}

// CreateAssignment requires ownership of the parent course.
func (s *AssignmentService) CreateAssignment(ctx context.Context, requester *model.User, a *model.Assignment) (int64, error) {
	if err := ownsCourse(ctx, s.Courses, requester, a.CourseID); err != nil {
		return 0, err
	}
	if err := s.validate(a); err != nil {
		return 0, err
	}
	return s.Assignments.Create(ctx, a)
}

func (s *AssignmentService) GetAssignment(ctx context.Context, id int64) (*model.Assignment, error) {
	return s.Assignments.GetByID(ctx, id)
}

func (s *AssignmentService) ListByCourse(ctx context.Context, courseID int64) ([]model.Assignment, error) {
	return s.Assignments.ListByCourse(ctx, courseID)
}

// UpdateAssignment resolves ownership through the assignment's own course
// id, not the one in the payload, so an update cannot move an assignment
// into a course the requester controls.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, requester *model.User, a *model.Assignment) error {
	existing, err := s.Assignments.GetByID(ctx, a.AssignmentID)
	if err != nil {
		return err
	}
	if err := ownsCourse(ctx, s.Courses, requester, existing.CourseID); err != nil {
		return err
	}
	if err := s.validate(a); err != nil {
		return err
	}
	a.CourseID = existing.CourseID
	return s.Assignments.Update(ctx, a)
}

func (s *AssignmentService) DeleteAssignment(ctx context.Context, requester *model.User, id int64) error {
	existing, err := s.Assignments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownsCourse(ctx, s.Courses, requester, existing.CourseID); err != nil {
		return err
	}
	return s.Assignments.Delete(ctx, id)
}
