package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
)

// CourseStore is the persistence surface for courses.
type CourseStore interface {
	Create(ctx context.Context, c *model.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	List(ctx context.Context, limit, offset int) ([]model.Course, error)
	ListByInstructor(ctx context.Context, instructorID int64) ([]model.Course, error)
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id int64) error
}

type CourseService struct {
	Courses CourseStore
}

func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{Courses: courses}
}

// canManage implements the owner-or-admin rule for a course. Admin carries
// no implicit status elsewhere; this is the one place it is spelled out.
func canManage(requester *model.User, course *model.Course) bool {
	return requester.Role == model.RoleAdmin || requester.ID == course.InstructorID
}

func (s *CourseService) validate(c *model.Course) error {
	c.Title = strings.TrimSpace(c.Title)
	c.Code = strings.TrimSpace(c.Code)
	if c.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if c.Code == "" {
		return fmt.Errorf("%w: course code is required", ErrValidation)
	}
	return nil
}

// CreateCourse creates a course owned by the requester. Admins may create
// on behalf of another instructor by setting InstructorID explicitly.
func (s *CourseService) CreateCourse(ctx context.Context, requester *model.User, c *model.Course) (int64, error) {
	if err := s.validate(c); err != nil {
		return 0, err
	}
	if c.InstructorID == 0 {
		c.InstructorID = requester.ID
	}
	if c.InstructorID != requester.ID && requester.Role != model.RoleAdmin {
		return 0, ErrForbidden
	}
	return s.Courses.Create(ctx, c)
}

func (s *CourseService) GetCourse(ctx context.Context, id int64) (*model.Course, error) {
	return s.Courses.GetByID(ctx, id)
}

func (s *CourseService) ListCourses(ctx context.Context, limit, offset int) ([]model.Course, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Courses.List(ctx, limit, offset)
}

// ListTeaching returns the courses owned by the requester.
func (s *CourseService) ListTeaching(ctx context.Context, requester *model.User) ([]model.Course, error) {
	return s.Courses.ListByInstructor(ctx, requester.ID)
}

// UpdateCourse rewrites the course fields. Only the owning instructor or an
// admin may do this; the check runs before any write.
func (s *CourseService) UpdateCourse(ctx context.Context, requester *model.User, c *model.Course) error {
	existing, err := s.Courses.GetByID(ctx, c.CourseID)
	if err != nil {
		return err
	}
	if !canManage(requester, existing) {
		return ErrForbidden
	}
	if err := s.validate(c); err != nil {
		return err
	}
	return s.Courses.Update(ctx, c)
}

func (s *CourseService) DeleteCourse(ctx context.Context, requester *model.User, id int64) error {
	existing, err := s.Courses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(requester, existing) {
		return ErrForbidden
	}
	return s.Courses.Delete(ctx, id)
}

// ownsCourse resolves the transitive ownership rule used by assignments,
// announcements and grades. A dangling course id denies rather than errors.
func ownsCourse(ctx context.Context, courses CourseStore, requester *model.User, courseID int64) error {
	course, err := courses.GetByID(ctx, courseID)
	if err != nil {
		// parent gone: the safe default is to deny
		return ErrForbidden
	}
	if !canManage(requester, course) {
		return ErrForbidden
	}
	return nil
}
