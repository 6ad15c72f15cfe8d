package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/repository"
)

type EnrollmentStore interface {
	Create(ctx context.Context, courseID, studentID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Enrollment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.Enrollment, error)
	Enrolled(ctx context.Context, courseID, studentID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type EnrollmentService struct {
	Enrollments EnrollmentStore
	Courses     CourseStore
}

func NewEnrollmentService(enrollments EnrollmentStore, courses CourseStore) *EnrollmentService {
	return &EnrollmentService{Enrollments: enrollments, Courses: courses}
}

// Enroll adds the requesting student to a course. Enrolling twice in the
// same course is a validation error, surfaced from the unique constraint.
func (s *EnrollmentService) Enroll(ctx context.Context, requester *model.User, courseID int64) (int64, error) {
	if _, err := s.Courses.GetByID(ctx, courseID); err != nil {
		return 0, err
	}
	id, err := s.Enrollments.Create(ctx, courseID, requester.ID)
	if errors.Is(err, repository.ErrDuplicate) {
		return 0, fmt.Errorf("%w: already enrolled in this course", ErrValidation)
	}
	return id, err
}

// ListMine returns the requester's own enrollments.
func (s *EnrollmentService) ListMine(ctx context.Context, requester *model.User) ([]model.Enrollment, error) {
	return s.Enrollments.ListByStudent(ctx, requester.ID)
}

// Roster lists a course's enrollments for the owning instructor or an admin.
func (s *EnrollmentService) Roster(ctx context.Context, requester *model.User, courseID int64) ([]model.Enrollment, error) {
	if err := ownsCourse(ctx, s.Courses, requester, courseID); err != nil {
		return nil, err
	}
	return s.Enrollments.ListByCourse(ctx, courseID)
}

// Unenroll removes an enrollment. Permitted for the enrolled student
// themselves or an admin.
func (s *EnrollmentService) Unenroll(ctx context.Context, requester *model.User, enrollmentID int64) error {
	e, err := s.Enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return err
	}
	if requester.Role != model.RoleAdmin && requester.ID != e.StudentID {
		return ErrForbidden
	}
	return s.Enrollments.Delete(ctx, enrollmentID)
}
