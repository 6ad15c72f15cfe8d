package services

import (
	"context"
	"fmt"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
)

type GradeStore interface {
	Upsert(ctx context.Context, g *model.Grade) (int64, error)
	GetBySubmission(ctx context.Context, submissionID int64) (*model.Grade, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.Grade, error)
}

type GradeService struct {
	Grades      GradeStore
	Submissions SubmissionStore
	Assignments AssignmentStore
	Courses     CourseStore
}

func NewGradeService(grades GradeStore, submissions SubmissionStore,
	assignments AssignmentStore, courses CourseStore) *GradeService {
	return &GradeService{
		Grades:      grades,
		Submissions: submissions,
		Assignments: assignments,
		Courses:     courses,
	}
}

// GradeSubmission awards points for a submission. Ownership resolves
// submission -> assignment -> course; a missing link anywhere denies.
func (s *GradeService) GradeSubmission(ctx context.Context, requester *model.User, submissionID int64, points int, feedback string) (int64, error) {
	sub, err := s.Submissions.GetByID(ctx, submissionID)
	if err != nil {
		return 0, err
	}
	a, err := s.Assignments.GetByID(ctx, sub.AssignmentID)
	if err != nil {
		return 0, ErrForbidden
	}
	if err := ownsCourse(ctx, s.Courses, requester, a.CourseID); err != nil {
		return 0, err
	}
	if points < 0 || points > a.MaxPoints {
		return 0, fmt.Errorf("%w: points must be between 0 and %d", ErrValidation, a.MaxPoints)
	}
	return s.Grades.Upsert(ctx, &model.Grade{
		SubmissionID: submissionID,
		GraderID:     requester.ID,
		Points:       points,
		Feedback:     feedback,
	})
}

// GetForSubmission returns the grade on a submission, visible to the
// submitting student, the course owner or an admin.
func (s *GradeService) GetForSubmission(ctx context.Context, requester *model.User, submissionID int64) (*model.Grade, error) {
	sub, err := s.Submissions.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if requester.ID != sub.StudentID && requester.Role != model.RoleAdmin {
		a, err := s.Assignments.GetByID(ctx, sub.AssignmentID)
		if err != nil {
			return nil, ErrForbidden
		}
		if err := ownsCourse(ctx, s.Courses, requester, a.CourseID); err != nil {
			return nil, err
		}
	}
	return s.Grades.GetBySubmission(ctx, submissionID)
}

// ListMine returns the requester's own grades.
func (s *GradeService) ListMine(ctx context.Context, requester *model.User) ([]model.Grade, error) {
	return s.Grades.ListByStudent(ctx, requester.ID)
}
