package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
)

type SubmissionStore interface {
	Upsert(ctx context.Context, s *model.Submission) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Submission, error)
	ListByAssignment(ctx context.Context, assignmentID int64) ([]model.Submission, error)
}

type SubmissionService struct {
	Submissions SubmissionStore
	Assignments AssignmentStore
	Enrollments EnrollmentStore
	Courses     CourseStore
}

func NewSubmissionService(submissions SubmissionStore, assignments AssignmentStore,
	enrollments EnrollmentStore, courses CourseStore) *SubmissionService {
	return &SubmissionService{
		Submissions: submissions,
		Assignments: assignments,
		Enrollments: enrollments,
		Courses:     courses,
	}
}

// Submit creates or replaces the requester's submission for an assignment.
// The student must be enrolled in the assignment's course. The write itself
// is a single upsert keyed by (assignment, student).
func (s *SubmissionService) Submit(ctx context.Context, requester *model.User, sub *model.Submission) (int64, error) {
	sub.Content = strings.TrimSpace(sub.Content)
	if sub.Content == "" && sub.AttachmentKey == "" {
		return 0, fmt.Errorf("%w: submission needs content or an attachment", ErrValidation)
	}
	a, err := s.Assignments.GetByID(ctx, sub.AssignmentID)
	if err != nil {
		return 0, err
	}
	enrolled, err := s.Enrollments.Enrolled(ctx, a.CourseID, requester.ID)
	if err != nil {
		return 0, err
	}
	if !enrolled {
		return 0, ErrForbidden
	}
	sub.StudentID = requester.ID
	return s.Submissions.Upsert(ctx, sub)
}

// ListByAssignment lists every submission for an assignment, visible to the
// course owner or an admin.
func (s *SubmissionService) ListByAssignment(ctx context.Context, requester *model.User, assignmentID int64) ([]model.Submission, error) {
	a, err := s.Assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if err := ownsCourse(ctx, s.Courses, requester, a.CourseID); err != nil {
		return nil, err
	}
	return s.Submissions.ListByAssignment(ctx, assignmentID)
}

// GetSubmission returns one submission, visible to the submitting student,
// the course owner or an admin.
func (s *SubmissionService) GetSubmission(ctx context.Context, requester *model.User, id int64) (*model.Submission, error) {
	sub, err := s.Submissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requester.ID == sub.StudentID || requester.Role == model.RoleAdmin {
		return sub, nil
	}
	a, err := s.Assignments.GetByID(ctx, sub.AssignmentID)
	if err != nil {
		return nil, ErrForbidden
	}
	if err := ownsCourse(ctx, s.Courses, requester, a.CourseID); err != nil {
		return nil, err
	}
	return sub, nil
}
