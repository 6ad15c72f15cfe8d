package model

import "time"

// Assignment belongs to a course; ownership resolves transitively to the
// course's instructor.
type Assignment struct {
	AssignmentID int64      `json:"assignment_id"`
	CourseID     int64      `json:"course_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	MaxPoints    int        `json:"max_points"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// Submission is a student's answer to an assignment. One row per
// (assignment, student); re-submitting replaces the content in place.
// AttachmentKey, when set, is the object-storage key of an uploaded file.
type Submission struct {
	SubmissionID  int64      `json:"submission_id"`
	AssignmentID  int64      `json:"assignment_id"`
	StudentID     int64      `json:"student_id"`
	Content       string     `json:"content,omitempty"`
	AttachmentKey string     `json:"attachment_key,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
}

// Grade records points awarded for a submission.
type Grade struct {
	GradeID      int64      `json:"grade_id"`
	SubmissionID int64      `json:"submission_id"`
	GraderID     int64      `json:"grader_id"`
	Points       int        `json:"points"`
	Feedback     string     `json:"feedback,omitempty"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
}
