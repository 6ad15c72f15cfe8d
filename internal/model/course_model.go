package model

import "time"

// Course is owned by the instructor that created it; InstructorID is the
// ownership field checked on every mutation.
type Course struct {
	CourseID     int64      `json:"course_id"`
	InstructorID int64      `json:"instructor_id"`
	Title        string     `json:"title"`
	Code         string     `json:"code"`
	Description  string     `json:"description,omitempty"`
	Semester     string     `json:"semester,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// Enrollment links a student to a course. (CourseID, StudentID) is unique.
type Enrollment struct {
	EnrollmentID int64      `json:"enrollment_id"`
	CourseID     int64      `json:"course_id"`
	StudentID    int64      `json:"student_id"`
	EnrolledAt   *time.Time `json:"enrolled_at,omitempty"`
}

// Announcement belongs to a course and is owned transitively through it.
type Announcement struct {
	AnnouncementID int64      `json:"announcement_id"`
	CourseID       int64      `json:"course_id"`
	AuthorID       int64      `json:"author_id"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}
