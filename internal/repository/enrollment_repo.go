package repository

import (
	"context"
	"time"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentRepository struct {
	DB *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Create enrolls a student. The (course_id, student_id) unique constraint
// turns a double enrollment into ErrDuplicate.
func (r *EnrollmentRepository) Create(ctx context.Context, courseID, studentID int64) (int64, error) {
	var id int64
	query := `
		INSERT INTO enrollments (course_id, student_id, enrolled_at)
		VALUES ($1, $2, $3)
		RETURNING enrollment_id`
	err := r.DB.QueryRow(ctx, query, courseID, studentID, time.Now()).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.QueryRow(ctx, `
		SELECT enrollment_id, course_id, student_id, enrolled_at
		FROM enrollments WHERE enrollment_id = $1
	`, id).Scan(&e.EnrollmentID, &e.CourseID, &e.StudentID, &e.EnrolledAt)
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.Enrollment, error) {
	return r.query(ctx, `
		SELECT enrollment_id, course_id, student_id, enrolled_at
		FROM enrollments WHERE student_id = $1 ORDER BY enrollment_id
	`, studentID)
}

func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]model.Enrollment, error) {
	return r.query(ctx, `
		SELECT enrollment_id, course_id, student_id, enrolled_at
		FROM enrollments WHERE course_id = $1 ORDER BY enrollment_id
	`, courseID)
}

func (r *EnrollmentRepository) query(ctx context.Context, query string, args ...any) ([]model.Enrollment, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Enrollment{}
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.EnrollmentID, &e.CourseID, &e.StudentID, &e.EnrolledAt); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EnrollmentRepository) Enrolled(ctx context.Context, courseID, studentID int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM enrollments WHERE course_id = $1 AND student_id = $2)
	`, courseID, studentID).Scan(&exists)
	return exists, err
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM enrollments WHERE enrollment_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
