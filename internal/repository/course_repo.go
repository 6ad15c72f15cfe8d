package repository

import (
	"context"
	"time"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CourseRepository struct {
	DB *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(ctx context.Context, c *model.Course) (int64, error) {
	var id int64
	query := `
		INSERT INTO courses (instructor_id, title, code, description, semester, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING course_id`
	err := r.DB.QueryRow(ctx, query,
		c.InstructorID, c.Title, c.Code, c.Description, c.Semester, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	var c model.Course
	query := `
		SELECT course_id, instructor_id, title, code, description, semester, created_at
		FROM courses WHERE course_id = $1`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&c.CourseID, &c.InstructorID, &c.Title, &c.Code, &c.Description, &c.Semester, &c.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CourseRepository) List(ctx context.Context, limit, offset int) ([]model.Course, error) {
	query := `
		SELECT course_id, instructor_id, title, code, description, semester, created_at
		FROM courses ORDER BY course_id LIMIT $1 OFFSET $2`
	return r.queryCourses(ctx, query, limit, offset)
}

func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]model.Course, error) {
	query := `
		SELECT course_id, instructor_id, title, code, description, semester, created_at
		FROM courses WHERE instructor_id = $1 ORDER BY course_id`
	return r.queryCourses(ctx, query, instructorID)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]model.Course, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.CourseID, &c.InstructorID, &c.Title, &c.Code,
			&c.Description, &c.Semester, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE courses
		SET title = $1, code = $2, description = $3, semester = $4
		WHERE course_id = $5
	`, c.Title, c.Code, c.Description, c.Semester, c.CourseID)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
