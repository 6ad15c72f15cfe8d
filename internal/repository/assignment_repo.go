package repository

import (
	"context"
	"time"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AssignmentRepository struct {
	DB *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *model.Assignment) (int64, error) {
	var id int64
	query := `
		INSERT INTO assignments (course_id, title, description, due_date, max_points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING assignment_id`
	err := r.DB.QueryRow(ctx, query,
		a.CourseID, a.Title, a.Description, a.DueDate, a.MaxPoints, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	var a model.Assignment
	err := r.DB.QueryRow(ctx, `
		SELECT assignment_id, course_id, title, description, due_date, max_points, created_at
		FROM assignments WHERE assignment_id = $1
	`, id).Scan(&a.AssignmentID, &a.CourseID, &a.Title, &a.Description,
		&a.DueDate, &a.MaxPoints, &a.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]model.Assignment, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT assignment_id, course_id, title, description, due_date, max_points, created_at
		FROM assignments WHERE course_id = $1 ORDER BY assignment_id
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Assignment{}
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.AssignmentID, &a.CourseID, &a.Title, &a.Description,
			&a.DueDate, &a.MaxPoints, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AssignmentRepository) Update(ctx context.Context, a *model.Assignment) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE assignments
		SET title = $1, description = $2, due_date = $3, max_points = $4
		WHERE assignment_id = $5
	`, a.Title, a.Description, a.DueDate, a.MaxPoints, a.AssignmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM assignments WHERE assignment_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
