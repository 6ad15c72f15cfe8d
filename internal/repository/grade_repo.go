package repository

import (
	"context"
	"time"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GradeRepository struct {
	DB *pgxpool.Pool
}

func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{DB: db}
}

// Upsert records or revises the grade for a submission. One grade per
// submission; regrading replaces points and feedback.
func (r *GradeRepository) Upsert(ctx context.Context, g *model.Grade) (int64, error) {
	var id int64
	query := `
		INSERT INTO grades (submission_id, grader_id, points, feedback, graded_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (submission_id)
		DO UPDATE SET grader_id = EXCLUDED.grader_id,
		              points = EXCLUDED.points,
		              feedback = EXCLUDED.feedback,
		              graded_at = EXCLUDED.graded_at
		RETURNING grade_id`
	err := r.DB.QueryRow(ctx, query,
		g.SubmissionID, g.GraderID, g.Points, g.Feedback, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (r *GradeRepository) GetBySubmission(ctx context.Context, submissionID int64) (*model.Grade, error) {
	var g model.Grade
	err := r.DB.QueryRow(ctx, `
		SELECT grade_id, submission_id, grader_id, points, feedback, graded_at
		FROM grades WHERE submission_id = $1
	`, submissionID).Scan(&g.GradeID, &g.SubmissionID, &g.GraderID,
		&g.Points, &g.Feedback, &g.GradedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

// ListByStudent returns every grade attached to a student's submissions.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.Grade, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT g.grade_id, g.submission_id, g.grader_id, g.points, g.feedback, g.graded_at
		FROM grades g
		JOIN submissions s ON s.submission_id = g.submission_id
		WHERE s.student_id = $1
		ORDER BY g.grade_id
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Grade{}
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.GradeID, &g.SubmissionID, &g.GraderID,
			&g.Points, &g.Feedback, &g.GradedAt); err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
