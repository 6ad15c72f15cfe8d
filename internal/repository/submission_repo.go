package repository

import (
	"context"
	"time"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SubmissionRepository struct {
	DB *pgxpool.Pool
}

func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Upsert creates or replaces the student's submission for an assignment in
// a single statement, so the existence check and the write cannot race.
func (r *SubmissionRepository) Upsert(ctx context.Context, s *model.Submission) (int64, error) {
	var id int64
	query := `
		INSERT INTO submissions (assignment_id, student_id, content, attachment_key, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (assignment_id, student_id)
		DO UPDATE SET content = EXCLUDED.content,
		              attachment_key = EXCLUDED.attachment_key,
		              submitted_at = EXCLUDED.submitted_at
		RETURNING submission_id`
	err := r.DB.QueryRow(ctx, query,
		s.AssignmentID, s.StudentID, s.Content, s.AttachmentKey, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.QueryRow(ctx, `
		SELECT submission_id, assignment_id, student_id, content, attachment_key, submitted_at
		FROM submissions WHERE submission_id = $1
	`, id).Scan(&s.SubmissionID, &s.AssignmentID, &s.StudentID,
		&s.Content, &s.AttachmentKey, &s.SubmittedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID int64) ([]model.Submission, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT submission_id, assignment_id, student_id, content, attachment_key, submitted_at
		FROM submissions WHERE assignment_id = $1 ORDER BY submission_id
	`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Submission{}
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.SubmissionID, &s.AssignmentID, &s.StudentID,
			&s.Content, &s.AttachmentKey, &s.SubmittedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
