package repository

import (
	"context"
	"time"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AnnouncementRepository struct {
	DB *pgxpool.Pool
}

func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) (int64, error) {
	var id int64
	query := `
		INSERT INTO announcements (course_id, author_id, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING announcement_id`
	err := r.DB.QueryRow(ctx, query,
		a.CourseID, a.AuthorID, a.Title, a.Body, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*model.Announcement, error) {
	var a model.Announcement
	err := r.DB.QueryRow(ctx, `
		SELECT announcement_id, course_id, author_id, title, body, created_at
		FROM announcements WHERE announcement_id = $1
	`, id).Scan(&a.AnnouncementID, &a.CourseID, &a.AuthorID, &a.Title, &a.Body, &a.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AnnouncementRepository) ListByCourse(ctx context.Context, courseID int64) ([]model.Announcement, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT announcement_id, course_id, author_id, title, body, created_at
		FROM announcements WHERE course_id = $1 ORDER BY announcement_id DESC
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Announcement{}
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.AnnouncementID, &a.CourseID, &a.AuthorID,
			&a.Title, &a.Body, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM announcements WHERE announcement_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
