package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
)

type AnnouncementStore interface {
	Create(ctx context.Context, a *model.Announcement) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Announcement, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

type AnnouncementService struct {
	Announcements AnnouncementStore
	Courses       CourseStore
}

func NewAnnouncementService(announcements AnnouncementStore, courses CourseStore) *AnnouncementService {
	return &AnnouncementService{Announcements: announcements, Courses: courses}
}

// Post publishes an announcement on a course the requester owns.
func (s *AnnouncementService) Post(ctx context.Context, requester *model.User, a *model.Announcement) (int64, error) {
	if err := ownsCourse(ctx, s.Courses, requester, a.CourseID); err != nil {
		return 0, err
	}
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return 0, fmt.Errorf("%w: title is required", ErrValidation)
	}
	a.AuthorID = requester.ID
	return s.Announcements.Create(ctx, a)
}

func (s *AnnouncementService) ListByCourse(ctx context.Context, courseID int64) ([]model.Announcement, error) {
	return s.Announcements.ListByCourse(ctx, courseID)
}

// Remove deletes an announcement, resolving ownership through its course.
func (s *AnnouncementService) Remove(ctx context.Context, requester *model.User, id int64) error {
	a, err := s.Announcements.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownsCourse(ctx, s.Courses, requester, a.CourseID); err != nil {
		return err
	}
	return s.Announcements.Delete(ctx, id)
}
