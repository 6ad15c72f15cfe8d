package services

import (
	"context"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
)

// UserLister extends UserStore with the admin listing and profile surface.
type UserLister interface {
	UserStore
	List(ctx context.Context, limit, offset int) ([]model.User, error)
	UpdateProfile(ctx context.Context, u *model.User) error
}

type UserService struct {
	Users UserLister
}

func NewUserService(users UserLister) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Users.List(ctx, limit, offset)
}

// GetUser is visible to the user themselves or an admin.
func (s *UserService) GetUser(ctx context.Context, requester *model.User, id int64) (*model.User, error) {
	if requester.ID != id && requester.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Sanitize(), nil
}

// UpdateProfile changes name, bio and institution. Role, email and password
// are not reachable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, requester *model.User, u *model.User) error {
	if requester.ID != u.ID && requester.Role != model.RoleAdmin {
		return ErrForbidden
	}
	return s.Users.UpdateProfile(ctx, u)
}
