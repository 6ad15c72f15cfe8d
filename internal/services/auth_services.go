package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/model"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/password"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/repository"
	"github.com/kudakwashe-taderera/AfriLearnLMS-sub000/internal/token"
)

const (
	MinPasswordLen = 8
	MinUsernameLen = 3
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// UserStore is the persistence surface the auth core needs. The pgx
// repository satisfies it in production; tests inject fakes.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SetVerified(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// RegisterInput carries the registration payload after binding.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      model.Role
	FirstName string
	LastName  string
}

type AuthService struct {
	Users     UserStore
	Tokens    *token.Issuer
	Mailer    EmailSender
	Validator EmailValidator
	AppURL    string
}

func NewAuthService(users UserStore, tokens *token.Issuer, mailer EmailSender, validator EmailValidator, appURL string) *AuthService {
	return &AuthService{
		Users:     users,
		Tokens:    tokens,
		Mailer:    mailer,
		Validator: validator,
		AppURL:    strings.TrimRight(appURL, "/"),
	}
}

func (s *AuthService) validateEmail(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if s.Validator != nil {
		if err := s.Validator.Validate(ctx, email); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLen)
	}
	return nil
}

// Register creates an account with a freshly salted digest, then sends the
// verification email best effort. A mail failure never fails registration.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if len(in.Username) < MinUsernameLen {
		return nil, fmt.Errorf("%w: username must be at least %d characters", ErrValidation, MinUsernameLen)
	}
	if err := s.validateEmail(ctx, in.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(in.Password); err != nil {
		return nil, err
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	taken, err := s.Users.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username already exists", ErrValidation)
	}
	taken, err = s.Users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", ErrValidation)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	id, err := s.Users.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id

	s.sendVerification(ctx, u)

	return u.Sanitize(), nil
}

func (s *AuthService) sendVerification(ctx context.Context, u *model.User) {
	if s.Mailer == nil {
		return
	}
	t, err := s.Tokens.Issue(u.ID, token.PurposeVerifyEmail, token.VerifyEmailTTL)
	if err != nil {
		slog.Error("issue verification token", "user_id", u.ID, "err", err)
		return
	}
	url := s.AppURL + "/verify-email?token=" + t
	if err := s.Mailer.SendVerificationEmail(ctx, u.Email, url); err != nil {
		slog.Error("send verification email", "user_id", u.ID, "err", err)
	}
}

// Login authenticates a username/password pair and returns the sanitized
// user. Every failure is the same ErrInvalidCredentials; nothing reveals
// whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, pw string) (*model.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !password.Verify(pw, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u.Sanitize(), nil
}

// VerifyEmail redeems a verification token and flips the verified flag.
func (s *AuthService) VerifyEmail(ctx context.Context, tokenString string) error {
	userID, err := s.Tokens.Verify(tokenString, token.PurposeVerifyEmail)
	if err != nil {
		return err
	}
	if err := s.Users.SetVerified(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return token.ErrInvalidToken
		}
		return err
	}
	return nil
}

// ForgotPassword sends a reset link when the address belongs to an account.
// It always reports success so callers cannot probe which emails exist; any
// lookup or transport failure is logged and swallowed.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return
	}
	if s.Mailer == nil {
		return
	}
	t, err := s.Tokens.Issue(u.ID, token.PurposePasswordReset, token.PasswordResetTTL)
	if err != nil {
		slog.Error("issue reset token", "user_id", u.ID, "err", err)
		return
	}
	url := s.AppURL + "/reset-password?token=" + t
	if err := s.Mailer.SendPasswordResetEmail(ctx, u.Email, url); err != nil {
		slog.Error("send reset email", "user_id", u.ID, "err", err)
	}
}

// ResetPassword redeems a reset token and replaces the credential digest.
func (s *AuthService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	userID, err := s.Tokens.Verify(tokenString, token.PurposePasswordReset)
	if err != nil {
		return err
	}
	if err := s.validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return token.ErrInvalidToken
		}
		return err
	}
	return nil
}
