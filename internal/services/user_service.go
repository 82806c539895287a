package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/auth"
	"github.com/quantity262/Myweb/internal/models"
	repo "github.com/quantity262/Myweb/internal/repository"
)

const minPasswordLength = 6

// UserService implements registration, login and the admin user
// management operations over the credential store.
type UserService struct {
	users repo.Users
	tm    *auth.TokenManager
}

func NewUserService(users repo.Users, tm *auth.TokenManager) *UserService {
	return &UserService{users: users, tm: tm}
}

// Register creates a new account with role "user" and returns it together
// with a freshly issued session token. Uniqueness is checked before any
// write: username first, then email.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return models.User{}, "", apperr.ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return models.User{}, "", apperr.ErrPasswordTooShort
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return models.User{}, "", apperr.ErrUsernameTaken
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return models.User{}, "", fmt.Errorf("username lookup: %w", err)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return models.User{}, "", apperr.ErrEmailTaken
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return models.User{}, "", fmt.Errorf("email lookup: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}
	u, err := s.users.Create(ctx, username, email, hash, models.RoleUser)
	if err != nil {
		return models.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tm.Issue(u.ID, u.Username, u.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}

// Login accepts a username or an email as identifier. Unknown identifier
// and wrong password both come back as ErrInvalidCredentials; the caller
// never learns which field was wrong.
func (s *UserService) Login(ctx context.Context, identifier, password string) (models.User, string, error) {
	if identifier == "" || password == "" {
		return models.User{}, "", apperr.ErrMissingFields
	}

	u, err := s.users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.User{}, "", apperr.ErrInvalidCredentials
		}
		return models.User{}, "", fmt.Errorf("user lookup: %w", err)
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, "", apperr.ErrInvalidCredentials
	}

	token, err := s.tm.Issue(u.ID, u.Username, u.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}

// Me returns the current database row for an authenticated user id.
func (s *UserService) Me(ctx context.Context, id int64) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// ChangePassword verifies the current password before accepting the new
// one.
func (s *UserService) ChangePassword(ctx context.Context, id int64, current, next string) error {
	if current == "" || next == "" {
		return apperr.ErrMissingFields
	}
	if len(next) < minPasswordLength {
		return apperr.ErrPasswordTooShort
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.VerifyPassword(current, u.PasswordHash); err != nil {
		return apperr.ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, hash)
}

// ListUsers is the admin listing; it is the one place the stored password
// hash is exposed.
func (s *UserService) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, models.AdminUser{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Password:  u.PasswordHash,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

// ResetPassword sets a user's password without checking the old one
// (admin override).
func (s *UserService) ResetPassword(ctx context.Context, id int64, next string) error {
	if len(next) < minPasswordLength {
		return apperr.ErrPasswordTooShort
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, hash)
}

// DeleteUser removes an account. An admin cannot delete their own.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return apperr.ErrSelfModification
	}
	return s.users.Delete(ctx, targetID)
}

// UpdateUserRole changes a user's role. An admin cannot change their own.
func (s *UserService) UpdateUserRole(ctx context.Context, actorID, targetID int64, role string) error {
	if !models.ValidRole(role) {
		return apperr.ErrInvalidRole
	}
	if actorID == targetID {
		return apperr.ErrSelfModification
	}
	return s.users.UpdateRole(ctx, targetID, role)
}

// EnsureDefaultAdmin creates the bootstrap admin account once. If any
// admin row already exists it does nothing, so renamed or demoted
// defaults are never resurrected.
func (s *UserService) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return fmt.Errorf("admin check: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.users.Create(ctx, username, email, hash, models.RoleAdmin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	slog.Info("default admin account created", "username", username)
	return nil
}
