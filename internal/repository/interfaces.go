package repository

import (
	"context"

	"github.com/quantity262/Myweb/internal/models"
)

// Users is the credential store contract. Lookups return
// apperr.ErrNotFound when no row matches.
type Users interface {
	Create(ctx context.Context, username, email, passwordHash, role string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdateRole(ctx context.Context, id int64, role string) error
	Delete(ctx context.Context, id int64) error
	AdminExists(ctx context.Context) (bool, error)
}

type Documents interface {
	List(ctx context.Context) ([]models.Document, error)
	GetByFilename(ctx context.Context, filename string) (models.Document, error)
	Insert(ctx context.Context, title, filename, content string) (int64, error)
	UpdateByFilename(ctx context.Context, title, filename, content string) error
	Delete(ctx context.Context, id int64) error
}

type Messages interface {
	Create(ctx context.Context, userID int64, username, content string) (int64, error)
	ListActive(ctx context.Context, limit int) ([]models.Message, error)
	ListAll(ctx context.Context) ([]models.Message, error)
	SoftDelete(ctx context.Context, id int64) error
}
