package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/quantity262/Myweb/internal/repository"
)

type Repositories struct {
	Users     repo.Users
	Documents repo.Documents
	Messages  repo.Messages
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Documents: &documentsRepo{pool},
		Messages:  &messagesRepo{pool},
	}
}
