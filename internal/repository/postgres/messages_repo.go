package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/models"
	"github.com/quantity262/Myweb/internal/repository"
)

type messagesRepo struct{ pool *pgxpool.Pool }

func NewMessages(pool *pgxpool.Pool) repository.Messages {
	return &messagesRepo{pool: pool}
}

func (r *messagesRepo) Create(ctx context.Context, userID int64, username, content string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO messages(user_id, username, content) VALUES($1,$2,$3) RETURNING id`,
		userID, username, content,
	).Scan(&id)
	return id, err
}

func (r *messagesRepo) ListActive(ctx context.Context, limit int) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.id, m.user_id, m.username, m.content, m.created_at, COALESCE(u.role, '')
         FROM messages m
         LEFT JOIN users u ON m.user_id = u.id
         WHERE m.status = 'active'
         ORDER BY m.created_at DESC
         LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Username, &m.Content, &m.CreatedAt, &m.Role); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *messagesRepo) ListAll(ctx context.Context) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.id, m.user_id, m.username, m.content, m.status, m.created_at, COALESCE(u.email, '')
         FROM messages m
         LEFT JOIN users u ON m.user_id = u.id
         ORDER BY m.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Username, &m.Content, &m.Status, &m.CreatedAt, &m.Email); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *messagesRepo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE messages SET status='deleted' WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
