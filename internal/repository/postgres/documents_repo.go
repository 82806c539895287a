package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/models"
	"github.com/quantity262/Myweb/internal/repository"
)

type documentsRepo struct{ pool *pgxpool.Pool }

func NewDocuments(pool *pgxpool.Pool) repository.Documents {
	return &documentsRepo{pool: pool}
}

func (r *documentsRepo) List(ctx context.Context) ([]models.Document, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, filename, content, created_at, updated_at
         FROM documents ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Filename, &d.Content, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *documentsRepo) GetByFilename(ctx context.Context, filename string) (models.Document, error) {
	var d models.Document
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, filename, content, created_at, updated_at
         FROM documents WHERE filename=$1`, filename,
	).Scan(&d.ID, &d.Title, &d.Filename, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Document{}, apperr.ErrNotFound
	}
	return d, err
}

func (r *documentsRepo) Insert(ctx context.Context, title, filename, content string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO documents(title, filename, content) VALUES($1,$2,$3) RETURNING id`,
		title, filename, content,
	).Scan(&id)
	return id, err
}

func (r *documentsRepo) UpdateByFilename(ctx context.Context, title, filename, content string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE documents SET title=$1, content=$2, updated_at=now() WHERE filename=$3`,
		title, content, filename,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *documentsRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
