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

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

const userCols = `id, username, email, password, role, created_at`

func (r *usersRepo) Create(ctx context.Context, username, email, hash, role string) (models.User, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users(username, email, password, role) VALUES($1,$2,$3,$4) RETURNING id`,
		username, email, hash, role,
	).Scan(&id)
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *usersRepo) scanOne(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, apperr.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE username=$1`, username))
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email=$1`, email))
}

func (r *usersRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE username=$1 OR email=$1`, identifier))
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password=$2 WHERE id=$1`, id, hash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *usersRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET role=$2 WHERE id=$1`, id, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *usersRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *usersRepo) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role='admin')`).Scan(&exists)
	return exists, err
}
