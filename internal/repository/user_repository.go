package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VorteXchange1987/kinea-1/internal/models"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

var ErrUserNotFound = errors.New("user not found")

const userColumns = `id, username, email, password_hash, role, profile_photo_url, is_banned, is_super_admin, ip_address, created_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ProfilePhotoURL,
		&user.IsBanned,
		&user.IsSuperAdmin,
		&user.IPAddress,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (
			id, username, email, password_hash, role, profile_photo_url, is_banned, is_super_admin, ip_address, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.ProfilePhotoURL,
		user.IsBanned,
		user.IsSuperAdmin,
		user.IPAddress,
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.pool.QueryRow(ctx, query, username))
}

// Search matches usernames and emails case-insensitively, capped at 50
// rows.
func (r *UserRepository) Search(ctx context.Context, q string) ([]models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT 50
	`

	rows, err := r.pool.Query(ctx, query, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	const query = `UPDATE users SET is_banned = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, banned)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetRole(ctx context.Context, id string, role api.Role) error {
	const query = `UPDATE users SET role = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, role)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateProfilePhoto(ctx context.Context, id string, photoURL string) error {
	const query = `UPDATE users SET profile_photo_url = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, photoURL)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateUsername(ctx context.Context, id string, username string) error {
	const query = `UPDATE users SET username = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, username)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateEmail(ctx context.Context, id string, email string) error {
	const query = `UPDATE users SET email = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash []byte) error {
	const query = `UPDATE users SET password_hash = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}
