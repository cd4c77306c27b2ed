package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// mainAdID is the single ad slot the platform renders.
const mainAdID = "main_ad"

type AdRepository struct {
	pool *pgxpool.Pool
}

func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// Get returns the ad content, or "" when none has been set yet.
func (r *AdRepository) Get(ctx context.Context) (string, error) {
	const query = `SELECT content FROM ads WHERE id = $1`
	var content string
	err := r.pool.QueryRow(ctx, query, mainAdID).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return content, err
}

func (r *AdRepository) Set(ctx context.Context, content string) error {
	const query = `
		INSERT INTO ads (id, content) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content
	`
	_, err := r.pool.Exec(ctx, query, mainAdID, content)
	return err
}

// ID returns the fixed slot identifier exposed on the wire.
func (r *AdRepository) ID() string {
	return mainAdID
}
