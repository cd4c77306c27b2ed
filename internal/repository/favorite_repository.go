package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VorteXchange1987/kinea-1/internal/models"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// Toggle adds or removes a favorite. It reports whether the series is
// favorited afterwards.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, seriesID string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND series_id = $2`, userID, seriesID)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := r.pool.Exec(ctx, `INSERT INTO favorites (user_id, series_id) VALUES ($1, $2)`, userID, seriesID); err != nil {
		return false, err
	}
	return true, nil
}

// ListSeries returns the series the user has favorited, newest series
// first.
func (r *FavoriteRepository) ListSeries(ctx context.Context, userID string) ([]models.Series, error) {
	const query = `
		SELECT s.id, s.title, s.description, s.poster_url, s.genre, s.created_by, s.created_at
		FROM series s
		JOIN favorites f ON f.series_id = s.id
		WHERE f.user_id = $1
		ORDER BY s.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Series
	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, series)
	}
	return list, rows.Err()
}
