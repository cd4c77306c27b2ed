package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VorteXchange1987/kinea-1/internal/models"
)

var ErrEpisodeNotFound = errors.New("episode not found")

const episodeColumns = `id, season_id, episode_number, title, video_embed_url, thumbnail_url, description, views, created_at`

type EpisodeRepository struct {
	pool *pgxpool.Pool
}

func NewEpisodeRepository(pool *pgxpool.Pool) *EpisodeRepository {
	return &EpisodeRepository{pool: pool}
}

func scanEpisode(row pgx.Row) (models.Episode, error) {
	var episode models.Episode
	if err := row.Scan(
		&episode.ID,
		&episode.SeasonID,
		&episode.EpisodeNumber,
		&episode.Title,
		&episode.VideoEmbedURL,
		&episode.ThumbnailURL,
		&episode.Description,
		&episode.Views,
		&episode.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Episode{}, ErrEpisodeNotFound
		}
		return models.Episode{}, err
	}
	return episode, nil
}

func (r *EpisodeRepository) collect(rows pgx.Rows) ([]models.Episode, error) {
	defer rows.Close()
	var episodes []models.Episode
	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, episode)
	}
	return episodes, rows.Err()
}

func (r *EpisodeRepository) Create(ctx context.Context, episode models.Episode) error {
	const query = `
		INSERT INTO episodes (id, season_id, episode_number, title, video_embed_url, thumbnail_url, description, views, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, NOW())
	`
	_, err := r.pool.Exec(ctx, query,
		episode.ID,
		episode.SeasonID,
		episode.EpisodeNumber,
		episode.Title,
		episode.VideoEmbedURL,
		episode.ThumbnailURL,
		episode.Description,
	)
	return err
}

func (r *EpisodeRepository) GetByID(ctx context.Context, id string) (models.Episode, error) {
	const query = `SELECT ` + episodeColumns + ` FROM episodes WHERE id = $1`
	return scanEpisode(r.pool.QueryRow(ctx, query, id))
}

func (r *EpisodeRepository) ListBySeason(ctx context.Context, seasonID string) ([]models.Episode, error) {
	const query = `
		SELECT ` + episodeColumns + `
		FROM episodes
		WHERE season_id = $1
		ORDER BY episode_number ASC
	`
	rows, err := r.pool.Query(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *EpisodeRepository) Update(ctx context.Context, id string, episode models.Episode) error {
	const query = `
		UPDATE episodes
		SET episode_number = $2, title = $3, video_embed_url = $4, thumbnail_url = $5, description = $6
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id,
		episode.EpisodeNumber,
		episode.Title,
		episode.VideoEmbedURL,
		episode.ThumbnailURL,
		episode.Description,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrEpisodeNotFound
	}
	return nil
}

// Delete removes the episode together with its comments.
func (r *EpisodeRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE episode_id = $1`, id); err != nil {
		return err
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM episodes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrEpisodeNotFound
	}

	return tx.Commit(ctx)
}

// AddViews lands view-counter deltas flushed from the cache.
func (r *EpisodeRepository) AddViews(ctx context.Context, id string, delta int64) error {
	const query = `UPDATE episodes SET views = views + $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, delta)
	return err
}

func (r *EpisodeRepository) TopByViews(ctx context.Context, limit int) ([]models.Episode, error) {
	const query = `SELECT ` + episodeColumns + ` FROM episodes ORDER BY views DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *EpisodeRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM episodes`
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}
