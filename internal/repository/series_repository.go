package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VorteXchange1987/kinea-1/internal/models"
)

var (
	ErrSeriesNotFound = errors.New("series not found")
	ErrSeasonNotFound = errors.New("season not found")
)

const seriesColumns = `id, title, description, poster_url, genre, created_by, created_at`

type SeriesRepository struct {
	pool *pgxpool.Pool
}

func NewSeriesRepository(pool *pgxpool.Pool) *SeriesRepository {
	return &SeriesRepository{pool: pool}
}

func scanSeries(row pgx.Row) (models.Series, error) {
	var series models.Series
	if err := row.Scan(
		&series.ID,
		&series.Title,
		&series.Description,
		&series.PosterURL,
		&series.Genre,
		&series.CreatedBy,
		&series.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Series{}, ErrSeriesNotFound
		}
		return models.Series{}, err
	}
	return series, nil
}

func (r *SeriesRepository) collectSeries(rows pgx.Rows) ([]models.Series, error) {
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

func (r *SeriesRepository) Create(ctx context.Context, series models.Series) error {
	const query = `
		INSERT INTO series (id, title, description, poster_url, genre, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.pool.Exec(ctx, query,
		series.ID,
		series.Title,
		series.Description,
		series.PosterURL,
		series.Genre,
		series.CreatedBy,
	)
	return err
}

func (r *SeriesRepository) List(ctx context.Context) ([]models.Series, error) {
	const query = `SELECT ` + seriesColumns + ` FROM series ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collectSeries(rows)
}

func (r *SeriesRepository) Search(ctx context.Context, q string) ([]models.Series, error) {
	const query = `
		SELECT ` + seriesColumns + `
		FROM series
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT 50
	`
	rows, err := r.pool.Query(ctx, query, q)
	if err != nil {
		return nil, err
	}
	return r.collectSeries(rows)
}

func (r *SeriesRepository) GetByID(ctx context.Context, id string) (models.Series, error) {
	const query = `SELECT ` + seriesColumns + ` FROM series WHERE id = $1`
	return scanSeries(r.pool.QueryRow(ctx, query, id))
}

func (r *SeriesRepository) Update(ctx context.Context, id string, series models.Series) error {
	const query = `
		UPDATE series
		SET title = $2, description = $3, poster_url = $4, genre = $5
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, series.Title, series.Description, series.PosterURL, series.Genre)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrSeriesNotFound
	}
	return nil
}

// Delete removes a series with its seasons, episodes and their
// comments in one transaction.
func (r *SeriesRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM comments WHERE episode_id IN (
			SELECT e.id FROM episodes e
			JOIN seasons s ON e.season_id = s.id
			WHERE s.series_id = $1
		)`,
		`DELETE FROM episodes WHERE season_id IN (SELECT id FROM seasons WHERE series_id = $1)`,
		`DELETE FROM seasons WHERE series_id = $1`,
		`DELETE FROM favorites WHERE series_id = $1`,
		`DELETE FROM series WHERE id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, id); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *SeriesRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM series`
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}

func scanSeason(row pgx.Row) (models.Season, error) {
	var season models.Season
	if err := row.Scan(
		&season.ID,
		&season.SeriesID,
		&season.SeasonNumber,
		&season.Title,
		&season.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Season{}, ErrSeasonNotFound
		}
		return models.Season{}, err
	}
	return season, nil
}

func (r *SeriesRepository) CreateSeason(ctx context.Context, season models.Season) error {
	const query = `
		INSERT INTO seasons (id, series_id, season_number, title, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.pool.Exec(ctx, query, season.ID, season.SeriesID, season.SeasonNumber, season.Title)
	return err
}

func (r *SeriesRepository) ListSeasons(ctx context.Context, seriesID string) ([]models.Season, error) {
	const query = `
		SELECT id, series_id, season_number, title, created_at
		FROM seasons
		WHERE series_id = $1
		ORDER BY season_number ASC
	`
	rows, err := r.pool.Query(ctx, query, seriesID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []models.Season
	for rows.Next() {
		season, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

func (r *SeriesRepository) UpdateSeason(ctx context.Context, id string, season models.Season) error {
	const query = `
		UPDATE seasons SET season_number = $2, title = $3 WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, season.SeasonNumber, season.Title)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrSeasonNotFound
	}
	return nil
}
