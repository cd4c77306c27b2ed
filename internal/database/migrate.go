package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the schema if it does not exist yet. Statements
// are idempotent, so running them on every startup is safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username VARCHAR(30) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash BYTEA NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'USER',
			profile_photo_url TEXT,
			is_banned BOOLEAN NOT NULL DEFAULT FALSE,
			is_super_admin BOOLEAN NOT NULL DEFAULT FALSE,
			ip_address TEXT,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS series (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			poster_url TEXT NOT NULL DEFAULT '',
			genre TEXT,
			created_by TEXT NOT NULL REFERENCES users(id),
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS seasons (
			id TEXT PRIMARY KEY,
			series_id TEXT NOT NULL REFERENCES series(id) ON DELETE CASCADE,
			season_number INTEGER NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS episodes (
			id TEXT PRIMARY KEY,
			season_id TEXT NOT NULL REFERENCES seasons(id) ON DELETE CASCADE,
			episode_number INTEGER NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			video_embed_url TEXT NOT NULL,
			thumbnail_url TEXT,
			description TEXT,
			views BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			episode_id TEXT NOT NULL REFERENCES episodes(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL REFERENCES users(id),
			username TEXT NOT NULL,
			user_profile_photo TEXT,
			user_role VARCHAR(20) NOT NULL DEFAULT 'USER',
			content TEXT NOT NULL,
			parent_comment_id TEXT REFERENCES comments(id),
			likes INTEGER NOT NULL DEFAULT 0,
			is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS comment_likes (
			comment_id TEXT NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (comment_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			series_id TEXT NOT NULL REFERENCES series(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, series_id)
		)`,
		`CREATE TABLE IF NOT EXISTS ads (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_seasons_series ON seasons(series_id)`,
		`CREATE INDEX IF NOT EXISTS idx_episodes_season ON episodes(season_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_episode ON comments(episode_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_comment_id)`,
	}

	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
