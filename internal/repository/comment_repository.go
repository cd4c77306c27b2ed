package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VorteXchange1987/kinea-1/internal/models"
)

var ErrCommentNotFound = errors.New("comment not found")

const commentColumns = `id, episode_id, user_id, username, user_profile_photo, user_role, content, parent_comment_id, likes, is_pinned, created_at`

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func scanComment(row pgx.Row) (models.Comment, error) {
	var comment models.Comment
	if err := row.Scan(
		&comment.ID,
		&comment.EpisodeID,
		&comment.UserID,
		&comment.Username,
		&comment.UserProfilePhoto,
		&comment.UserRole,
		&comment.Content,
		&comment.ParentCommentID,
		&comment.Likes,
		&comment.IsPinned,
		&comment.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		return models.Comment{}, err
	}
	return comment, nil
}

func (r *CommentRepository) collect(rows pgx.Rows) ([]models.Comment, error) {
	defer rows.Close()
	var comments []models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Create(ctx context.Context, comment models.Comment) error {
	const query = `
		INSERT INTO comments (id, episode_id, user_id, username, user_profile_photo, user_role, content, parent_comment_id, likes, is_pinned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, FALSE, NOW())
	`
	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.EpisodeID,
		comment.UserID,
		comment.Username,
		comment.UserProfilePhoto,
		comment.UserRole,
		comment.Content,
		comment.ParentCommentID,
	)
	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (models.Comment, error) {
	const query = `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return scanComment(r.pool.QueryRow(ctx, query, id))
}

// ListTopLevel returns an episode's root comments, pinned first, then
// most liked.
func (r *CommentRepository) ListTopLevel(ctx context.Context, episodeID string) ([]models.Comment, error) {
	const query = `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE episode_id = $1 AND parent_comment_id IS NULL
		ORDER BY is_pinned DESC, likes DESC, created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, episodeID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListReplies returns the direct replies of a comment, most liked
// first.
func (r *CommentRepository) ListReplies(ctx context.Context, parentID string) ([]models.Comment, error) {
	const query = `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE parent_comment_id = $1
		ORDER BY likes DESC, created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id string, content string) error {
	const query = `UPDATE comments SET content = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, content)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	const query = `UPDATE comments SET is_pinned = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, pinned)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment and its direct replies.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM comment_likes WHERE comment_id = $1 OR comment_id IN (SELECT id FROM comments WHERE parent_comment_id = $1)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE parent_comment_id = $1`, id); err != nil {
		return err
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrCommentNotFound
	}

	return tx.Commit(ctx)
}

// ToggleLike flips the user's like on a comment and adjusts the
// counter. It reports whether the comment ended up liked.
func (r *CommentRepository) ToggleLike(ctx context.Context, commentID, userID string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
	if err != nil {
		return false, err
	}

	liked := cmd.RowsAffected() == 0
	if liked {
		if _, err := tx.Exec(ctx, `INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)`, commentID, userID); err != nil {
			return false, err
		}
		if _, err := tx.Exec(ctx, `UPDATE comments SET likes = likes + 1 WHERE id = $1`, commentID); err != nil {
			return false, err
		}
	} else {
		if _, err := tx.Exec(ctx, `UPDATE comments SET likes = likes - 1 WHERE id = $1`, commentID); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return liked, nil
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments`
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	return count, err
}
