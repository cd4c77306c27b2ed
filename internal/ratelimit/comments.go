package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CommentLimiter caps how many comments one user may post inside a
// sliding window, backed by a redis counter with the window as TTL.
type CommentLimiter struct {
	cache  *redis.Client
	limit  int
	window time.Duration
	log    zerolog.Logger
}

func NewCommentLimiter(cache *redis.Client, limit int, window time.Duration, log zerolog.Logger) *CommentLimiter {
	return &CommentLimiter{
		cache:  cache,
		limit:  limit,
		window: window,
		log:    log,
	}
}

// Allow counts one attempt for the user and reports whether it fits
// the window. When redis is unavailable the limiter fails open: a
// burst of comments is less harmful than a dead comment section.
func (l *CommentLimiter) Allow(ctx context.Context, userID string) bool {
	key := fmt.Sprintf("comments:rate:%s", userID)

	count, err := l.cache.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn().Err(err).Str("user_id", userID).Msg("comment limiter unavailable")
		return true
	}
	if count == 1 {
		if err := l.cache.Expire(ctx, key, l.window).Err(); err != nil {
			l.log.Warn().Err(err).Msg("comment limiter expire failed")
		}
	}

	return count <= int64(l.limit)
}
