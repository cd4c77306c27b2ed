package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/VorteXchange1987/kinea-1/internal/repository"
)

const (
	viewKeyPrefix = "views:count:"
	viewDirtySet  = "views:dirty"
)

// ViewCounter buffers episode view increments in redis and flushes the
// accumulated deltas into postgres on a schedule, keeping the hot watch
// path off the database.
type ViewCounter struct {
	cache    *redis.Client
	episodes *repository.EpisodeRepository
	log      zerolog.Logger
}

func NewViewCounter(cache *redis.Client, episodes *repository.EpisodeRepository, log zerolog.Logger) *ViewCounter {
	return &ViewCounter{
		cache:    cache,
		episodes: episodes,
		log:      log,
	}
}

// Bump counts one view. Counting is best effort: losing a view beats
// failing the watch request.
func (v *ViewCounter) Bump(ctx context.Context, episodeID string) {
	pipe := v.cache.TxPipeline()
	pipe.Incr(ctx, viewKeyPrefix+episodeID)
	pipe.SAdd(ctx, viewDirtySet, episodeID)
	if _, err := pipe.Exec(ctx); err != nil {
		v.log.Warn().Err(err).Str("episode_id", episodeID).Msg("view bump failed")
	}
}

// Pending returns the not-yet-flushed view delta for an episode.
func (v *ViewCounter) Pending(ctx context.Context, episodeID string) int64 {
	raw, err := v.cache.Get(ctx, viewKeyPrefix+episodeID).Result()
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Flush lands every dirty counter into postgres. Counters are consumed
// atomically (GETDEL), so a bump racing the flush lands next round.
func (v *ViewCounter) Flush(ctx context.Context) error {
	episodeIDs, err := v.cache.SMembers(ctx, viewDirtySet).Result()
	if err != nil {
		return fmt.Errorf("read dirty set: %w", err)
	}

	for _, id := range episodeIDs {
		raw, err := v.cache.GetDel(ctx, viewKeyPrefix+id).Result()
		if err == redis.Nil {
			v.cache.SRem(ctx, viewDirtySet, id)
			continue
		}
		if err != nil {
			v.log.Warn().Err(err).Str("episode_id", id).Msg("view counter read failed")
			continue
		}

		delta, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || delta == 0 {
			v.cache.SRem(ctx, viewDirtySet, id)
			continue
		}

		if err := v.episodes.AddViews(ctx, id, delta); err != nil {
			// Put the delta back so it is retried next flush.
			v.cache.IncrBy(ctx, viewKeyPrefix+id, delta)
			v.log.Error().Err(err).Str("episode_id", id).Msg("view flush failed")
			continue
		}
		v.cache.SRem(ctx, viewDirtySet, id)
	}

	return nil
}
