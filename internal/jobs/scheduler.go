package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/VorteXchange1987/kinea-1/internal/service"
)

// Scheduler drains the buffered view counters into postgres on a fixed
// cadence.
type Scheduler struct {
	cron  *cron.Cron
	views *service.ViewCounter
	log   zerolog.Logger
}

func NewScheduler(views *service.ViewCounter, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds()),
		views: views,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 * * * * *", s.flushViews); err != nil { // every minute
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	// Flush once more so counts accumulated since the last tick are
	// not lost across a restart.
	s.cron.Stop()
	s.flushViews()
}

func (s *Scheduler) flushViews() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.views.Flush(ctx); err != nil {
		s.log.Error().Err(err).Msg("view counter flush failed")
	}
}
