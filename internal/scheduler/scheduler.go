package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler re-runs a single pipeline cycle on a fixed interval. A failed
// cycle is logged and the loop keeps going; recovery is the next run.
type Scheduler struct {
	run      func(context.Context) error
	interval time.Duration
	logger   *slog.Logger
}

// New creates a scheduler around one run function.
func New(run func(context.Context) error, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{run: run, interval: interval, logger: logger}
}

// Run starts the loop: one immediate cycle, then one per interval. It
// returns nil when ctx is cancelled (graceful shutdown).
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting scheduler", "interval", s.interval.String())

	s.cycle(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down scheduler")
			return nil
		case <-time.After(s.interval):
			s.cycle(ctx)
		}
	}
}

func (s *Scheduler) cycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.run(ctx); err != nil {
		s.logger.Error("run failed", "error", err)
	}
}
