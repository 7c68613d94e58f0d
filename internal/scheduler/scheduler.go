package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper expires subscriptions whose schedule has run out
type Sweeper interface {
	ExpireDue(ctx context.Context) (int, error)
}

// Scheduler runs the expiry sweep on a cron schedule
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	log     *slog.Logger
	timeout time.Duration
}

// New registers the sweep under spec (standard 5-field cron syntax)
func New(spec string, sweeper Sweeper, log *slog.Logger) (*Scheduler, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweeper: sweeper,
		log:     log,
		timeout: 5 * time.Minute,
	}
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return nil, fmt.Errorf("invalid expiry cron %q: %w", spec, err)
	}
	return s, nil
}

// Run executes one sweep
func (s *Scheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.log.Info("Running subscription expiry sweep")
	expired, err := s.sweeper.ExpireDue(ctx)
	if err != nil {
		s.log.Error("Subscription expiry sweep finished with errors", "expired", expired, "error", err)
		return
	}
	s.log.Info("Subscription expiry sweep finished", "expired", expired)
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Expiry scheduler started", "entries", len(s.cron.Entries()))
}

// Stop waits for a running sweep to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
