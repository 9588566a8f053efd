// Package jobs drives the platform's periodic work: deadline checks for
// active assessment cycles and the overdue todo sweep.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"perfreview/internal/domain/assessment"
	"perfreview/internal/platform/config"
)

type Service struct {
	Scheduler *assessment.Scheduler
	Cfg       config.Config
}

func New(scheduler *assessment.Scheduler, cfg config.Config) *Service {
	return &Service{Scheduler: scheduler, Cfg: cfg}
}

func (s *Service) Start(ctx context.Context) {
	if s.Cfg.DeadlineCheckInterval > 0 {
		go s.runDeadlineChecks(ctx, s.Cfg.DeadlineCheckInterval)
	}
	if s.Cfg.OverdueSweepInterval > 0 {
		go s.runOverdueSweeps(ctx, s.Cfg.OverdueSweepInterval)
	}
}

func (s *Service) runDeadlineChecks(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Scheduler.CheckDeadlines(ctx); err != nil {
				slog.Warn("deadline check failed", "err", err)
			}
		}
	}
}

func (s *Service) runOverdueSweeps(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Scheduler.SweepOverdueTodos(ctx); err != nil {
				slog.Warn("overdue todo sweep failed", "err", err)
			}
		}
	}
}
