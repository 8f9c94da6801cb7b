package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/internal/dto"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/go-co-op/gocron/v2"
)

// MonthlyRunner is the monthly trigger policy.
type MonthlyRunner interface {
	RunMonthly(ctx context.Context, now time.Time) (*dto.MonthlyReport, error)
}

// Scheduler fires the monthly trigger on a cron schedule.
type Scheduler struct {
	runner     MonthlyRunner
	logger     logger.Interface
	cron       string
	location   *time.Location
	runTimeout time.Duration

	ctx       context.Context
	cancel    context.CancelFunc
	scheduler gocron.Scheduler

	started atomic.Bool
}

func New(runner MonthlyRunner, l logger.Interface, cron string, loc *time.Location, runTimeout time.Duration) *Scheduler {
	return &Scheduler{
		runner:     runner,
		logger:     l,
		cron:       cron,
		location:   loc,
		runTimeout: runTimeout,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("Scheduler - Start - scheduler already started")
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(s.location))
	if err != nil {
		return fmt.Errorf("Scheduler - Start - gocron.NewScheduler: %w", err)
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	_, err = scheduler.NewJob(
		gocron.CronJob(s.cron, false),
		gocron.NewTask(func() {
			s.run(s.ctx, time.Now())
		}),
		gocron.WithName("monthly-highlights"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		s.cancel()
		_ = scheduler.Shutdown()

		return fmt.Errorf("Scheduler - Start - scheduler.NewJob: %w", err)
	}

	s.scheduler = scheduler
	s.scheduler.Start()

	s.logger.Info("monthly highlights scheduled: %q in %s", s.cron, s.location)

	return nil
}

func (s *Scheduler) run(ctx context.Context, now time.Time) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	started := time.Now()
	report, err := s.runner.RunMonthly(runCtx, now)
	if err != nil {
		s.logger.Error(err, "Scheduler - run - s.runner.RunMonthly")
	}
	if report == nil {
		return
	}

	s.logger.Info("monthly highlights %s: dispatched=%d existing=%d skipped=%d failed=%d in %s",
		report.Period, len(report.Dispatched), len(report.Existing), len(report.Skipped), len(report.Failed),
		time.Since(started).Round(time.Millisecond))
}

func (s *Scheduler) Shutdown(_ context.Context) error {
	if !s.started.Load() || s.scheduler == nil {
		return nil
	}

	s.cancel()

	err := s.scheduler.Shutdown()
	if err != nil {
		return fmt.Errorf("Scheduler - Shutdown - s.scheduler.Shutdown: %w", err)
	}

	return nil
}
