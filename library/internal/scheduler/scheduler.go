// Package scheduler runs the periodic overdue fines sweep.
package scheduler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
)

const defaultJobTimeout = 5 * time.Minute

type FineCreator interface {
	DailyRate() decimal.Decimal
	AutoCreateOverdueFines(ctx context.Context, dailyRate decimal.Decimal) ([]model.Fine, error)
}

type Scheduler struct {
	cron       *cron.Cron
	fines      FineCreator
	log        *zap.Logger
	jobTimeout time.Duration
}

func New(fines FineCreator, log *zap.Logger) *Scheduler {
	log = log.Named("scheduler")
	cl := cronLogger{log: log.Sugar()}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		fines:      fines,
		log:        log,
		jobTimeout: defaultJobTimeout,
	}
}

// ScheduleOverdueFines registers the sweep under a standard five field cron spec.
func (s *Scheduler) ScheduleOverdueFines(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOverdueFines); err != nil {
		return errors.Wrapf(err, "schedule overdue fines %q", spec)
	}
	s.log.Info("overdue fines scheduled", zap.String("spec", spec))
	return nil
}

func (s *Scheduler) RunOverdueFines() {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	rate := s.fines.DailyRate()
	fines, err := s.fines.AutoCreateOverdueFines(ctx, rate)
	if err != nil {
		s.log.Error("overdue fines sweep", zap.Error(err))
		return
	}
	s.log.Info("overdue fines sweep done",
		zap.Int("created", len(fines)),
		zap.String("dailyRate", rate.String()))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
