package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sociopath-little-dragon/library-bd/library/config"
	"github.com/sociopath-little-dragon/library-bd/library/internal/handler"
	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository/stubs"
	"github.com/sociopath-little-dragon/library-bd/library/internal/scheduler"
	"github.com/sociopath-little-dragon/library-bd/library/internal/server"
	"github.com/sociopath-little-dragon/library-bd/library/internal/service"
	"github.com/sociopath-little-dragon/library-bd/library/migrations"
	"github.com/sociopath-little-dragon/library-bd/pkg/auth"
	cb "github.com/sociopath-little-dragon/library-bd/pkg/circuit_breaker"
	"github.com/sociopath-little-dragon/library-bd/pkg/kafka"
	"github.com/sociopath-little-dragon/library-bd/pkg/logger"
	"github.com/sociopath-little-dragon/library-bd/pkg/postgres"
)

const shutdownTimeout = 5 * time.Second

// CreateLibrarianRequest re-exports the internal model type for cmd/library.
type CreateLibrarianRequest = model.CreateLibrarianRequest

// Deps is the wired service layer shared by the server and the CLI jobs.
type Deps struct {
	Service *service.Service
	// Tokens is nil when no JWT secret is configured.
	Tokens  *auth.TokenManager
	closers []func() error
}

func (d *Deps) Close(log *zap.Logger) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Warn("close", zap.Error(err))
		}
	}
}

func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (*Deps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Deps{}

	repo, err := newRepository(ctx, cfg, log, d)
	if err != nil {
		d.Close(log)
		return nil, err
	}

	opts := []service.Option{service.WithDailyRate(cfg.Fines.DailyRate)}

	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			d.Close(log)
			return nil, errors.Wrap(err, "kafka.NewProducer")
		}
		enq := kafka.NewEnqueuer(producer, cb.New(cfg.Kafka.CircuitBreaker), log)
		d.closers = append(d.closers, enq.Close)
		opts = append(opts, service.WithPublisher(enq))
	} else {
		log.Info("kafka brokers are not configured, loan events are dropped")
	}

	if cfg.Auth.JWTSecret != "" {
		tokens, err := auth.NewTokenManager(cfg.Auth)
		if err != nil {
			d.Close(log)
			return nil, err
		}
		d.Tokens = tokens
		opts = append(opts, service.WithTokenIssuer(tokens))
	}

	d.Service = service.NewService(repo, log, opts...)
	return d, nil
}

func newRepository(ctx context.Context, cfg config.Config, log *zap.Logger, d *Deps) (repository.Repository, error) {
	if cfg.UseMockDB {
		log.Warn("using in-memory storage, data is lost on exit")
		return stubs.NewMockDB(), nil
	}
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, errors.Wrap(err, "db init")
	}
	d.closers = append(d.closers, db.Close)
	return repository.NewRepository(db, log)
}

// Run serves the HTTP API and the fines scheduler until ctx is done or a termination signal arrives.
func Run(ctx context.Context, cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	deps, err := Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close(log)
	if deps.Tokens == nil {
		return errors.Wrap(auth.ErrEmptySecret, "AUTH_JWT_SECRET")
	}

	svc := deps.Service
	h := handler.New(svc, svc, svc, svc, deps.Tokens, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	sched := scheduler.New(svc, log)
	if cfg.Fines.AutoEnabled {
		if err = sched.ScheduleOverdueFines(cfg.Fines.Schedule); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	sched.Start()
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := sched.Stop(closeCtx); err != nil {
			log.Warn("scheduler stop", zap.Error(err))
		}
		return srv.Stop(closeCtx)
	})

	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
