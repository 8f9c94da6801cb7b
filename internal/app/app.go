package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/config"
	kafkactrl "github.com/andreyxaxa/Highlight-Generator/internal/controller/kafka"
	"github.com/andreyxaxa/Highlight-Generator/internal/controller/restapi"
	"github.com/andreyxaxa/Highlight-Generator/internal/controller/scheduler"
	"github.com/andreyxaxa/Highlight-Generator/internal/controller/worker/outbox"
	"github.com/andreyxaxa/Highlight-Generator/internal/infrastructure/composer"
	infrakafka "github.com/andreyxaxa/Highlight-Generator/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Highlight-Generator/internal/infrastructure/processor"
	"github.com/andreyxaxa/Highlight-Generator/internal/repo/persistent"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase/generation"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase/highlight"
	outboxuc "github.com/andreyxaxa/Highlight-Generator/internal/usecase/outbox"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase/photo"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase/streak"
	"github.com/andreyxaxa/Highlight-Generator/internal/usecase/transfer"
	"github.com/andreyxaxa/Highlight-Generator/migrations"
	"github.com/andreyxaxa/Highlight-Generator/pkg/httpserver"
	"github.com/andreyxaxa/Highlight-Generator/pkg/kafka/consumer"
	"github.com/andreyxaxa/Highlight-Generator/pkg/kafka/producer"
	"github.com/andreyxaxa/Highlight-Generator/pkg/logger"
	"github.com/andreyxaxa/Highlight-Generator/pkg/postgres"
	"github.com/andreyxaxa/Highlight-Generator/pkg/ratelimit"
	"github.com/andreyxaxa/Highlight-Generator/pkg/retry"
	"github.com/getsentry/sentry-go"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sentry
	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		})
		if err != nil {
			logger.New(cfg.Log.Level).Fatal(fmt.Errorf("app - Run - sentry.Init: %w", err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Logger
	l := logger.New(cfg.Log.Level, logger.WithSentry(cfg.Sentry.DSN != ""))

	// Repository

	// migrations
	if cfg.PG.Migrate {
		err := migrations.Up(ctx, cfg.PG.URL)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - migrations.Up: %w", err))
		}
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	// object store
	store, closeStore, err := newObjectStore(ctx, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newObjectStore: %w", err))
	}
	defer closeStore()

	photoRepo := persistent.NewPhotoRepo(pg)
	highlightRepo := persistent.NewHighlightRepo(pg)
	statsRepo := persistent.NewStatsRepo(pg)
	outboxRepo := persistent.NewOutboxRepo(pg)

	// Infrastructure
	imageProcessor := processor.New()

	brandingPath := cfg.Composer.BrandingPath
	if brandingPath == "" {
		brandingPath = filepath.Join(cfg.Worker.ScratchRoot, "branding.png")
		err = imageProcessor.RenderBadge(cfg.Composer.BrandingText, brandingPath)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - imageProcessor.RenderBadge: %w", err))
		}
	}

	ffmpeg := composer.New(
		composer.Binary(cfg.Composer.Binary),
		composer.Timeout(cfg.Composer.Timeout),
		composer.BrandingAsset(brandingPath),
		composer.ImageDuration(cfg.Composer.ImageDuration),
	)
	err = ffmpeg.AssertReady()
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - ffmpeg.AssertReady: %w", err))
	}

	// Use-Case
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Worker.RetryMax
	retryCfg.InitialInterval = cfg.Worker.RetryInitial
	retryCfg.MaxInterval = cfg.Worker.RetryMaxInterval

	generationUseCase := generation.New(
		transfer.New(store, l, retryCfg),
		ffmpeg,
		imageProcessor,
		highlightRepo,
		l,
		generation.ScratchRoot(cfg.Worker.ScratchRoot),
		generation.FetchParallelism(cfg.Worker.FetchParallelism),
		generation.NormalizePhotos(cfg.Worker.NormalizePhotos),
	)

	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - time.LoadLocation: %w", err))
	}

	highlightUseCase := highlight.New(
		photoRepo,
		highlightRepo,
		outboxRepo,
		pg,
		store,
		l,
		highlight.Location(loc),
		highlight.PhotoBounds(cfg.Schedule.MinPhotos, cfg.OnDemand.MaxPhotos),
		highlight.MaxRange(cfg.OnDemand.MaxRange),
		highlight.Limiter(ratelimit.NewInMemoryLimiter(cfg.OnDemand.RatePerHour, time.Hour, cfg.OnDemand.Burst)),
	)

	photoUseCase := photo.New(store, photoRepo, streak.New(statsRepo, time.Now), pg, l)

	outboxUseCase := outboxuc.New(outboxRepo, pg, l)

	// Kafka Producer
	kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - producer.New: %w", err))
	}

	// Outbox Relay Worker
	outboxRelayWorker := outbox.New(
		outboxUseCase,
		infrakafka.NewEventProducer(kafkaProducer, cfg.Kafka.Topic),
		l,
		outbox.Config{
			PollInterval:        cfg.OutboxRelay.PollInterval,
			CleanupInterval:     cfg.OutboxRelay.CleanupInterval,
			MarkFailedInterval:  cfg.OutboxRelay.MarkFailedInterval,
			ProcessBatchTimeout: cfg.OutboxRelay.ProcessBatchTimeout,
			Retention:           cfg.OutboxRelay.Retention,
			BatchSize:           cfg.OutboxRelay.BatchSize,
			MaxRetries:          cfg.OutboxRelay.MaxRetries,
		},
	)

	// Kafka Consumer
	kafkaConsumer, err := consumer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - consumer.New: %w", err))
	}

	workers := cfg.KafkaController.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Kafka as Controller
	kafkaController := kafkactrl.New(
		generationUseCase,
		infrakafka.NewEventConsumer(kafkaConsumer),
		l,
		cfg.KafkaController.CommitTimeout,
		cfg.KafkaController.ProcessTimeout,
		workers,
	)

	// Monthly Scheduler
	monthlyScheduler := scheduler.New(highlightUseCase, l, cfg.Schedule.Cron, loc, cfg.Schedule.RunTimeout)

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
	)
	restapi.NewRouter(httpServer.App, []byte(cfg.Auth.JWTSecret), generationUseCase, highlightUseCase, photoUseCase, l)

	// Start Components
	err = outboxRelayWorker.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - outboxRelayWorker.Start: %w", err))
	}
	err = kafkaController.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - kafkaController.Start: %w", err))
	}
	err = monthlyScheduler.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - monthlyScheduler.Start: %w", err))
	}
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	err = monthlyScheduler.Shutdown(ctx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - monthlyScheduler.Shutdown: %w", err))
	}

	orlShutdownCtx, orlShutdownCancel := context.WithTimeout(ctx, cfg.OutboxRelay.ShutdownTimeout)
	defer orlShutdownCancel()
	err = outboxRelayWorker.Shutdown(orlShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - outboxRelayWorker.Shutdown: %w", err))
	}

	kcShutdownCtx, kcShutdownCancel := context.WithTimeout(ctx, cfg.KafkaController.ShutdownTimeout)
	defer kcShutdownCancel()
	err = kafkaController.Shutdown(kcShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - kafkaController.Shutdown: %w", err))
	}
}
