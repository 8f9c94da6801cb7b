package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP            HTTP
		Log             Log
		Sentry          Sentry
		PG              PG
		Storage         Storage
		S3              S3
		GCS             GCS
		Kafka           Kafka
		KafkaController KafkaController
		OutboxRelay     OutboxRelay
		Worker          Worker
		Composer        Composer
		Schedule        Schedule
		OnDemand        OnDemand
		Auth            Auth
	}

	HTTP struct {
		Port           string        `env:"HTTP_PORT,required"`
		UsePreforkMode bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		BodyLimit      int           `env:"HTTP_BODY_LIMIT" envDefault:"12582912"`
		ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10m"` // /v1/generate answers after the whole render
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Sentry struct {
		DSN         string `env:"SENTRY_DSN"`
		Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"development"`
	}

	PG struct {
		PoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
		URL     string `env:"PG_URL,required,notEmpty"`
		Migrate bool   `env:"PG_MIGRATE" envDefault:"true"`
	}

	Storage struct {
		Backend string `env:"STORAGE_BACKEND" envDefault:"s3"` // s3 | gcs
		Bucket  string `env:"STORAGE_BUCKET,required,notEmpty"`
	}

	S3 struct {
		Endpoint        string        `env:"S3_ENDPOINT"`
		AccessKey       string        `env:"S3_ACCESS_KEY"`
		SecretKey       string        `env:"S3_SECRET_KEY"`
		Region          string        `env:"S3_REGION" envDefault:"us-east-1"`
		UsePathStyle    bool          `env:"S3_USE_PATH_STYLE" envDefault:"true"`
		SkipBucketCheck bool          `env:"S3_SKIP_BUCKET_CHECK" envDefault:"false"`
		CfgLoadTimeout  time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	GCS struct {
		Endpoint        string `env:"GCS_ENDPOINT"`
		CredentialsFile string `env:"GCS_CREDENTIALS_FILE"`
	}

	Kafka struct {
		Brokers []string `env:"KAFKA_BROKERS,required"`
		GroupID string   `env:"KAFKA_GROUP_ID" envDefault:"highlight-generator"`
		Topic   string   `env:"KAFKA_TOPIC,required"`
	}

	KafkaController struct {
		Workers         int           `env:"KAFKA_CONTROLLER_WORKERS"` // 0 = NumCPU
		CommitTimeout   time.Duration `env:"KAFKA_CONTROLLER_COMMIT_TIMEOUT" envDefault:"2s"`
		ProcessTimeout  time.Duration `env:"KAFKA_CONTROLLER_PROCESS_TIMEOUT" envDefault:"10m"`
		ShutdownTimeout time.Duration `env:"KAFKA_CONTROLLER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}

	OutboxRelay struct {
		PollInterval        time.Duration `env:"OUTBOX_RELAY_POLL_INTERVAL" envDefault:"2s"`
		MarkFailedInterval  time.Duration `env:"OUTBOX_RELAY_MARK_FAILED_INTERVAL" envDefault:"2m"`
		CleanupInterval     time.Duration `env:"OUTBOX_RELAY_CLEANUP_INTERVAL" envDefault:"24h"`
		Retention           time.Duration `env:"OUTBOX_RELAY_RETENTION" envDefault:"168h"`
		ProcessBatchTimeout time.Duration `env:"OUTBOX_RELAY_PROCESS_BATCH_TIMEOUT" envDefault:"15s"`
		ShutdownTimeout     time.Duration `env:"OUTBOX_RELAY_SHUTDOWN_TIMEOUT" envDefault:"5s"`
		BatchSize           int           `env:"OUTBOX_RELAY_BATCH_SIZE" envDefault:"100"`
		MaxRetries          int           `env:"OUTBOX_RELAY_MAX_RETRIES" envDefault:"3"`
	}

	Worker struct {
		ScratchRoot      string        `env:"WORKER_SCRATCH_ROOT" envDefault:"/tmp"`
		FetchParallelism int           `env:"WORKER_FETCH_PARALLELISM" envDefault:"4"`
		NormalizePhotos  bool          `env:"WORKER_NORMALIZE_PHOTOS" envDefault:"true"`
		RetryMax         uint64        `env:"WORKER_RETRY_MAX" envDefault:"3"`
		RetryInitial     time.Duration `env:"WORKER_RETRY_INITIAL" envDefault:"500ms"`
		RetryMaxInterval time.Duration `env:"WORKER_RETRY_MAX_INTERVAL" envDefault:"5s"`
	}

	Composer struct {
		Binary        string        `env:"COMPOSER_BINARY" envDefault:"ffmpeg"`
		Timeout       time.Duration `env:"COMPOSER_TIMEOUT" envDefault:"5m"`
		BrandingPath  string        `env:"COMPOSER_BRANDING_PATH"`
		BrandingText  string        `env:"COMPOSER_BRANDING_TEXT" envDefault:"Highlights"`
		ImageDuration time.Duration `env:"COMPOSER_IMAGE_DURATION" envDefault:"2s"`
	}

	Schedule struct {
		Cron       string        `env:"SCHEDULE_CRON" envDefault:"0 0 1 * *"`
		Timezone   string        `env:"SCHEDULE_TIMEZONE" envDefault:"Asia/Tokyo"`
		MinPhotos  int           `env:"SCHEDULE_MIN_PHOTOS" envDefault:"5"`
		RunTimeout time.Duration `env:"SCHEDULE_RUN_TIMEOUT" envDefault:"30m"`
	}

	OnDemand struct {
		MaxPhotos   int           `env:"ONDEMAND_MAX_PHOTOS" envDefault:"50"`
		MaxRange    time.Duration `env:"ONDEMAND_MAX_RANGE" envDefault:"2160h"`
		RatePerHour int           `env:"ONDEMAND_RATE_PER_HOUR" envDefault:"6"`
		Burst       int           `env:"ONDEMAND_BURST" envDefault:"3"`
	}

	Auth struct {
		JWTSecret string `env:"AUTH_JWT_SECRET,required,notEmpty"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "s3", "gcs":
	default:
		return fmt.Errorf("STORAGE_BACKEND must be s3 or gcs, got %q", c.Storage.Backend)
	}

	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("SCHEDULE_TIMEZONE: %w", err)
	}

	if c.Schedule.MinPhotos < 1 || c.OnDemand.MaxPhotos < c.Schedule.MinPhotos {
		return fmt.Errorf("photo bounds must satisfy 1 <= SCHEDULE_MIN_PHOTOS <= ONDEMAND_MAX_PHOTOS")
	}

	return nil
}
