package config

import (
	"errors"
	"testing"
	"time"

	"github.com/andreyxaxa/Highlight-Generator/pkg/types/errs"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PG_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("STORAGE_BUCKET", "media")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("KAFKA_TOPIC", "highlights")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
}

func TestNewDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Kafka.Brokers) != 2 {
		t.Errorf("brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Schedule.Cron != "0 0 1 * *" || cfg.Schedule.Timezone != "Asia/Tokyo" || cfg.Schedule.MinPhotos != 5 {
		t.Errorf("schedule = %+v", cfg.Schedule)
	}
	if cfg.OnDemand.MaxRange != 90*24*time.Hour || cfg.OnDemand.MaxPhotos != 50 {
		t.Errorf("on-demand = %+v", cfg.OnDemand)
	}
	if cfg.Storage.Backend != "s3" || cfg.Composer.Timeout != 5*time.Minute {
		t.Errorf("storage = %+v, composer = %+v", cfg.Storage, cfg.Composer)
	}
}

func TestNewMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := New()
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_BACKEND", "azure")

	_, err := New()
	if !errors.Is(err, errs.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}
