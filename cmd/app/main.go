package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/andreyxaxa/Highlight-Generator/config"
	"github.com/andreyxaxa/Highlight-Generator/internal/app"
	"github.com/andreyxaxa/Highlight-Generator/migrations"
	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file loaded when present")
	migrateOnly := flag.Bool("migrate-only", false, "apply database migrations and exit")
	flag.Parse()

	// Config
	if _, err := os.Stat(*envFile); err == nil {
		err = godotenv.Load(*envFile)
		if err != nil {
			log.Fatalf("config error: %s", err)
		}
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	if *migrateOnly {
		if err := migrations.Up(context.Background(), cfg.PG.URL); err != nil {
			log.Fatalf("migrations error: %s", err)
		}

		return
	}

	// Run
	app.Run(cfg)
}
