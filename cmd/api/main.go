package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	app "github.com/mhkarimi/prospect-import/internal/application/prospect"
	"github.com/mhkarimi/prospect-import/internal/bootstrap"
	"github.com/mhkarimi/prospect-import/internal/infrastructure/blob"
	"github.com/mhkarimi/prospect-import/internal/infrastructure/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("failed to create pgx pool: %v", err)
	}
	defer pool.Close()

	blobs, err := blob.NewLocalStore(getEnv("CSV_FILES_PATH", "./csv_files"))
	if err != nil {
		log.Fatalf("failed to prepare csv file store: %v", err)
	}

	server := bootstrap.NewHTTPServer(db, blobs, app.IntakeConfig{
		MaxFileSize: int64(parseIntEnv("MAX_FILE_SIZE", app.DefaultMaxFileSize)),
	})

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	fileRepo := repository.NewProspectFileRepository(db)
	merger := repository.NewProspectMergeRepository(pool)

	worker := app.NewImportWorker(fileRepo, blobs, merger, app.ImportWorkerConfig{
		Workers:      parseIntEnv("IMPORT_WORKERS", 4),
		PollInterval: time.Duration(parseIntEnv("IMPORT_POLL_MS", 500)) * time.Millisecond,
		MaxRows:      int64(parseIntEnv("MAX_NUMBER_OF_ROWS", app.DefaultMaxRows)),
	})
	worker.Start(workerCtx)

	go func() {
		if err := server.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}

func parseIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
