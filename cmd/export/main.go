package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dynamolab/dl-course-site/internal/config"
	"github.com/dynamolab/dl-course-site/internal/export"
	"github.com/dynamolab/dl-course-site/internal/logger"
	"github.com/dynamolab/dl-course-site/internal/site"
	"github.com/dynamolab/dl-course-site/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	outDir := flag.String("out", cfg.Site.ExportDir, "directory the static site is written to")
	assetsDir := flag.String("assets", cfg.Site.AssetsDir, "directory of static assets copied into the export")
	concurrency := flag.Int("concurrency", export.DefaultConcurrency, "number of files written in parallel")
	flag.Parse()

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *outDir, *assetsDir, *concurrency); err != nil {
		logger.Logger.Error("Export failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, outDir, assetsDir string, concurrency int) error {
	s, err := site.Load(ctx, cfg, logger.Logger)
	if err != nil {
		return err
	}
	defer s.Close()

	started := time.Now()
	result, err := export.New(s.Service, s.Renderer, logger.Logger).
		WithConcurrency(concurrency).
		Run(ctx, storage.NewLocalStorage(outDir), storage.NewLocalStorage(assetsDir))
	if err != nil {
		return err
	}

	logger.Logger.Info("Export finished",
		zap.String("out", outDir),
		zap.Int("pages", result.Pages),
		zap.Int("assets", result.Assets),
		zap.Strings("skipped", result.Skipped),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}
