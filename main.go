package main

import (
	"os"
	"time"

	"olx-scraper/config"
	"olx-scraper/scraper/olx"
	"olx-scraper/services"
	"olx-scraper/storage"
	"olx-scraper/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.LogLevel)

	logger.Info("=== OLX Scraping System starting ===")
	logger.Info("config",
		"pages", cfg.PagesToCrawl,
		"concurrency", cfg.MaxConcurrency,
		"delay", cfg.RequestDelay,
		"nav_timeout", cfg.NavigationTimeout,
		"headless", cfg.Headless)

	csvSink, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("failed to create CSV sink", "err", err)
		os.Exit(1)
	}
	defer csvSink.Close()

	retry := &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	store, err := storage.NewPostgresWriter(cfg.DSN(), retry)
	if err != nil {
		logger.Error("failed to connect to PostgreSQL", "err", err)
		logger.Error("make sure Docker is running: docker compose up -d")
		os.Exit(1)
	}
	defer store.Close()

	scraper := olx.New(cfg, logger, csvSink)
	records, err := scraper.Crawl()
	if err != nil {
		// Candidate-level failures; the crawl itself already continued past
		// them, so they are reported and the successful records are kept.
		logger.Error("crawl finished with failed candidates", "err", err)
	}

	if len(records) == 0 {
		logger.Error("no records were collected, exiting")
		os.Exit(1)
	}

	logger.Info("raw records streamed to CSV", "count", len(records), "path", cfg.CSVOutputPath)

	cleaner := services.NewCleaner(logger)
	cleanRecords := cleaner.Clean(records)

	if len(cleanRecords) == 0 {
		logger.Error("all records were dropped during cleaning, exiting")
		os.Exit(1)
	}

	if err := store.WriteAll(cleanRecords); err != nil {
		logger.Error("PostgreSQL write failed", "err", err)
	} else {
		logger.Info("clean records stored in PostgreSQL", "table", "records", "count", len(cleanRecords))
	}

	dbRecords, err := store.FetchAll()
	if err != nil {
		logger.Error("failed to fetch records for the summary", "err", err)
		dbRecords = cleanRecords
	}

	reportSvc := services.NewReportService(logger)
	reportSvc.Print(reportSvc.Generate(dbRecords))
}
