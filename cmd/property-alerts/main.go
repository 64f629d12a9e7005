package main

import (
	"log"
	"os"

	"craigslist-property-parser/internal/app"
	"craigslist-property-parser/internal/config"
	"craigslist-property-parser/internal/fetcher"
	"craigslist-property-parser/internal/notify"
	"craigslist-property-parser/internal/observability"
	"craigslist-property-parser/internal/scraper"
	"craigslist-property-parser/internal/storage"
)

func main() {
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		log.Fatalf("Failed to load credentials: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Observability)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	selectors, err := cfg.LoadTargetSelectors()
	if err != nil {
		logger.Error("failed to load selectors", "error", err)
		os.Exit(1)
	}

	f := fetcher.NewFetcher(cfg, logger)
	scr := scraper.NewScraper(selectors, logger)
	csv := storage.NewCSVWriter(cfg.Output.CSVPath, logger)
	telegram := notify.NewTelegramNotifier(cfg.Notify.TelegramAPIBase, creds, logger)

	// The email sink stays off until its credentials are configured.
	var email *notify.EmailNotifier
	if creds.EmailEnabled {
		email = notify.NewEmailNotifier(cfg.Notify.SMTPHost, cfg.Notify.SMTPPort, creds, logger)
	}

	orch := app.NewOrchestrator(cfg, logger, f, scr, csv, telegram, email)

	ctx, cancel := app.SignalContext(logger)
	defer cancel()

	if err := orch.Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
