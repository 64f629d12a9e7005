package app

import (
	"context"
	"log/slog"

	"craigslist-property-parser/internal/config"
	"craigslist-property-parser/internal/fetcher"
	"craigslist-property-parser/internal/notify"
	"craigslist-property-parser/internal/scraper"
	"craigslist-property-parser/internal/storage"
)

type Orchestrator struct {
	cfg      *config.Config
	logger   *slog.Logger
	fetcher  *fetcher.Fetcher
	scraper  *scraper.Scraper
	csv      *storage.CSVWriter
	telegram *notify.TelegramNotifier
	email    *notify.EmailNotifier // nil when the email sink is disabled
}

func NewOrchestrator(
	cfg *config.Config,
	logger *slog.Logger,
	f *fetcher.Fetcher,
	s *scraper.Scraper,
	csv *storage.CSVWriter,
	telegram *notify.TelegramNotifier,
	email *notify.EmailNotifier,
) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		logger:   logger,
		fetcher:  f,
		scraper:  s,
		csv:      csv,
		telegram: telegram,
		email:    email,
	}
}

// Run performs one scrape-and-notify pass: fetch, extract, then feed every
// sink the same record list. Zero extracted records is not an error; the
// sinks are skipped. A sink failure stops the run where it happened,
// without undoing earlier sink effects.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.logger.Info("starting run", "url", o.cfg.Target.URL)

	resp, err := o.fetcher.Fetch(ctx, o.cfg.Target.URL)
	if err != nil {
		o.logger.Error("scraping failed", "url", o.cfg.Target.URL, "error", err)
		return err
	}

	listings, err := o.scraper.Extract(string(resp.Body), o.cfg.Target.URL)
	if err != nil {
		o.logger.Error("extraction failed", "error", err)
		return err
	}
	o.logger.Info("found properties", "count", len(listings))

	if len(listings) == 0 {
		o.logger.Warn("no properties scraped")
		return nil
	}

	if err := o.csv.Write(listings); err != nil {
		o.logger.Error("failed to save CSV", "error", err)
		return err
	}

	if err := o.telegram.Notify(ctx, listings); err != nil {
		o.logger.Error("failed to send telegram alert", "error", err)
		return err
	}

	if o.email != nil {
		if err := o.email.Notify(listings); err != nil {
			o.logger.Error("failed to send email", "error", err)
			return err
		}
	}

	o.logger.Info("run completed", "listings", len(listings))
	return nil
}
