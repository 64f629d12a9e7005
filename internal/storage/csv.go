package storage

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"craigslist-property-parser/internal/scraper"
)

// csvHeader is the fixed column order of the output file.
var csvHeader = []string{"Title", "Price", "Location", "Bedrooms", "Link"}

// CSVWriter persists one run's listings, overwriting the previous file.
type CSVWriter struct {
	path   string
	logger *slog.Logger
}

func NewCSVWriter(path string, logger *slog.Logger) *CSVWriter {
	return &CSVWriter{
		path:   path,
		logger: logger,
	}
}

func (w *CSVWriter) Write(listings []scraper.Listing) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			w.logger.Warn("failed to close CSV file", "path", w.path, "error", closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, listing := range listings {
		row := []string{listing.Title, listing.Price, listing.Location, listing.Bedrooms, listing.Link}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	w.logger.Info("saved listings to CSV", "count", len(listings), "path", w.path)
	return nil
}
