package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"craigslist-property-parser/internal/config"
)

type Fetcher struct {
	client *http.Client
	cfg    *config.Config
	logger *slog.Logger
}

type FetchResponse struct {
	StatusCode int
	Body       []byte
	URL        string
}

func NewFetcher(cfg *config.Config, logger *slog.Logger) *Fetcher {
	// A zero total timeout keeps the client default: no deadline, a hung
	// server blocks the run.
	client := &http.Client{
		Timeout: cfg.GetTotalTimeout(),
	}

	return &Fetcher{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Fetch issues a GET with browser-like headers, retrying any failure with
// a fixed wait between attempts. Transport errors and non-2xx statuses are
// treated alike; after the last attempt the last failure is returned.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (*FetchResponse, error) {
	var lastErr error
	for attempt := 1; attempt <= f.cfg.HTTP.MaxAttempts; attempt++ {
		if attempt > 1 {
			f.logger.Warn("fetch attempt failed, retrying",
				"attempt", attempt-1,
				"max_attempts", f.cfg.HTTP.MaxAttempts,
				"wait", f.cfg.GetRetryWait(),
				"error", lastErr,
			)
			select {
			case <-time.After(f.cfg.GetRetryWait()):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := f.fetchOnce(ctx, urlStr)
		if err != nil {
			lastErr = err
			continue
		}
		return resp, nil
	}

	return nil, fmt.Errorf("fetch failed after %d attempts: %w", f.cfg.HTTP.MaxAttempts, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, urlStr string) (*FetchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.cfg.HTTP.UserAgent)
	req.Header.Set("Accept-Language", f.cfg.HTTP.AcceptLanguage)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.Warn("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, urlStr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &FetchResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		URL:        resp.Request.URL.String(),
	}, nil
}
