package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"craigslist-property-parser/internal/config"
	"craigslist-property-parser/internal/scraper"
)

// maxChatListings caps how many records fit into one alert message.
const maxChatListings = 5

type TelegramNotifier struct {
	apiBase string
	creds   *config.Credentials
	client  *http.Client
	logger  *slog.Logger
}

type telegramPayload struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

func NewTelegramNotifier(apiBase string, creds *config.Credentials, logger *slog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		apiBase: strings.TrimRight(apiBase, "/"),
		creds:   creds,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Notify sends one bot message: a digest of the first listings, or a fixed
// "nothing found" note when the run came up empty.
func (n *TelegramNotifier) Notify(ctx context.Context, listings []scraper.Listing) error {
	payload := telegramPayload{
		ChatID:                n.creds.TelegramChatID,
		Text:                  buildChatMessage(listings),
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.creds.TelegramToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			n.logger.Warn("failed to close telegram response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, respBody)
	}

	n.logger.Info("telegram alert sent", "listings", len(listings))
	return nil
}

func buildChatMessage(listings []scraper.Listing) string {
	if len(listings) == 0 {
		return "⚠️ No properties found today"
	}

	var b strings.Builder
	b.WriteString("🏘️ <b>New Property Listings</b>\n\n")
	for i, listing := range listings {
		if i == maxChatListings {
			break
		}
		fmt.Fprintf(&b,
			"🏠 <b>%s</b>\n💵 %s | 🛏️ %s\n📍 %s\n🔗 <a href='%s'>View Listing</a>\n\n",
			listing.Title, listing.Price, listing.Bedrooms, listing.Location, listing.Link,
		)
	}
	return b.String()
}
