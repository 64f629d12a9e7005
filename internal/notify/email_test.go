package notify

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"craigslist-property-parser/internal/config"
)

func TestBuildEmailHTMLCapsAtTen(t *testing.T) {
	got := buildEmailHTML(sampleListings(12))

	for i := 1; i <= 10; i++ {
		if !strings.Contains(got, fmt.Sprintf("House %d", i)) {
			t.Errorf("table should embed listing %d", i)
		}
	}
	if strings.Contains(got, "House 11") || strings.Contains(got, "House 12") {
		t.Error("table should stop at the first 10 listings")
	}
}

func TestBuildEmailHTMLTitleIsHyperlink(t *testing.T) {
	got := buildEmailHTML(sampleListings(1))

	if !strings.Contains(got, `<a href="https://example.com/post/1">House 1</a>`) {
		t.Errorf("title should be a hyperlink to the listing: %q", got)
	}
	if !strings.Contains(got, "<tr><th>Title</th><th>Price</th><th>Bedrooms</th><th>Location</th></tr>") {
		t.Errorf("table header missing: %q", got)
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	creds := &config.Credentials{
		EmailUser:     "sender@example.com",
		EmailPassword: "secret",
		EmailReceiver: "receiver@example.com",
	}
	notifier := NewEmailNotifier("smtp.example.com", 465, creds, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got := string(notifier.buildMessage(sampleListings(1)))

	for _, want := range []string{
		"From: sender@example.com\r\n",
		"To: receiver@example.com\r\n",
		"Subject: New Property Listings\r\n",
		"Content-Type: text/html; charset=\"UTF-8\"\r\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("message missing header %q", want)
		}
	}

	headerEnd := strings.Index(got, "\r\n\r\n")
	if headerEnd < 0 {
		t.Fatal("message has no header/body separator")
	}
	if !strings.HasPrefix(got[headerEnd+4:], "<html>") {
		t.Errorf("body should start with the HTML document")
	}
}
