package notify

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"craigslist-property-parser/internal/config"
	"craigslist-property-parser/internal/scraper"
)

// maxEmailListings caps the HTML table size.
const maxEmailListings = 10

type EmailNotifier struct {
	host   string
	port   int
	creds  *config.Credentials
	logger *slog.Logger
}

func NewEmailNotifier(host string, port int, creds *config.Credentials, logger *slog.Logger) *EmailNotifier {
	return &EmailNotifier{
		host:   host,
		port:   port,
		creds:  creds,
		logger: logger,
	}
}

// Notify sends an HTML digest of the first listings over one implicit-TLS
// SMTP session with PLAIN auth.
func (n *EmailNotifier) Notify(listings []scraper.Listing) error {
	message := n.buildMessage(listings)

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: n.host})
	if err != nil {
		return fmt.Errorf("smtp dial failed: %w", err)
	}

	client, err := smtp.NewClient(conn, n.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake failed: %w", err)
	}
	defer func() { _ = client.Close() }()

	auth := smtp.PlainAuth("", n.creds.EmailUser, n.creds.EmailPassword, n.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(n.creds.EmailUser); err != nil {
		return fmt.Errorf("smtp MAIL failed: %w", err)
	}
	if err := client.Rcpt(n.creds.EmailReceiver); err != nil {
		return fmt.Errorf("smtp RCPT failed: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish message body: %w", err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("smtp QUIT failed: %w", err)
	}

	n.logger.Info("email sent", "listings", len(listings), "to", n.creds.EmailReceiver)
	return nil
}

func (n *EmailNotifier) buildMessage(listings []scraper.Listing) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.creds.EmailUser)
	fmt.Fprintf(&b, "To: %s\r\n", n.creds.EmailReceiver)
	b.WriteString("Subject: New Property Listings\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(buildEmailHTML(listings))
	b.WriteString("\r\n")
	return []byte(b.String())
}

func buildEmailHTML(listings []scraper.Listing) string {
	var b strings.Builder
	b.WriteString(`<html><body><h2>New Property Listings</h2><table border="1">`)
	b.WriteString("<tr><th>Title</th><th>Price</th><th>Bedrooms</th><th>Location</th></tr>")
	for i, listing := range listings {
		if i == maxEmailListings {
			break
		}
		fmt.Fprintf(&b,
			`<tr><td><a href="%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td></tr>`,
			listing.Link, listing.Title, listing.Price, listing.Bedrooms, listing.Location,
		)
	}
	b.WriteString("</table></body></html>")
	return b.String()
}
