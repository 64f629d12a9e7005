package scraper

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Scraper struct {
	selectors *Selectors
	logger    *slog.Logger
}

func NewScraper(selectors *Selectors, logger *slog.Logger) *Scraper {
	return &Scraper{
		selectors: selectors,
		logger:    logger,
	}
}

// Extract parses the search results page and returns the listings in
// document order. A node that fails to extract is logged and skipped; it
// never aborts the batch. The error return covers only an unreadable
// document.
func (s *Scraper) Extract(html string, pageURL string) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	nodes := s.findListingNodes(doc)
	if nodes == nil {
		return nil, nil
	}

	listings := make([]Listing, 0, nodes.Length())
	nodes.Each(func(i int, sel *goquery.Selection) {
		listing, err := safeExtract(sel, pageURL, s.extractListing)
		if err != nil {
			s.logger.Warn("error processing listing node", "index", i, "error", err)
			return
		}
		listing.SequenceNum = len(listings)
		listings = append(listings, listing)
	})

	return listings, nil
}

// findListingNodes applies the fallback chain: first selector with at
// least one match wins, later strategies are never tried, no merging.
func (s *Scraper) findListingNodes(doc *goquery.Document) *goquery.Selection {
	for _, selector := range s.selectors.NodeSelectors {
		nodes := doc.Find(selector)
		if nodes.Length() > 0 {
			return nodes
		}
	}
	return nil
}

type extractFunc func(*goquery.Selection, string) Listing

// safeExtract is the per-node failure boundary: a panic while pulling
// fields out of one node becomes an error for that node alone.
func safeExtract(sel *goquery.Selection, pageURL string, fn extractFunc) (listing Listing, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listing extraction panicked: %v", r)
		}
	}()
	return fn(sel, pageURL), nil
}

func (s *Scraper) extractListing(sel *goquery.Selection, pageURL string) Listing {
	listing := Listing{
		Title:    fieldText(sel, s.selectors.TitleSelector),
		Price:    fieldText(sel, s.selectors.PriceSelector),
		Location: fieldText(sel, s.selectors.LocationSelector),
		Bedrooms: firstFieldText(sel, s.selectors.BedroomSelectors),
	}

	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		listing.Link = joinLink(pageURL, href)
	}

	return listing
}

func fieldText(sel *goquery.Selection, selector string) string {
	node := sel.Find(selector).First()
	if node.Length() == 0 {
		return Sentinel
	}
	return strings.TrimSpace(node.Text())
}

func firstFieldText(sel *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		node := sel.Find(selector).First()
		if node.Length() > 0 {
			return strings.TrimSpace(node.Text())
		}
	}
	return Sentinel
}

// joinLink glues a relative href onto the page URL by plain concatenation.
// Not path-aware resolution: the target site's hrefs start with "/" and
// downstream consumers expect this exact shape.
func joinLink(pageURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return pageURL + href
}
