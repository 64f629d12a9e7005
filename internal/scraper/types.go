package scraper

// Sentinel is recorded for a field whose element is missing in the markup.
const Sentinel = "N/A"

// Listing is one property entry from the search results page. Fields that
// could not be located hold Sentinel; Link stays empty when the node has no
// anchor.
type Listing struct {
	Title       string
	Price       string
	Location    string
	Bedrooms    string
	Link        string
	SequenceNum int
}

// Selectors describes how listing nodes and their fields are located.
// NodeSelectors is an ordered fallback chain over container markup
// conventions: the first selector matching at least one node wins and the
// rest are never consulted.
type Selectors struct {
	NodeSelectors    []string `yaml:"node_selectors"`
	TitleSelector    string   `yaml:"title_selector"`
	PriceSelector    string   `yaml:"price_selector"`
	LocationSelector string   `yaml:"location_selector"`
	BedroomSelectors []string `yaml:"bedroom_selectors"`
}
