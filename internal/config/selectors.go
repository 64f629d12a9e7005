package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"craigslist-property-parser/internal/scraper"
)

// LoadSelectors reads the selector strategies for the target site from a
// YAML file. The order of node_selectors is significant: strategies are
// tried in order and the first one that matches wins.
func LoadSelectors(filePath string) (*scraper.Selectors, error) {
	if filePath == "" {
		return nil, fmt.Errorf("selectors file path is empty")
	}

	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("selectors file not found: %s: %w", filePath, err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open selectors file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close selectors file: %v\n", closeErr)
		}
	}()

	var selectors scraper.Selectors
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&selectors); err != nil {
		return nil, fmt.Errorf("failed to parse selectors YAML: %w", err)
	}

	if err := validateSelectors(&selectors); err != nil {
		return nil, err
	}

	return &selectors, nil
}

// LoadTargetSelectors resolves the selectors file from the config. A
// relative path is taken relative to the configs directory.
func (c *Config) LoadTargetSelectors() (*scraper.Selectors, error) {
	filePath := c.Target.SelectorsFile
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join("configs", filePath)
	}
	return LoadSelectors(filePath)
}

func validateSelectors(s *scraper.Selectors) error {
	if len(s.NodeSelectors) == 0 {
		return fmt.Errorf("node_selectors is required")
	}
	if s.TitleSelector == "" {
		return fmt.Errorf("title_selector is required")
	}
	if s.PriceSelector == "" {
		return fmt.Errorf("price_selector is required")
	}
	if s.LocationSelector == "" {
		return fmt.Errorf("location_selector is required")
	}
	if len(s.BedroomSelectors) == 0 {
		return fmt.Errorf("bedroom_selectors is required")
	}
	return nil
}
