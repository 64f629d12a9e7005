package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validSelectorsYAML = `
node_selectors:
  - "li.cl-static-search-result"
  - "div.result-row"
  - "div.cl-search-result"
title_selector: "div.title"
price_selector: "div.price"
location_selector: "div.location"
bedroom_selectors:
  - "span.housing"
  - "span.bedrooms"
`

func TestLoadSelectorsKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	if err := os.WriteFile(path, []byte(validSelectorsYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	selectors, err := LoadSelectors(path)
	if err != nil {
		t.Fatalf("LoadSelectors() error = %v", err)
	}

	want := []string{"li.cl-static-search-result", "div.result-row", "div.cl-search-result"}
	if len(selectors.NodeSelectors) != len(want) {
		t.Fatalf("got %d node selectors, want %d", len(selectors.NodeSelectors), len(want))
	}
	for i, selector := range want {
		if selectors.NodeSelectors[i] != selector {
			t.Errorf("NodeSelectors[%d] = %q, want %q (order matters)", i, selectors.NodeSelectors[i], selector)
		}
	}
	if len(selectors.BedroomSelectors) != 2 || selectors.BedroomSelectors[0] != "span.housing" {
		t.Errorf("BedroomSelectors = %v", selectors.BedroomSelectors)
	}
}

func TestLoadSelectorsRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	if err := os.WriteFile(path, []byte("title_selector: \"div.title\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSelectors(path); err == nil {
		t.Fatal("LoadSelectors() should reject a file without node_selectors")
	}
}

func TestLoadSelectorsMissingFile(t *testing.T) {
	if _, err := LoadSelectors(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadSelectors() should fail for a missing file")
	}
}
