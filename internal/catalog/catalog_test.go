package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog has no features")
	}

	// Every pillar should be represented in the shipped knowledge base.
	categories := make(map[Category]bool)
	for _, e := range c.Features {
		categories[e.Category] = true
	}
	for _, want := range []Category{CategoryVoC, CategoryAICustomerService, CategoryInsights, CategoryCustomer360, CategoryAIAutomation} {
		if !categories[want] {
			t.Errorf("embedded catalog missing category %q", want)
		}
	}
}

func TestParseValid(t *testing.T) {
	data := []byte(`{
		"features": [{
			"feature_id": "f1",
			"feature_name": "Test Feature",
			"category": "VoC",
			"description": {"short": "does a thing", "detailed": "does a thing in detail"},
			"implementation": {"complexity": "low", "setup_time": "1 week"}
		}]
	}`)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if got := c.FindByID("f1"); got == nil || got.Name != "Test Feature" {
		t.Errorf("FindByID(f1) = %+v", got)
	}
	if c.FindByID("absent") != nil {
		t.Error("FindByID(absent) should be nil")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"features": [`},
		{"no features", `{"features": []}`},
		{"missing id", `{"features": [{"feature_name": "x", "category": "VoC", "description": {"short": "s", "detailed": "d"}, "implementation": {"complexity": "low"}}]}`},
		{"missing name", `{"features": [{"feature_id": "f1", "category": "VoC", "description": {"short": "s", "detailed": "d"}, "implementation": {"complexity": "low"}}]}`},
		{"bad category", `{"features": [{"feature_id": "f1", "feature_name": "x", "category": "Nope", "description": {"short": "s", "detailed": "d"}, "implementation": {"complexity": "low"}}]}`},
		{"bad complexity", `{"features": [{"feature_id": "f1", "feature_name": "x", "category": "VoC", "description": {"short": "s", "detailed": "d"}, "implementation": {"complexity": "extreme"}}]}`},
		{"duplicate id", `{"features": [
			{"feature_id": "f1", "feature_name": "x", "category": "VoC", "description": {"short": "s", "detailed": "d"}, "implementation": {"complexity": "low"}},
			{"feature_id": "f1", "feature_name": "y", "category": "VoC", "description": {"short": "s", "detailed": "d"}, "implementation": {"complexity": "low"}}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() = nil error, want LoadError")
			}
			var lerr *LoadError
			if !errors.As(err, &lerr) {
				t.Errorf("error type = %T, want *LoadError", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.json")
	if err := os.WriteFile(path, defaultCatalog, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Len() == 0 {
		t.Error("loaded catalog is empty")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("error type = %T, want *LoadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadError should wrap os.ErrNotExist, got %v", err)
	}
}
