package painpoint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func validInput() *Input {
	return &Input{
		PainPoint: PainPoint{
			Description: "Support agents are overwhelmed by repetitive questions",
			Context: &Context{
				Industry:    "SaaS",
				CompanySize: SizeLarge,
				Urgency:     UrgencyHigh,
			},
			AffectedAreas: []string{"customer_service"},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := validInput().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateNoContext(t *testing.T) {
	in := &Input{PainPoint: PainPoint{Description: "a perfectly reasonable description"}}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() without context = %v, want nil", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"missing description", func(in *Input) { in.PainPoint.Description = "" }},
		{"whitespace description", func(in *Input) { in.PainPoint.Description = "   \t  " }},
		{"short description", func(in *Input) { in.PainPoint.Description = "too short" }},
		{"bad company size", func(in *Input) { in.PainPoint.Context.CompanySize = "gigantic" }},
		{"bad urgency", func(in *Input) { in.PainPoint.Context.Urgency = "critical" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := in.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want ValidationError")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if len(verr.Problems) == 0 {
				t.Error("ValidationError has no problems listed")
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	in := validInput()
	in.PainPoint.Description = "short"
	in.PainPoint.Context.Urgency = "critical"

	err := in.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if len(verr.Problems) != 2 {
		t.Errorf("got %d problems, want 2: %v", len(verr.Problems), verr.Problems)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"pain_point": {
			"description": "We have difficulty collecting customer feedback after purchase",
			"context": {"industry": "E-commerce", "company_size": "medium", "urgency_level": "high"},
			"affected_areas": ["customer_service", "marketing"]
		}
	}`)

	in, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if in.PainPoint.Context.CompanySize != SizeMedium {
		t.Errorf("company size = %q, want medium", in.PainPoint.Context.CompanySize)
	}
	if len(in.PainPoint.AffectedAreas) != 2 {
		t.Errorf("affected areas = %v, want 2 entries", in.PainPoint.AffectedAreas)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"pain_point": `))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestParseShortDescription(t *testing.T) {
	_, err := Parse([]byte(`{"pain_point": {"description": "too short"}}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "input.json")

	original := validInput()
	if err := original.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.PainPoint.Description != original.PainPoint.Description {
		t.Errorf("description round-trip mismatch: %q", loaded.PainPoint.Description)
	}
	if loaded.PainPoint.Context.Urgency != UrgencyHigh {
		t.Errorf("urgency = %q, want high", loaded.PainPoint.Context.Urgency)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Load() on missing file returned nil error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}
