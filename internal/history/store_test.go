package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/filumlabs/painpoint-agent/internal/db"
	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func sampleRun() (*painpoint.Input, *engine.Output) {
	in := &painpoint.Input{
		PainPoint: painpoint.PainPoint{
			Description: "support team overwhelmed by repetitive tickets",
			Context: &painpoint.Context{
				Industry:    "retail",
				CompanySize: painpoint.SizeMedium,
				Urgency:     painpoint.UrgencyHigh,
			},
		},
	}
	out := &engine.Output{
		Analysis: engine.Analysis{Summary: "support overload"},
		Solutions: []engine.Solution{
			{ID: "solution_1", Name: "AI Inbox with Smart Routing Solution", RelevanceScore: 0.71},
		},
	}
	return in, out
}

func TestSaveAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	in, out := sampleRun()
	id, err := store.Save(ctx, in, out)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned empty id")
	}

	detail, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detail.Description != in.PainPoint.Description {
		t.Errorf("description = %q", detail.Description)
	}
	if detail.Industry != "retail" || detail.Urgency != "high" {
		t.Errorf("context columns = %q / %q", detail.Industry, detail.Urgency)
	}
	if detail.SolutionCount != 1 || detail.TopSolution != out.Solutions[0].Name {
		t.Errorf("summary columns = %d / %q", detail.SolutionCount, detail.TopSolution)
	}

	var storedOut engine.Output
	if err := json.Unmarshal(detail.Result, &storedOut); err != nil {
		t.Fatalf("stored result is not valid JSON: %v", err)
	}
	if storedOut.Solutions[0].RelevanceScore != 0.71 {
		t.Errorf("stored score = %v", storedOut.Solutions[0].RelevanceScore)
	}
}

func TestGetMissing(t *testing.T) {
	store := testStore(t)
	if _, err := store.GetByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID for missing record: err = %v, want ErrNotFound", err)
	}
}

func TestListFilters(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	in, out := sampleRun()
	if _, err := store.Save(ctx, in, out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	other, otherOut := sampleRun()
	other.PainPoint.Context.Industry = "banking"
	other.PainPoint.Context.Urgency = painpoint.UrgencyLow
	if _, err := store.Save(ctx, other, otherOut); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := store.List(ctx, QueryFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List returned %d records, want 2", len(all))
	}

	retail, err := store.List(ctx, QueryFilter{Industry: "retail"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(retail) != 1 || retail[0].Industry != "retail" {
		t.Errorf("industry filter returned %+v", retail)
	}

	urgent, err := store.List(ctx, QueryFilter{Urgency: "high"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(urgent) != 1 {
		t.Errorf("urgency filter returned %d records, want 1", len(urgent))
	}

	limited, err := store.List(ctx, QueryFilter{Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit filter returned %d records, want 1", len(limited))
	}
}

func TestDeleteBefore(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	in, out := sampleRun()
	if _, err := store.Save(ctx, in, out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	deleted, err := store.DeleteBefore(ctx, time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted %d records, want 1", deleted)
	}

	remaining, err := store.List(ctx, QueryFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("%d records remain after delete", len(remaining))
	}
}
