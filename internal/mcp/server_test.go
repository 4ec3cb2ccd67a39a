package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/filumlabs/painpoint-agent/internal/catalog"
	"github.com/filumlabs/painpoint-agent/internal/engine"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	return NewServer(engine.New(cat), 0)
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("tool result content is %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"analyze_pain_point", analyzePainPointTool, "analyze_pain_point"},
		{"list_features", listFeaturesTool, "list_features"},
		{"get_feature", getFeatureTool, "get_feature"},
		{"explain_score", explainScoreTool, "explain_score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := testServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.maxResults != engine.DefaultMaxSolutions {
		t.Errorf("maxResults = %d, want default %d", srv.maxResults, engine.DefaultMaxSolutions)
	}
}

func TestHandleAnalyzePainPoint(t *testing.T) {
	srv := testServer(t)
	ctx := context.Background()

	t.Run("basic analysis", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"description": "our support team is overwhelmed by repetitive tickets and slow response time",
			"industry":    "retail",
			"urgency":     "high",
		}

		result, err := srv.handleAnalyzePainPoint(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := textContent(t, result)
		if !strings.Contains(text, "recommended_solutions") {
			t.Errorf("result missing solutions: %s", text)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleAnalyzePainPoint(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing description")
		}
	})

	t.Run("short description", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"description": "too short",
		}

		result, err := srv.handleAnalyzePainPoint(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for a description below the minimum length")
		}
	})
}

func TestHandleListFeatures(t *testing.T) {
	srv := testServer(t)
	ctx := context.Background()

	t.Run("all features", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleListFeatures(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if !strings.Contains(textContent(t, result), "acs_ai_inbox") {
			t.Error("listing missing a known feature id")
		}
	})

	t.Run("category filter", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"category": "VoC"}

		result, err := srv.handleListFeatures(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := textContent(t, result)
		if strings.Contains(text, "acs_ai_inbox") {
			t.Error("VoC filter leaked an AI Customer Service feature")
		}
	})
}

func TestHandleGetFeature(t *testing.T) {
	srv := testServer(t)
	ctx := context.Background()

	t.Run("known feature", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"feature_id": "acs_ai_inbox"}

		result, err := srv.handleGetFeature(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if !strings.Contains(textContent(t, result), "AI Inbox") {
			t.Error("feature detail missing the name")
		}
	})

	t.Run("unknown feature", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"feature_id": "no_such_feature"}

		result, err := srv.handleGetFeature(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown feature id")
		}
	})
}

func TestHandleExplainScore(t *testing.T) {
	srv := testServer(t)
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"description": "our support team is overwhelmed by repetitive tickets",
		"feature_id":  "acs_ai_inbox",
	}

	result, err := srv.handleExplainScore(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := textContent(t, result)
	for _, want := range []string{"pattern_signal", "total", "acs_ai_inbox"} {
		if !strings.Contains(text, want) {
			t.Errorf("breakdown missing %q: %s", want, text)
		}
	}
}
