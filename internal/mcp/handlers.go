package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/filumlabs/painpoint-agent/internal/painpoint"
)

func (s *Server) handleAnalyzePainPoint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: description"), nil
	}

	in := &painpoint.Input{
		PainPoint: painpoint.PainPoint{Description: description},
	}

	industry := request.GetString("industry", "")
	companySize := request.GetString("company_size", "")
	urgency := request.GetString("urgency", "")
	if industry != "" || companySize != "" || urgency != "" {
		in.PainPoint.Context = &painpoint.Context{
			Industry:    industry,
			CompanySize: painpoint.CompanySize(companySize),
			Urgency:     painpoint.Urgency(urgency),
		}
	}

	maxResults := request.GetInt("max_solutions", s.maxResults)
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	out, err := s.engine.Analyze(in, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleListFeatures(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cat := s.engine.Catalog()
	if cat == nil || cat.Len() == 0 {
		return mcp.NewToolResultError("knowledge base not loaded"), nil
	}

	category := request.GetString("category", "")

	var sb strings.Builder
	count := 0
	for i := range cat.Features {
		entry := &cat.Features[i]
		if category != "" && string(entry.Category) != category {
			continue
		}
		count++
		fmt.Fprintf(&sb, "- %s (%s, %s complexity): %s\n",
			entry.ID, entry.Category, entry.Implementation.Complexity, entry.Description.Short)
	}

	if count == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No features in category %q.", category)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d feature(s):\n%s", count, sb.String())), nil
}

func (s *Server) handleGetFeature(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	featureID, err := request.RequireString("feature_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: feature_id"), nil
	}

	cat := s.engine.Catalog()
	if cat == nil || cat.Len() == 0 {
		return mcp.NewToolResultError("knowledge base not loaded"), nil
	}

	entry := cat.FindByID(featureID)
	if entry == nil {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No feature %q in the knowledge base. Use list_features to see available ids.", featureID,
		)), nil
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding feature: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleExplainScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: description"), nil
	}
	featureID, err := request.RequireString("feature_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: feature_id"), nil
	}

	in := &painpoint.Input{
		PainPoint: painpoint.PainPoint{Description: description},
	}

	b, err := s.engine.Explain(in, featureID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("explaining score: %v", err)), nil
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding breakdown: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
