package mcp

import "github.com/mark3labs/mcp-go/mcp"

// analyzePainPointTool defines the analyze_pain_point MCP tool.
var analyzePainPointTool = mcp.NewTool("analyze_pain_point",
	mcp.WithDescription("Analyze a business pain point and get ranked product recommendations with implementation guidance."),
	mcp.WithString("description",
		mcp.Required(),
		mcp.Description("The pain point described in plain language (at least 10 characters)"),
	),
	mcp.WithString("industry",
		mcp.Description("Industry context, e.g. e-commerce, banking, retail"),
	),
	mcp.WithString("company_size",
		mcp.Description("Scale of the company reporting the pain point"),
		mcp.Enum("startup", "small", "medium", "large", "enterprise"),
	),
	mcp.WithString("urgency",
		mcp.Description("How urgent the problem is"),
		mcp.Enum("low", "medium", "high"),
	),
	mcp.WithNumber("max_solutions",
		mcp.Description("Maximum number of solutions to return (default 3)"),
	),
)

// listFeaturesTool defines the list_features MCP tool.
var listFeaturesTool = mcp.NewTool("list_features",
	mcp.WithDescription("List the features in the knowledge base, optionally filtered by product pillar."),
	mcp.WithString("category",
		mcp.Description("Filter by product pillar"),
		mcp.Enum("VoC", "AI Customer Service", "Insights", "Customer 360", "AI & Automation"),
	),
)

// getFeatureTool defines the get_feature MCP tool.
var getFeatureTool = mcp.NewTool("get_feature",
	mcp.WithDescription("Get the full knowledge-base entry for one feature, including capabilities, implementation details, and success stories."),
	mcp.WithString("feature_id",
		mcp.Required(),
		mcp.Description("The feature identifier, e.g. acs_ai_inbox"),
	),
)

// explainScoreTool defines the explain_score MCP tool.
var explainScoreTool = mcp.NewTool("explain_score",
	mcp.WithDescription("Explain how one feature's relevance score is assembled for a pain point, signal by signal."),
	mcp.WithString("description",
		mcp.Required(),
		mcp.Description("The pain point described in plain language"),
	),
	mcp.WithString("feature_id",
		mcp.Required(),
		mcp.Description("The feature to explain the score for"),
	),
)
