// Package mcp exposes the analysis engine as MCP tools over stdio, so AI
// assistants can analyze pain points and browse the feature catalog.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/filumlabs/painpoint-agent/internal/engine"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes pain-point analysis tools.
type Server struct {
	engine     *engine.Engine
	maxResults int
	mcp        *server.MCPServer
}

// NewServer creates a new MCP server around the given engine.
func NewServer(eng *engine.Engine, maxResults int) *Server {
	if maxResults <= 0 {
		maxResults = engine.DefaultMaxSolutions
	}
	s := &Server{
		engine:     eng,
		maxResults: maxResults,
	}

	s.mcp = server.NewMCPServer(
		"painpoint",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(analyzePainPointTool, s.handleAnalyzePainPoint)
	s.mcp.AddTool(listFeaturesTool, s.handleListFeatures)
	s.mcp.AddTool(getFeatureTool, s.handleGetFeature)
	s.mcp.AddTool(explainScoreTool, s.handleExplainScore)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
