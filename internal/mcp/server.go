// Package mcp exposes the search engine as an MCP stdio server, so agent
// hosts can call it as a tool.
package mcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/hyperjump/mitsuke/internal/search"
)

const (
	// ServerName is the MCP server name.
	ServerName = "mitsuke"
	// ServerVersion is the advertised server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the search engine.
type Server struct {
	mcp    *server.MCPServer
	engine *search.Engine
	logger *zap.Logger
}

// NewServer creates an MCP server backed by the given engine.
func NewServer(engine *search.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		engine: engine,
		logger: logger,
	}
	s.mcp.AddTool(searchFilesTool(), s.handleSearchFiles)
	return s
}

// Serve runs the MCP server on stdio and blocks until ctx is cancelled
// or stdin closes.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting", zap.String("name", ServerName))
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}
