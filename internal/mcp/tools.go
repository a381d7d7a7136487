package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/hyperjump/mitsuke/internal/models"
)

// searchFilesTool returns the tool definition for search_files.
func searchFilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_files",
		Description: "Rank files in a directory tree by relevance to a free-text query, without building an index",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text query; double-quoted spans match as exact phrases",
				},
				"root": map[string]interface{}{
					"type":        "string",
					"description": "Directory to search (defaults to the working directory)",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return",
					"default":     10,
				},
				"min_score": map[string]interface{}{
					"type":        "integer",
					"description": "Minimum relevance score (0-100) a file must reach",
					"default":     15,
				},
				"include_tests": map[string]interface{}{
					"type":        "boolean",
					"description": "Include test files in the scan",
					"default":     false,
				},
				"include_configs": map[string]interface{}{
					"type":        "boolean",
					"description": "Include configuration files in the scan",
					"default":     false,
				},
				"include_docs": map[string]interface{}{
					"type":        "boolean",
					"description": "Include documentation files in the scan",
					"default":     false,
				},
				"line_preview": map[string]interface{}{
					"type":        "boolean",
					"description": "Attach matching-line snippets to content reasons",
					"default":     false,
				},
			},
			Required: []string{"query"},
		},
	}
}

// handleSearchFiles handles the search_files tool invocation.
func (s *Server) handleSearchFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid arguments")
	}

	queryStr, _ := args["query"].(string)
	root, _ := args["root"].(string)

	opts := &models.SearchOptions{
		Query:          queryStr,
		Root:           root,
		MaxResults:     getIntDefault(args, "max_results", 0),
		MinScore:       getIntDefault(args, "min_score", 0),
		IncludeTests:   getBoolDefault(args, "include_tests", false),
		IncludeConfigs: getBoolDefault(args, "include_configs", false),
		IncludeDocs:    getBoolDefault(args, "include_docs", false),
		LinePreview:    getBoolDefault(args, "line_preview", false),
	}

	result, err := s.engine.Search(ctx, opts)
	if err != nil {
		s.logger.Error("search_files failed", zap.Error(err))
		return nil, fmt.Errorf("search failed: %w", err)
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// getBoolDefault extracts a boolean parameter with a default value.
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value.
// JSON numbers decode as float64.
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
