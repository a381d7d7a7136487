package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hyperjump/mitsuke/internal/models"
	"github.com/hyperjump/mitsuke/internal/search"
)

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = "search_files"
	req.Params.Arguments = args
	return req
}

func TestHandleSearchFiles(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "auth.ts")
	require.NoError(t, os.WriteFile(path, []byte("export function auth() {}\n"), 0o644))

	srv := NewServer(search.NewEngine(nil, zap.NewNop()), zap.NewNop())
	result, err := srv.handleSearchFiles(context.Background(), callRequest(map[string]interface{}{
		"query": "auth",
		"root":  root,
	}))
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])

	var decoded models.SearchResult
	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	require.Len(t, decoded.Files, 1)
	require.Equal(t, "auth.ts", filepath.ToSlash(decoded.Files[0].RelPath))
}

func TestHandleSearchFiles_NumericArguments(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"widget-a.ts", "widget-b.ts", "widget-c.ts"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x\n"), 0o644))
	}

	srv := NewServer(search.NewEngine(nil, zap.NewNop()), zap.NewNop())
	// JSON numbers arrive as float64.
	result, err := srv.handleSearchFiles(context.Background(), callRequest(map[string]interface{}{
		"query":       "widget",
		"root":        root,
		"max_results": float64(2),
		"min_score":   float64(1),
	}))
	require.NoError(t, err)

	text := result.Content[0].(mcp.TextContent)
	var decoded models.SearchResult
	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	require.Len(t, decoded.Files, 2)
}

func TestHandleSearchFiles_BadRoot(t *testing.T) {
	srv := NewServer(search.NewEngine(nil, zap.NewNop()), zap.NewNop())
	_, err := srv.handleSearchFiles(context.Background(), callRequest(map[string]interface{}{
		"query": "auth",
		"root":  filepath.Join(t.TempDir(), "missing"),
	}))
	require.Error(t, err)
}

func TestHandleSearchFiles_InvalidArguments(t *testing.T) {
	srv := NewServer(search.NewEngine(nil, zap.NewNop()), zap.NewNop())
	var req mcp.CallToolRequest
	req.Params.Name = "search_files"
	req.Params.Arguments = "not a map"

	_, err := srv.handleSearchFiles(context.Background(), req)
	require.Error(t, err)
}
