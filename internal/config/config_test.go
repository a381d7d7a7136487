package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "localhost", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 10, cfg.Search.MaxResults)
	require.Equal(t, 15, cfg.Search.MinScore)
	require.Equal(t, int64(1<<20), cfg.Search.MaxFileSize)
	require.Equal(t, 8, cfg.Search.Workers)
	require.Equal(t, 3, cfg.Search.MaxSnippets)
	require.Equal(t, 25.0, cfg.Ranking.Filename)
	require.Equal(t, 15.0, cfg.Ranking.Content)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
debug: true
server:
  port: 9090
search:
  max_results: 25
ranking:
  filename: 40
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Debug)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 25, cfg.Search.MaxResults)
	require.Equal(t, 40.0, cfg.Ranking.Filename)
	// Unset values still fall back to defaults.
	require.Equal(t, "localhost", cfg.Server.Host)
	require.Equal(t, 15, cfg.Search.MinScore)
	require.Equal(t, 20.0, cfg.Ranking.Filepath)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644))

	t.Setenv("MITSUKE_SERVER_PORT", "7070")
	t.Setenv("MITSUKE_SEARCH_MAX_RESULTS", "50")

	cfg, err := Load(path)
	require.NoError(t, err)
	// Environment wins over the file.
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, 50, cfg.Search.MaxResults)
}
