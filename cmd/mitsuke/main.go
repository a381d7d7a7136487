// Package main is the mitsuke CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperjump/mitsuke/internal/cli"
	"github.com/hyperjump/mitsuke/internal/config"
	"github.com/hyperjump/mitsuke/internal/mcp"
	"github.com/hyperjump/mitsuke/internal/models"
	"github.com/hyperjump/mitsuke/internal/search"
	"github.com/hyperjump/mitsuke/internal/server"
	"github.com/hyperjump/mitsuke/pkg/utils"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "mitsuke",
		Short:        "mitsuke - rank files by relevance to a query, no index required",
		Long:         "mitsuke scans a directory tree on every invocation and ranks files\nby relevance to a free-text query. There is nothing to build or keep\nup to date: no index, no daemon, no state.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(
		searchCmd(),
		serveCmd(),
		mcpCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config and builds the logger and engine shared by commands.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, *search.Engine, error) {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := utils.NewLogger(cfg.Debug || debug)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create logger: %w", err)
	}
	engine := search.NewEngine(&cfg.Ranking, logger).WithWorkers(cfg.Search.Workers)
	return cfg, logger, engine, nil
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search a directory tree for files relevant to a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, engine, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			opts := &models.SearchOptions{
				Query:       args[0],
				MaxResults:  cfg.Search.MaxResults,
				MinScore:    cfg.Search.MinScore,
				MaxFileSize: cfg.Search.MaxFileSize,
				MaxSnippets: cfg.Search.MaxSnippets,
			}
			opts.Root, _ = cmd.Flags().GetString("root")
			if n, _ := cmd.Flags().GetInt("max-results"); n > 0 {
				opts.MaxResults = n
			}
			if n, _ := cmd.Flags().GetInt("min-score"); n > 0 {
				opts.MinScore = n
			}
			if noContent, _ := cmd.Flags().GetBool("no-content"); noContent {
				f := false
				opts.SearchContent = &f
			}
			opts.IncludeTests, _ = cmd.Flags().GetBool("include-tests")
			opts.IncludeConfigs, _ = cmd.Flags().GetBool("include-configs")
			opts.IncludeDocs, _ = cmd.Flags().GetBool("include-docs")
			opts.LinePreview, _ = cmd.Flags().GetBool("preview")
			opts.RespectGitignore, _ = cmd.Flags().GetBool("gitignore")
			if n, _ := cmd.Flags().GetInt("snippets"); n > 0 {
				opts.MaxSnippets = n
			}

			result, err := engine.Search(cmd.Context(), opts)
			if err != nil {
				return err
			}

			format := cli.OutputText
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				format = cli.OutputJSON
			}
			return cli.WriteResult(os.Stdout, result, format)
		},
	}

	cmd.Flags().StringP("root", "r", "", "directory to search (defaults to the working directory)")
	cmd.Flags().IntP("max-results", "n", 0, "maximum number of results")
	cmd.Flags().Int("min-score", 0, "minimum relevance score (0-100)")
	cmd.Flags().Bool("no-content", false, "skip file content scanning")
	cmd.Flags().Bool("include-tests", false, "include test files")
	cmd.Flags().Bool("include-configs", false, "include configuration files")
	cmd.Flags().Bool("include-docs", false, "include documentation files")
	cmd.Flags().BoolP("preview", "p", false, "show matching-line snippets")
	cmd.Flags().Int("snippets", 0, "maximum snippets per file")
	cmd.Flags().Bool("gitignore", false, "honor .gitignore in the search root")
	cmd.Flags().Bool("json", false, "emit JSON output")

	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, engine, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			srv := server.NewServer(engine, &cfg.Server, logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				_ = srv.Stop(context.Background())
			}()

			return srv.Start()
		},
	}
}

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the search engine as an MCP stdio tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, engine, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return mcp.NewServer(engine, logger).Serve(cmd.Context())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mitsuke %s\n", version)
		},
	}
}
