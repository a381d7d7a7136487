// Package search orchestrates the per-file pipeline: traversal, metadata
// extraction, scoring, filtering and ranking.
package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hyperjump/mitsuke/internal/models"
	"github.com/hyperjump/mitsuke/internal/query"
	"github.com/hyperjump/mitsuke/internal/ranking"
	"github.com/hyperjump/mitsuke/internal/scan"
	"github.com/hyperjump/mitsuke/internal/walker"
)

// DefaultWorkers bounds concurrent per-file work. File scoring is
// deterministic, so overlapping I/O never changes the final ranking.
const DefaultWorkers = 8

// Engine runs searches. It holds no per-search state; everything built
// during a search is discarded when the result returns.
type Engine struct {
	walker    *walker.Walker
	parser    *query.Parser
	extractor *scan.Extractor
	weights   *ranking.Weights
	logger    *zap.Logger
	workers   int
}

// NewEngine creates an engine with the default tables and worker count.
// Nil weights or logger fall back to defaults.
func NewEngine(weights *ranking.Weights, logger *zap.Logger) *Engine {
	if weights == nil {
		weights = ranking.DefaultWeights()
	}
	weights.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		walker:    walker.New(logger),
		parser:    query.NewParser(),
		extractor: scan.NewExtractor(scan.NewClassifier()),
		weights:   weights,
		logger:    logger,
		workers:   DefaultWorkers,
	}
}

// WithWorkers overrides the worker pool size. Values below 1 are clamped.
func (e *Engine) WithWorkers(n int) *Engine {
	if n < 1 {
		n = 1
	}
	e.workers = n
	return e
}

// Search scans the tree under opts.Root and returns matches ranked by
// relevance to opts.Query. Per-file failures are skipped; the only hard
// failure is inability to enumerate candidates.
func (e *Engine) Search(ctx context.Context, opts *models.SearchOptions) (*models.SearchResult, error) {
	start := time.Now()
	opts.Normalize()

	root := opts.Root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = cwd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	parsed := e.parser.Parse(opts.Query)

	candidates, err := e.walker.Walk(ctx, walker.Options{
		Root:             root,
		Exclude:          walker.DefaultExcludePatterns,
		RespectGitignore: opts.RespectGitignore,
	})
	if err != nil {
		return nil, err
	}
	candidates = e.filterCategories(candidates, opts)

	e.logger.Debug("scan started",
		zap.String("query", opts.Query),
		zap.String("root", root),
		zap.Int("candidates", len(candidates)),
	)

	// One aggregator per search: the content scorer caches compiled term
	// patterns across files.
	aggregator := ranking.NewAggregator(e.weights)

	// Results land in their candidate's slot so the final ordering is
	// independent of worker scheduling.
	matches := make([]*models.FileMatch, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, path := range candidates {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			match, err := e.scoreFile(aggregator, path, root, parsed, opts)
			if err != nil {
				e.logger.Debug("file skipped", zap.String("path", path), zap.Error(err))
				return nil
			}
			matches[i] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]*models.FileMatch, 0, len(matches))
	for _, match := range matches {
		if match != nil && match.Score >= opts.MinScore {
			kept = append(kept, match)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	if len(kept) > opts.MaxResults {
		kept = kept[:opts.MaxResults]
	}

	return &models.SearchResult{
		Files:        kept,
		FilesScanned: len(candidates),
		QueryTime:    time.Since(start).Milliseconds(),
		Query:        opts.Query,
	}, nil
}

// scoreFile runs the per-file pipeline. Errors are values: the caller
// turns any failure into "skip this file".
func (e *Engine) scoreFile(aggregator *ranking.Aggregator, path, root string, parsed *query.ParsedQuery, opts *models.SearchOptions) (*models.FileMatch, error) {
	meta, content, err := e.extractor.Extract(path, opts.MaxFileSize, opts.LinePreview)
	if err != nil {
		return nil, err
	}
	if !opts.ContentEnabled() {
		content = ""
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return aggregator.Aggregate(&ranking.ScoringContext{
		Query:          parsed,
		Path:           path,
		RelPath:        rel,
		Meta:           meta,
		Content:        content,
		PreviewEnabled: opts.LinePreview,
		MaxSnippets:    opts.MaxSnippets,
	}), nil
}

// filterCategories drops test/config/doc files excluded by options before
// scanning, so they never count as scanned candidates.
func (e *Engine) filterCategories(candidates []string, opts *models.SearchOptions) []string {
	if opts.IncludeTests && opts.IncludeConfigs && opts.IncludeDocs {
		return candidates
	}
	classifier := e.extractor.Classifier()
	kept := candidates[:0]
	for _, path := range candidates {
		if !opts.IncludeTests && classifier.IsTestFile(path) {
			continue
		}
		if !opts.IncludeConfigs && classifier.IsConfigFile(path) {
			continue
		}
		if !opts.IncludeDocs && classifier.IsDocFile(path) {
			continue
		}
		kept = append(kept, path)
	}
	return kept
}
