package ranking

import (
	"github.com/hyperjump/mitsuke/internal/models"
	"github.com/hyperjump/mitsuke/internal/query"
)

// ScoringContext carries everything a scorer may inspect for one file.
// The query is shared and read-only; the rest belongs to the file.
type ScoringContext struct {
	// Query is the parsed search intent.
	Query *query.ParsedQuery
	// Path is the absolute file path; RelPath is relative to the root.
	Path    string
	RelPath string
	// Meta is the file's per-scan metadata snapshot.
	Meta *models.FileMetadata
	// Content is the raw file content. Empty when content search is
	// disabled or the file exceeded the size ceiling, in which case the
	// content scorer contributes nothing.
	Content string
	// PreviewEnabled attaches line snippets to content reasons.
	PreviewEnabled bool
	// MaxSnippets caps snippets per file when previews are enabled.
	MaxSnippets int
}

// Scorer computes one signal's contribution for a file. Scores are never
// negative, and each reason carries its own share of the score.
type Scorer interface {
	// Score returns the signal's total contribution and its reasons.
	Score(ctx *ScoringContext) (float64, []models.MatchReason)
	// Name identifies the scorer in logs.
	Name() string
}
