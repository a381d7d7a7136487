package ranking

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hyperjump/mitsuke/internal/models"
)

// FilenameScorer scores matches between query terms and the file basename.
// Every term and phrase contributes independently; contributions
// accumulate rather than replace each other.
type FilenameScorer struct {
	weights *Weights
}

// NewFilenameScorer creates a filename scorer with the given weights.
func NewFilenameScorer(weights *Weights) *FilenameScorer {
	return &FilenameScorer{weights: weights}
}

// Name returns the scorer name.
func (s *FilenameScorer) Name() string {
	return "filename"
}

// Score awards, per term: full weight for an exact basename match, 0.9x
// for a match ignoring the extension, 0.6x for substring containment.
// Per exact phrase: 1.2x weight for containment in the basename.
func (s *FilenameScorer) Score(ctx *ScoringContext) (float64, []models.MatchReason) {
	base := strings.ToLower(filepath.Base(ctx.Path))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	var total float64
	var reasons []models.MatchReason
	add := func(contribution float64, description string) {
		total += contribution
		reasons = append(reasons, models.MatchReason{
			Category:     models.ReasonFilename,
			Description:  description,
			Contribution: contribution,
		})
	}

	for _, term := range ctx.Query.Terms {
		switch {
		case base == term:
			add(s.weights.Filename, fmt.Sprintf("filename is exactly %q", term))
		case stem == term:
			add(s.weights.Filename*0.9, fmt.Sprintf("filename matches %q (ignoring extension)", term))
		case strings.Contains(base, term):
			add(s.weights.Filename*0.6, fmt.Sprintf("filename contains %q", term))
		}
	}

	for _, phrase := range ctx.Query.ExactTerms {
		if strings.Contains(base, phrase) {
			add(s.weights.Filename*1.2, fmt.Sprintf("filename contains phrase %q", phrase))
		}
	}

	return total, reasons
}
