package ranking

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hyperjump/mitsuke/internal/models"
)

// FilepathScorer scores matches between query terms and the containing
// directory path.
type FilepathScorer struct {
	weights *Weights
}

// NewFilepathScorer creates a filepath scorer with the given weights.
func NewFilepathScorer(weights *Weights) *FilepathScorer {
	return &FilepathScorer{weights: weights}
}

// Name returns the scorer name.
func (s *FilepathScorer) Name() string {
	return "filepath"
}

// Score awards, per term: 0.5x weight when the directory path contains the
// term, plus 0.8x weight when any path segment equals the term exactly.
// Both can fire for the same term. The signal runs over the root-relative
// path so directories above the search root never match.
func (s *FilepathScorer) Score(ctx *ScoringContext) (float64, []models.MatchReason) {
	path := ctx.RelPath
	if path == "" {
		path = ctx.Path
	}
	dir := strings.ToLower(filepath.ToSlash(filepath.Dir(path)))
	if dir == "." || dir == "" {
		return 0, nil
	}
	segments := strings.Split(dir, "/")

	var total float64
	var reasons []models.MatchReason

	for _, term := range ctx.Query.Terms {
		if strings.Contains(dir, term) {
			contribution := s.weights.Filepath * 0.5
			total += contribution
			reasons = append(reasons, models.MatchReason{
				Category:     models.ReasonFilepath,
				Description:  fmt.Sprintf("directory path contains %q", term),
				Contribution: contribution,
			})
		}
		for _, segment := range segments {
			if segment == term {
				contribution := s.weights.Filepath * 0.8
				total += contribution
				reasons = append(reasons, models.MatchReason{
					Category:     models.ReasonFilepath,
					Description:  fmt.Sprintf("path segment is exactly %q", term),
					Contribution: contribution,
				})
				break
			}
		}
	}

	return total, reasons
}
