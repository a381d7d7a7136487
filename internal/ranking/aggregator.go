package ranking

import (
	"math"
	"sort"

	"github.com/hyperjump/mitsuke/internal/models"
)

// maxReasons is the number of reasons retained per file match.
const maxReasons = 5

// maxScore is the ceiling for aggregated scores. Saturation is a hard
// ceiling: component scores are not renormalized.
const maxScore = 100

// Aggregator runs every scorer for a file and folds the results into one
// FileMatch. The scorer set is pluggable so signal strategies can be
// substituted or tuned without touching the orchestrator.
type Aggregator struct {
	scorers []Scorer
}

// NewAggregator creates an aggregator with the standard four scorers.
func NewAggregator(weights *Weights) *Aggregator {
	if weights == nil {
		weights = DefaultWeights()
	}
	weights.ApplyDefaults()
	return &Aggregator{
		scorers: []Scorer{
			NewFilenameScorer(weights),
			NewFilepathScorer(weights),
			NewContentScorer(weights),
			NewMetadataScorer(weights),
		},
	}
}

// NewAggregatorWithScorers creates an aggregator with a custom scorer set.
func NewAggregatorWithScorers(scorers ...Scorer) *Aggregator {
	return &Aggregator{scorers: scorers}
}

// Aggregate sums all signal scores, clamps the total to [0,100], rounds
// to the nearest integer, and keeps the top reasons by contribution.
func (a *Aggregator) Aggregate(ctx *ScoringContext) *models.FileMatch {
	var total float64
	var reasons []models.MatchReason
	for _, scorer := range a.scorers {
		score, scorerReasons := scorer.Score(ctx)
		total += score
		reasons = append(reasons, scorerReasons...)
	}

	if total < 0 {
		total = 0
	}
	if total > maxScore {
		total = maxScore
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Contribution > reasons[j].Contribution
	})
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return &models.FileMatch{
		Path:     ctx.Path,
		RelPath:  ctx.RelPath,
		Score:    int(math.Round(total)),
		Reasons:  reasons,
		Metadata: ctx.Meta,
	}
}
