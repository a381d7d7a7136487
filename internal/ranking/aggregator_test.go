package ranking

import (
	"fmt"
	"testing"

	"github.com/hyperjump/mitsuke/internal/models"
	"github.com/hyperjump/mitsuke/internal/query"
)

// stubScorer returns a fixed score and reason set.
type stubScorer struct {
	score   float64
	reasons []models.MatchReason
}

func (s stubScorer) Score(*ScoringContext) (float64, []models.MatchReason) {
	return s.score, s.reasons
}

func (s stubScorer) Name() string { return "stub" }

func TestAggregator_ClampsToHundred(t *testing.T) {
	agg := NewAggregatorWithScorers(
		stubScorer{score: 250},
		stubScorer{score: 120},
	)

	match := agg.Aggregate(&ScoringContext{
		Query: query.NewParser().Parse("anything"),
		Path:  "/src/a.ts",
	})
	if match.Score != 100 {
		t.Errorf("Score = %d, want clamp at 100", match.Score)
	}
}

func TestAggregator_ClampsNegativeToZero(t *testing.T) {
	agg := NewAggregatorWithScorers(stubScorer{score: -5})
	match := agg.Aggregate(&ScoringContext{
		Query: query.NewParser().Parse("anything"),
	})
	if match.Score != 0 {
		t.Errorf("Score = %d, want 0", match.Score)
	}
}

func TestAggregator_RoundsToInteger(t *testing.T) {
	agg := NewAggregatorWithScorers(stubScorer{score: 41.6})
	match := agg.Aggregate(&ScoringContext{
		Query: query.NewParser().Parse("anything"),
	})
	if match.Score != 42 {
		t.Errorf("Score = %d, want 42", match.Score)
	}
}

func TestAggregator_KeepsTopFiveReasons(t *testing.T) {
	var reasons []models.MatchReason
	for i := 1; i <= 8; i++ {
		reasons = append(reasons, models.MatchReason{
			Category:     models.ReasonContent,
			Description:  fmt.Sprintf("reason %d", i),
			Contribution: float64(i),
		})
	}
	agg := NewAggregatorWithScorers(stubScorer{score: 36, reasons: reasons})

	match := agg.Aggregate(&ScoringContext{
		Query: query.NewParser().Parse("anything"),
	})
	if len(match.Reasons) != 5 {
		t.Fatalf("len(Reasons) = %d, want 5", len(match.Reasons))
	}
	for i, r := range match.Reasons {
		if i > 0 && r.Contribution > match.Reasons[i-1].Contribution {
			t.Errorf("reasons not sorted by contribution: %v", match.Reasons)
		}
	}
	if match.Reasons[0].Contribution != 8 {
		t.Errorf("strongest reason = %v, want contribution 8", match.Reasons[0])
	}
}

func TestAggregator_EndToEnd(t *testing.T) {
	weights := DefaultWeights()
	agg := NewAggregator(weights)

	content := "export function loadDatabaseConfig() {}\n"
	match := agg.Aggregate(&ScoringContext{
		Query:   query.NewParser().Parse("database config"),
		Path:    "/repo/src/db/config.ts",
		RelPath: "src/db/config.ts",
		Meta: &models.FileMetadata{
			Extension: ".ts",
			IsConfig:  true,
			Exports:   []string{"loadDatabaseConfig"},
		},
		Content: content,
	})

	if match.Score <= 0 {
		t.Fatalf("Score = %d, want positive", match.Score)
	}
	if match.Score > 100 {
		t.Fatalf("Score = %d, exceeds ceiling", match.Score)
	}
	categories := map[models.ReasonCategory]bool{}
	for _, r := range match.Reasons {
		categories[r.Category] = true
	}
	if !categories[models.ReasonFilename] {
		t.Error("expected a filename reason for config.ts")
	}
	if !categories[models.ReasonExport] {
		t.Error("expected an export reason for loadDatabaseConfig")
	}
}
