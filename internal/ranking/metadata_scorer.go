package ranking

import (
	"fmt"
	"strings"

	"github.com/hyperjump/mitsuke/internal/models"
)

// MetadataScorer scores category intent (tests/configs/docs), file-type
// hints, and export-name matches from the file's metadata snapshot.
type MetadataScorer struct {
	weights *Weights
}

// NewMetadataScorer creates a metadata scorer with the given weights.
func NewMetadataScorer(weights *Weights) *MetadataScorer {
	return &MetadataScorer{weights: weights}
}

// Name returns the scorer name.
func (s *MetadataScorer) Name() string {
	return "metadata"
}

// Score awards the file-type bonus for a requested extension, the
// test/config weights and doc bonus when classification meets intent, and
// the export weight once when any declared export contains a query term.
func (s *MetadataScorer) Score(ctx *ScoringContext) (float64, []models.MatchReason) {
	meta := ctx.Meta
	if meta == nil {
		return 0, nil
	}

	var total float64
	var reasons []models.MatchReason
	add := func(category models.ReasonCategory, contribution float64, description string) {
		total += contribution
		reasons = append(reasons, models.MatchReason{
			Category:     category,
			Description:  description,
			Contribution: contribution,
		})
	}

	for _, ft := range ctx.Query.FileTypes {
		if meta.Extension == ft {
			add(models.ReasonRelated, FileTypeBonus,
				fmt.Sprintf("matches requested file type %s", ft))
			break
		}
	}

	if meta.IsTest && ctx.Query.WantTests {
		add(models.ReasonTest, s.weights.Test, "test file matching tests intent")
	}
	if meta.IsConfig && ctx.Query.WantConfigs {
		add(models.ReasonConfig, s.weights.Config, "config file matching configs intent")
	}
	if meta.IsDoc && ctx.Query.WantDocs {
		add(models.ReasonRelated, DocBonus, "documentation file matching docs intent")
	}

	if matched := matchingExports(meta.Exports, ctx.Query.Terms); len(matched) > 0 {
		add(models.ReasonExport, s.weights.Export,
			fmt.Sprintf("exports %s", strings.Join(matched, ", ")))
	}

	return total, reasons
}

// matchingExports returns up to two export names containing the first
// term that matches any export. The export weight is awarded once, not
// per term.
func matchingExports(exports, terms []string) []string {
	for _, term := range terms {
		var matched []string
		for _, export := range exports {
			if strings.Contains(strings.ToLower(export), term) {
				matched = append(matched, export)
				if len(matched) == 2 {
					break
				}
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}
	return nil
}
