package ranking

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/hyperjump/mitsuke/internal/models"
	"github.com/hyperjump/mitsuke/internal/snippet"
)

// occurrenceSaturation is the occurrence count at which a term's content
// contribution stops growing.
const occurrenceSaturation = 5

// ContentScorer scores literal term occurrences, exact phrases, and
// declaration/comment heuristics over raw file content.
type ContentScorer struct {
	weights *Weights

	mu    sync.Mutex
	cache map[string]*termPatterns
}

// termPatterns holds the compiled heuristics for one term. Terms repeat
// across files within a search, so patterns are compiled once per term.
type termPatterns struct {
	function *regexp.Regexp
	class    *regexp.Regexp
	iface    *regexp.Regexp
	comment  *regexp.Regexp
}

// NewContentScorer creates a content scorer with the given weights.
func NewContentScorer(weights *Weights) *ContentScorer {
	return &ContentScorer{
		weights: weights,
		cache:   make(map[string]*termPatterns),
	}
}

// Name returns the scorer name.
func (s *ContentScorer) Name() string {
	return "content"
}

// Score contributes, per term: an occurrence score saturating at five
// occurrences, plus fixed-weight awards for function declarations, type
// declarations and comment mentions. Per exact phrase: 1.5x content
// weight. Contributes nothing when ctx.Content is empty.
func (s *ContentScorer) Score(ctx *ScoringContext) (float64, []models.MatchReason) {
	content := ctx.Content
	if content == "" {
		return 0, nil
	}
	lowered := strings.ToLower(content)

	var total float64
	var reasons []models.MatchReason
	add := func(category models.ReasonCategory, contribution float64, description string, withSnippets bool) {
		reason := models.MatchReason{
			Category:     category,
			Description:  description,
			Contribution: contribution,
		}
		if withSnippets && ctx.PreviewEnabled && ctx.Meta != nil && ctx.Meta.LineIndex != nil {
			reason.Snippets = snippet.Extract(ctx.Meta.Content, ctx.Meta.LineIndex, ctx.Query, ctx.MaxSnippets)
		}
		total += contribution
		reasons = append(reasons, reason)
	}

	for _, term := range ctx.Query.Terms {
		if occurrences := strings.Count(lowered, term); occurrences > 0 {
			contribution := s.weights.Content * float64(occurrences) / occurrenceSaturation
			if contribution > s.weights.Content {
				contribution = s.weights.Content
			}
			add(models.ReasonContent, contribution,
				fmt.Sprintf("content mentions %q %d time(s)", term, occurrences), true)
		}

		patterns := s.patternsFor(term)
		if patterns.function.MatchString(content) {
			add(models.ReasonFunction, s.weights.Function,
				fmt.Sprintf("declares function %q", term), false)
		}
		if patterns.class.MatchString(content) {
			add(models.ReasonClass, s.weights.Class,
				fmt.Sprintf("declares type %q", term), false)
		}
		if patterns.iface.MatchString(content) {
			add(models.ReasonInterface, s.weights.Interface,
				fmt.Sprintf("declares interface %q", term), false)
		}
		if patterns.comment.MatchString(content) {
			add(models.ReasonComment, s.weights.Comment/2,
				fmt.Sprintf("comment mentions %q", term), false)
		}
	}

	for _, phrase := range ctx.Query.ExactTerms {
		if strings.Contains(lowered, phrase) {
			add(models.ReasonContent, s.weights.Content*1.5,
				fmt.Sprintf("content contains phrase %q", phrase), true)
		}
	}

	return total, reasons
}

// patternsFor returns the compiled heuristics for a term, compiling and
// caching them on first use.
func (s *ContentScorer) patternsFor(term string) *termPatterns {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.cache[term]; ok {
		return p
	}
	quoted := regexp.QuoteMeta(term)
	p := &termPatterns{
		function: regexp.MustCompile(`(?i)\b(?:function|def|fn|func)\s+` + quoted + `\s*\(`),
		class:    regexp.MustCompile(`(?i)\b(?:class|struct|enum)\s+` + quoted + `\b`),
		iface:    regexp.MustCompile(`(?i)\binterface\s+` + quoted + `\b`),
		comment:  regexp.MustCompile(`(?i)(?://|#|/\*|\*|--)[^\n]*` + quoted),
	}
	s.cache[term] = p
	return p
}
