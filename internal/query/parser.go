// Package query turns a free-text query into structured search intent.
package query

import (
	"regexp"
	"strings"

	"github.com/hyperjump/mitsuke/internal/scan"
)

// ParsedQuery is the structured intent extracted from a raw query string.
// It is read-only after construction and shared across the per-file
// pipeline of one search.
type ParsedQuery struct {
	// Original is the raw query string.
	Original string `json:"original"`
	// Terms are deduplicated lowercase word tokens from the unquoted
	// portion of the query, in first-seen order.
	Terms []string `json:"terms"`
	// ExactTerms are deduplicated lowercase quoted phrases.
	ExactTerms []string `json:"exact_terms"`
	// FileTypes are requested extensions, each beginning with a dot.
	FileTypes []string `json:"file_types"`
	// WantTests, WantConfigs and WantDocs record category intent derived
	// from indicator words in the query.
	WantTests   bool `json:"want_tests"`
	WantConfigs bool `json:"want_configs"`
	WantDocs    bool `json:"want_docs"`
}

// Indicator word sets. Membership is tested against the lowercased query.
var (
	typeIndicators = map[string]bool{
		"file": true, "files": true, "type": true, "extension": true, "ext": true,
	}
	testIndicators   = []string{"test", "tests", "spec", "specs", "testing"}
	configIndicators = []string{"config", "configuration", "settings", "setting"}
	docIndicators    = []string{"doc", "docs", "documentation", "readme"}
)

var quotedRe = regexp.MustCompile(`"([^"]*)"`)

// Parser parses query strings. The language table is injectable so the
// parser and the scanner agree on language-name hints.
type Parser struct {
	languages []scan.Language
}

// NewParser creates a parser using the default language table.
func NewParser() *Parser {
	return NewParserWithLanguages(scan.DefaultLanguages)
}

// NewParserWithLanguages creates a parser with a custom language table.
func NewParserWithLanguages(languages []scan.Language) *Parser {
	if languages == nil {
		languages = scan.DefaultLanguages
	}
	return &Parser{languages: languages}
}

// Parse converts a raw query into a ParsedQuery. It is total: an empty or
// malformed query yields all-empty fields, never an error.
func (p *Parser) Parse(raw string) *ParsedQuery {
	parsed := &ParsedQuery{
		Original:   raw,
		Terms:      []string{},
		ExactTerms: []string{},
		FileTypes:  []string{},
	}

	lowered := strings.ToLower(raw)

	// Quoted spans become exact phrases; a token is either ordinary or
	// quoted, never both.
	remainder := quotedRe.ReplaceAllStringFunc(raw, func(match string) string {
		phrase := strings.ToLower(strings.TrimSpace(strings.Trim(match, `"`)))
		if phrase != "" {
			parsed.ExactTerms = appendUnique(parsed.ExactTerms, phrase)
		}
		return " "
	})

	for _, token := range strings.Fields(strings.ToLower(remainder)) {
		switch {
		case strings.HasPrefix(token, "."):
			parsed.FileTypes = appendUnique(parsed.FileTypes, token)
		case typeIndicators[token]:
			// Dropped: "file", "type" etc. describe the request, not the target.
		default:
			parsed.Terms = appendUnique(parsed.Terms, token)
		}
	}

	// Language names anywhere in the query pull in their extensions. This
	// is a substring check and deliberately over-matches; see DESIGN.md.
	for _, lang := range p.languages {
		if strings.Contains(lowered, lang.Name) {
			for _, ext := range lang.Extensions {
				parsed.FileTypes = appendUnique(parsed.FileTypes, ext)
			}
		}
	}

	parsed.WantTests = containsAny(lowered, testIndicators)
	parsed.WantConfigs = containsAny(lowered, configIndicators)
	parsed.WantDocs = containsAny(lowered, docIndicators)

	return parsed
}

// IsEmpty reports whether the query expresses no searchable intent.
func (q *ParsedQuery) IsEmpty() bool {
	return len(q.Terms) == 0 && len(q.ExactTerms) == 0
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

func containsAny(haystack string, words []string) bool {
	for _, word := range words {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}
