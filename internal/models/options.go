package models

// Default option values applied by Normalize.
const (
	DefaultMaxResults  = 10
	DefaultMinScore    = 15
	DefaultMaxFileSize = 1 << 20 // 1 MiB
	DefaultMaxSnippets = 3
)

// SearchOptions configures one search invocation.
type SearchOptions struct {
	// Query is the free-text query. An empty query is not an error; it
	// parses to an all-empty intent and yields zero matches.
	Query string `json:"query"`
	// Root is the directory to search. Defaults to the working directory.
	Root string `json:"root,omitempty"`
	// MaxResults bounds the number of returned matches.
	MaxResults int `json:"max_results,omitempty"`
	// MinScore is the minimum aggregated score a file must reach.
	MinScore int `json:"min_score,omitempty"`
	// SearchContent controls content scanning; defaults to true when unset.
	SearchContent *bool `json:"search_content,omitempty"`
	// MaxFileSize is the largest file, in bytes, whose content is read.
	MaxFileSize int64 `json:"max_file_size,omitempty"`
	// IncludeTests, IncludeConfigs and IncludeDocs admit the respective
	// file categories. When false the category's patterns are added to
	// the traversal exclusions.
	IncludeTests   bool `json:"include_tests,omitempty"`
	IncludeConfigs bool `json:"include_configs,omitempty"`
	IncludeDocs    bool `json:"include_docs,omitempty"`
	// LinePreview enables matched-line snippets on content reasons.
	LinePreview bool `json:"line_preview,omitempty"`
	// MaxSnippets caps snippets per file when LinePreview is set.
	MaxSnippets int `json:"max_snippets,omitempty"`
	// RespectGitignore makes the traversal honor .gitignore files.
	RespectGitignore bool `json:"respect_gitignore,omitempty"`
}

// ContentEnabled reports whether file content should be scanned.
// Unset means enabled.
func (o *SearchOptions) ContentEnabled() bool {
	if o.SearchContent != nil {
		return *o.SearchContent
	}
	return true
}

// Normalize fills zero values with defaults. It never rejects the query;
// an empty query is valid and simply matches nothing.
func (o *SearchOptions) Normalize() {
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	if o.MaxFileSize <= 0 {
		o.MaxFileSize = DefaultMaxFileSize
	}
	if o.MaxSnippets <= 0 {
		o.MaxSnippets = DefaultMaxSnippets
	}
}
