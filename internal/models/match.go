package models

// ReasonCategory tags a MatchReason with the signal that produced it.
type ReasonCategory string

const (
	ReasonFilename  ReasonCategory = "filename"
	ReasonFilepath  ReasonCategory = "filepath"
	ReasonContent   ReasonCategory = "content"
	ReasonExport    ReasonCategory = "export"
	ReasonImport    ReasonCategory = "import"
	ReasonFunction  ReasonCategory = "function"
	ReasonClass     ReasonCategory = "class"
	ReasonInterface ReasonCategory = "interface"
	ReasonComment   ReasonCategory = "comment"
	ReasonConfig    ReasonCategory = "config"
	ReasonTest      ReasonCategory = "test"
	ReasonRelated   ReasonCategory = "related"
)

// LineSnippet is one matched line with up to one line of trimmed context
// on either side.
type LineSnippet struct {
	// Line is the 1-based line number of the matched line.
	Line int `json:"line"`
	// Content is the trimmed matched line.
	Content string `json:"content"`
	// Before and After are the trimmed adjacent lines, when present.
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// MatchReason is one attributable scoring event.
type MatchReason struct {
	Category ReasonCategory `json:"category"`
	// Description is a human-readable explanation of the match.
	Description string `json:"description"`
	// Contribution is the amount this reason added to the file score.
	Contribution float64 `json:"contribution"`
	// Snippets holds matched-line previews, when line previews are enabled.
	Snippets []LineSnippet `json:"snippets,omitempty"`
}

// FileMatch is one ranked file in a search result.
type FileMatch struct {
	// Path is the absolute file path.
	Path string `json:"path"`
	// RelPath is the path relative to the search root.
	RelPath string `json:"rel_path"`
	// Score is the aggregated relevance score, an integer in [0,100].
	Score int `json:"score"`
	// Reasons are the top reasons by contribution, at most five,
	// sorted by non-increasing contribution.
	Reasons []MatchReason `json:"reasons"`
	// Metadata is the per-scan snapshot of the file.
	Metadata *FileMetadata `json:"metadata,omitempty"`
}
