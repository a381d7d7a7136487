// Package models defines the data types shared across the search pipeline.
package models

import "time"

// FileMetadata is an immutable per-scan snapshot of one file. It is built
// once per candidate and discarded when the search returns.
type FileMetadata struct {
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// ModTime is the last modification time.
	ModTime time.Time `json:"mod_time"`
	// Extension is the lowercased file extension including the dot.
	Extension string `json:"extension"`
	// LineCount is the number of lines in the file content.
	LineCount int `json:"line_count"`
	// IsTest, IsConfig and IsDoc are independent classifications; a file
	// may be any combination of the three.
	IsTest   bool `json:"is_test"`
	IsConfig bool `json:"is_config"`
	IsDoc    bool `json:"is_doc"`
	// Language is the detected language name, or "unknown".
	Language string `json:"language,omitempty"`
	// Exports are declared export names found by regex heuristics.
	Exports []string `json:"exports,omitempty"`
	// Imports are imported module identifiers found by regex heuristics.
	Imports []string `json:"imports,omitempty"`
	// LineIndex maps a lowercase word to the ordered 1-based line numbers
	// containing it. Only populated when line previews are requested.
	LineIndex map[string][]int `json:"-"`
	// Content is the raw file content, retained alongside LineIndex so
	// snippet extraction does not re-read the file.
	Content string `json:"-"`
}
