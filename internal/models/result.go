package models

// SearchResult is the ranked, truncated outcome of one search invocation.
type SearchResult struct {
	// Files are the matches that cleared the minimum score, sorted by
	// descending score and truncated to the requested count.
	Files []*FileMatch `json:"files"`
	// FilesScanned is the number of candidates processed before the
	// threshold filter, including skipped files.
	FilesScanned int `json:"files_scanned"`
	// QueryTime is the wall-clock elapsed time in milliseconds.
	QueryTime int64 `json:"query_time_ms"`
	// Query is the original query string.
	Query string `json:"query"`
}
