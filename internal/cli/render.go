// Package cli renders search results for terminal consumption.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/mitsuke/internal/models"
	"github.com/hyperjump/mitsuke/pkg/utils"
)

// snippetWidth bounds rendered snippet lines so minified or generated
// content cannot flood the terminal.
const snippetWidth = 160

// OutputFormat is the format for search result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteResult writes a search result to w in the given format.
// Use OutputJSON for parseable output consumable by other tools.
func WriteResult(w io.Writer, result *models.SearchResult, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		writeResultText(w, result)
		return nil
	}
}

func writeResultText(w io.Writer, result *models.SearchResult) {
	fmt.Fprintf(w, "\nFound %d match(es) in %dms (%d files scanned)\n\n",
		len(result.Files), result.QueryTime, result.FilesScanned)
	for _, match := range result.Files {
		writeOneMatch(w, match)
	}
}

func writeOneMatch(w io.Writer, match *models.FileMatch) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "%s\n", match.RelPath)
	fmt.Fprintf(w, "Score: %d/100%s\n", match.Score, metadataTags(match.Metadata))
	for _, reason := range match.Reasons {
		fmt.Fprintf(w, "  [%s] %s (+%.1f)\n", reason.Category, reason.Description, reason.Contribution)
		for _, snip := range reason.Snippets {
			fmt.Fprintf(w, "      L%d: %s\n", snip.Line, utils.Truncate(snip.Content, snippetWidth))
		}
	}
	fmt.Fprintln(w)
}

// metadataTags formats size, language and classification tags for one line.
func metadataTags(meta *models.FileMetadata) string {
	if meta == nil {
		return ""
	}
	tags := []string{formatSize(meta.Size)}
	if meta.Language != "" && meta.Language != "unknown" {
		tags = append(tags, meta.Language)
	}
	if meta.IsTest {
		tags = append(tags, "test")
	}
	if meta.IsConfig {
		tags = append(tags, "config")
	}
	if meta.IsDoc {
		tags = append(tags, "doc")
	}
	return " | " + strings.Join(tags, " | ")
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
