// Package snippet locates and clusters matching lines for previews.
package snippet

import (
	"sort"
	"strings"

	"github.com/hyperjump/mitsuke/internal/models"
	"github.com/hyperjump/mitsuke/internal/query"
)

// clusterGap is the maximum distance between matched lines grouped into
// one contiguous region of interest.
const clusterGap = 3

// Extract returns up to maxGroups snippets for lines of content matching
// any ordinary term or exact phrase. Terms are resolved through the line
// index; phrases are searched per line since they may span token
// boundaries. Returns nil when nothing matches.
func Extract(content string, index map[string][]int, q *query.ParsedQuery, maxGroups int) []models.LineSnippet {
	if content == "" || q == nil || maxGroups <= 0 {
		return nil
	}

	lineSet := make(map[int]bool)
	for _, term := range q.Terms {
		for _, line := range index[term] {
			lineSet[line] = true
		}
	}

	lines := strings.Split(content, "\n")
	if len(q.ExactTerms) > 0 {
		for i, line := range lines {
			lowered := strings.ToLower(line)
			for _, phrase := range q.ExactTerms {
				if strings.Contains(lowered, phrase) {
					lineSet[i+1] = true
					break
				}
			}
		}
	}

	if len(lineSet) == 0 {
		return nil
	}

	matched := make([]int, 0, len(lineSet))
	for line := range lineSet {
		matched = append(matched, line)
	}
	sort.Ints(matched)

	groups := cluster(matched)
	// More matches nearby means more relevant context; ties keep the
	// earlier group first.
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i]) > len(groups[j])
	})
	if len(groups) > maxGroups {
		groups = groups[:maxGroups]
	}

	snippets := make([]models.LineSnippet, 0, len(groups))
	for _, group := range groups {
		anchor := group[len(group)/2]
		if anchor < 1 || anchor > len(lines) {
			continue
		}
		snippets = append(snippets, buildSnippet(lines, anchor))
	}
	return snippets
}

// cluster greedily groups ascending line numbers whose neighbors are
// within clusterGap of each other.
func cluster(lines []int) [][]int {
	var groups [][]int
	var current []int
	for _, line := range lines {
		if len(current) > 0 && line-current[len(current)-1] > clusterGap {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// buildSnippet emits the anchor line plus up to one trimmed line of
// context on either side. anchor is 1-based.
func buildSnippet(lines []string, anchor int) models.LineSnippet {
	s := models.LineSnippet{
		Line:    anchor,
		Content: strings.TrimSpace(lines[anchor-1]),
	}
	if anchor-2 >= 0 {
		s.Before = strings.TrimSpace(lines[anchor-2])
	}
	if anchor < len(lines) {
		s.After = strings.TrimSpace(lines[anchor])
	}
	return s
}
