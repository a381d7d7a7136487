package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hyperjump/mitsuke/internal/models"
)

// Declaration and import heuristics. These are regex approximations over
// raw text, not a parse; they only need to be good enough for ranking.
var (
	exportDeclRe    = regexp.MustCompile(`(?m)export\s+(?:default\s+)?(?:async\s+)?(?:function\*?|class|interface|const|let|var|type|enum)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	exportBraceRe   = regexp.MustCompile(`(?m)export\s*\{([^}]*)\}`)
	moduleExportsRe = regexp.MustCompile(`(?m)module\.exports\s*=\s*\{([^}]*)\}`)
	importFromRe    = regexp.MustCompile(`(?m)import\s+[^;'"]*?from\s+['"]([^'"]+)['"]`)
	dynamicImportRe = regexp.MustCompile(`import\(\s*['"]([^'"]+)['"]\s*\)`)
	requireRe       = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)

	wordSplitRe = regexp.MustCompile(`[^A-Za-z0-9_]+`)
)

// Extractor builds FileMetadata records for candidate files.
type Extractor struct {
	classifier *Classifier
}

// NewExtractor creates an extractor backed by the given classifier.
func NewExtractor(classifier *Classifier) *Extractor {
	if classifier == nil {
		classifier = NewClassifier()
	}
	return &Extractor{classifier: classifier}
}

// Classifier returns the classifier used for test/config/doc detection.
func (e *Extractor) Classifier() *Classifier {
	return e.classifier
}

// Extract stats and reads the file at path and produces its metadata
// snapshot plus the raw content, read once. The size check runs on the
// stat result, before any read, so an oversize file costs one stat and
// nothing more; maxSize <= 0 disables the ceiling. Read errors are
// swallowed: an unreadable file is treated as zero-length content so one
// bad file never aborts a scan. A stat failure or an oversize file is
// returned to the caller, which skips the file.
func (e *Extractor) Extract(path string, maxSize int64, withLineIndex bool) (*models.FileMetadata, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, "", fmt.Errorf("file %s exceeds size limit (%d > %d bytes)", path, info.Size(), maxSize)
	}

	content := ""
	if data, err := os.ReadFile(path); err == nil {
		content = string(data)
	}

	meta := &models.FileMetadata{
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		Extension: strings.ToLower(filepath.Ext(path)),
		LineCount: countLines(content),
		IsTest:    e.classifier.IsTestFile(path),
		IsConfig:  e.classifier.IsConfigFile(path),
		IsDoc:     e.classifier.IsDocFile(path),
		Language:  e.classifier.DetectLanguage(path),
		Exports:   ExtractExports(content),
		Imports:   ExtractImports(content),
	}

	if withLineIndex {
		meta.LineIndex = BuildLineIndex(content)
		meta.Content = content
	}

	return meta, content, nil
}

// ExtractExports collects declared export names from content using the
// declaration regexes. Names are deduplicated; underscore-prefixed names
// are dropped.
func ExtractExports(content string) []string {
	if content == "" {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || strings.HasPrefix(name, "_") || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, m := range exportDeclRe.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	for _, m := range exportBraceRe.FindAllStringSubmatch(content, -1) {
		for _, name := range splitBraceList(m[1]) {
			add(name)
		}
	}
	for _, m := range moduleExportsRe.FindAllStringSubmatch(content, -1) {
		for _, name := range splitBraceList(m[1]) {
			add(name)
		}
	}
	return names
}

// ExtractImports collects imported module identifiers from static,
// dynamic and require-style imports. Identifiers are deduplicated.
func ExtractImports(content string) []string {
	if content == "" {
		return nil
	}

	seen := make(map[string]bool)
	var modules []string
	for _, re := range []*regexp.Regexp{importFromRe, dynamicImportRe, requireRe} {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			module := strings.TrimSpace(m[1])
			if module == "" || seen[module] {
				continue
			}
			seen[module] = true
			modules = append(modules, module)
		}
	}
	return modules
}

// BuildLineIndex maps each lowercase word of more than two characters to
// the ordered 1-based line numbers containing it. Words are runs of
// alphanumeric or underscore characters.
func BuildLineIndex(content string) map[string][]int {
	index := make(map[string][]int)
	if content == "" {
		return index
	}
	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1
		seen := make(map[string]bool)
		for _, word := range wordSplitRe.Split(line, -1) {
			if len(word) <= 2 {
				continue
			}
			word = strings.ToLower(word)
			if seen[word] {
				continue
			}
			seen[word] = true
			index[word] = append(index[word], lineNo)
		}
	}
	return index
}

// splitBraceList splits "a, b as c, d" into exported names, keeping the
// alias for "x as y" entries.
func splitBraceList(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if fields := strings.Fields(part); len(fields) == 3 && fields[1] == "as" {
			part = fields[2]
		} else if len(fields) > 0 {
			part = fields[0]
		}
		// Strip trailing punctuation from object-literal keys ("name:").
		part = strings.TrimRight(part, ":")
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
