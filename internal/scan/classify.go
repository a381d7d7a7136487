package scan

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Classifier answers test/config/doc classification and language detection
// for file paths. The pattern tables are injectable so alternate sets can
// be supplied in tests or configuration; the zero-value tables fall back
// to the package defaults.
type Classifier struct {
	testPatterns   []string
	configPatterns []string
	docPatterns    []string
	languages      []Language

	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewClassifier creates a classifier using the default pattern tables.
func NewClassifier() *Classifier {
	return NewClassifierWithTables(DefaultTestPatterns, DefaultConfigPatterns, DefaultDocPatterns, DefaultLanguages)
}

// NewClassifierWithTables creates a classifier with custom tables.
// Nil tables fall back to the defaults.
func NewClassifierWithTables(test, config, doc []string, languages []Language) *Classifier {
	if test == nil {
		test = DefaultTestPatterns
	}
	if config == nil {
		config = DefaultConfigPatterns
	}
	if doc == nil {
		doc = DefaultDocPatterns
	}
	if languages == nil {
		languages = DefaultLanguages
	}
	return &Classifier{
		testPatterns:   test,
		configPatterns: config,
		docPatterns:    doc,
		languages:      languages,
		cache:          make(map[string]*regexp.Regexp),
	}
}

// IsTestFile reports whether the path looks like a test file.
func (c *Classifier) IsTestFile(path string) bool {
	return c.matchesAny(path, c.testPatterns)
}

// IsConfigFile reports whether the path looks like a configuration file.
func (c *Classifier) IsConfigFile(path string) bool {
	return c.matchesAny(path, c.configPatterns)
}

// IsDocFile reports whether the path looks like a documentation file.
func (c *Classifier) IsDocFile(path string) bool {
	return c.matchesAny(path, c.docPatterns)
}

// DetectLanguage returns the language owning the path's extension, or
// "unknown" when no table entry claims it.
func (c *Classifier) DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "unknown"
	}
	for _, lang := range c.languages {
		for _, e := range lang.Extensions {
			if e == ext {
				return lang.Name
			}
		}
	}
	return "unknown"
}

// Languages returns the language table in detection order.
func (c *Classifier) Languages() []Language {
	return c.languages
}

// matchesAny tries every pattern against the lowercased basename and the
// lowercased full path.
func (c *Classifier) matchesAny(path string, patterns []string) bool {
	full := strings.ToLower(filepath.ToSlash(path))
	base := strings.ToLower(filepath.Base(path))
	for _, pattern := range patterns {
		re := c.compile(pattern)
		if re.MatchString(base) || re.MatchString(full) {
			return true
		}
	}
	return false
}

// compile turns a glob-like pattern into an anchored regexp where "*"
// matches any run of characters. Compiled patterns are cached.
func (c *Classifier) compile(pattern string) *regexp.Regexp {
	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.cache[pattern]; ok {
		return re
	}
	var sb strings.Builder
	sb.WriteString("^")
	for i, part := range strings.Split(pattern, "*") {
		if i > 0 {
			sb.WriteString(".*")
		}
		sb.WriteString(regexp.QuoteMeta(strings.ToLower(part)))
	}
	sb.WriteString("$")
	re := regexp.MustCompile(sb.String())
	c.cache[pattern] = re
	return re
}
