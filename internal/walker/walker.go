// Package walker enumerates candidate files under a root directory,
// honoring include/exclude glob patterns and, optionally, .gitignore.
package walker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
	"go.uber.org/zap"
)

// DefaultExcludePatterns covers dependency directories, build outputs,
// version-control metadata, lockfiles and minified bundles. Patterns use
// doublestar syntax and match against the root-relative path.
var DefaultExcludePatterns = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/.svn/**",
	"**/.hg/**",
	"**/dist/**",
	"**/build/**",
	"**/out/**",
	"**/target/**",
	"**/vendor/**",
	"**/coverage/**",
	"**/__pycache__/**",
	"**/.next/**",
	"**/.cache/**",
	"**/*.min.js",
	"**/*.min.css",
	"**/*.map",
	"**/package-lock.json",
	"**/yarn.lock",
	"**/pnpm-lock.yaml",
	"**/Cargo.lock",
	"**/go.sum",
	"**/*.lock",
}

// Directories pruned without descending, regardless of patterns.
var prunedDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"__pycache__":  true,
}

// Options configures one traversal.
type Options struct {
	// Root is the directory to walk. Must exist and be readable.
	Root string
	// Include patterns; empty means all files.
	Include []string
	// Exclude patterns, applied to root-relative paths.
	Exclude []string
	// RespectGitignore loads the root's .gitignore and drops ignored paths.
	RespectGitignore bool
}

// Walker lists candidate files for the search engine.
type Walker struct {
	logger *zap.Logger
}

// New creates a walker. A nil logger falls back to a no-op logger.
func New(logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{logger: logger}
}

// Walk returns the ordered list of absolute file paths under opts.Root
// matching the include patterns and not matching the exclude patterns.
// Directories are never returned. Failure to read the root is a hard
// error; unreadable subtrees are skipped.
func (w *Walker) Walk(ctx context.Context, opts Options) ([]string, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var ignore gitignore.GitIgnore
	if opts.RespectGitignore {
		ignore = loadGitignore(root)
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A root that cannot be enumerated means no traversal happened
			// at all, which must surface as an error rather than an empty
			// result. Deeper unreadable entries are skipped, not fatal.
			if path == root {
				return err
			}
			w.logger.Debug("walk entry failed", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == root {
				return nil
			}
			if prunedDirs[d.Name()] || excludedDir(rel, opts.Exclude) {
				return filepath.SkipDir
			}
			if ignore != nil {
				if match := ignore.Relative(rel, true); match != nil && match.Ignore() {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !included(rel, opts.Include) || excluded(rel, opts.Exclude) {
			return nil
		}
		if ignore != nil {
			if match := ignore.Relative(rel, false); match != nil && match.Ignore() {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	return files, nil
}

func included(rel string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func excluded(rel string, patterns []string) bool {
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// excludedDir reports whether a directory's whole subtree is excluded by a
// "**/name/**" style pattern, so it can be pruned instead of walked.
func excludedDir(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if !strings.HasSuffix(pattern, "/**") {
			continue
		}
		if ok, err := doublestar.Match(strings.TrimSuffix(pattern, "/**"), rel); err == nil && ok {
			return true
		}
	}
	return false
}

func loadGitignore(root string) gitignore.GitIgnore {
	f, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()
	return gitignore.New(f, root, nil)
}
