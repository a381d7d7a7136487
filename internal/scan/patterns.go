// Package scan extracts lightweight per-file signals: classification,
// language detection, and metadata used by the ranking pipeline.
package scan

// Language associates a language name with the file extensions it owns.
// Order matters: detection returns the first entry owning an extension.
type Language struct {
	Name       string
	Extensions []string
}

// DefaultLanguages is the fixed language table. It drives both extension
// lookup and the query parser's language-name hints.
var DefaultLanguages = []Language{
	{Name: "typescript", Extensions: []string{".ts", ".tsx"}},
	{Name: "javascript", Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}},
	{Name: "python", Extensions: []string{".py"}},
	{Name: "go", Extensions: []string{".go"}},
	{Name: "rust", Extensions: []string{".rs"}},
	{Name: "java", Extensions: []string{".java"}},
	{Name: "kotlin", Extensions: []string{".kt", ".kts"}},
	{Name: "swift", Extensions: []string{".swift"}},
	{Name: "ruby", Extensions: []string{".rb"}},
	{Name: "php", Extensions: []string{".php"}},
	{Name: "csharp", Extensions: []string{".cs"}},
	{Name: "cpp", Extensions: []string{".cpp", ".cc", ".cxx", ".hpp"}},
	{Name: "html", Extensions: []string{".html", ".htm"}},
	{Name: "css", Extensions: []string{".css", ".scss", ".less"}},
	{Name: "sql", Extensions: []string{".sql"}},
	{Name: "shell", Extensions: []string{".sh", ".bash"}},
	{Name: "yaml", Extensions: []string{".yaml", ".yml"}},
	{Name: "json", Extensions: []string{".json"}},
	{Name: "markdown", Extensions: []string{".md", ".mdx"}},
}

// DefaultTestPatterns match test files. Patterns are glob-like: "*"
// matches any run of characters. Each pattern is tried case-insensitively
// against both the bare filename and the full path.
var DefaultTestPatterns = []string{
	"*.test.*",
	"*.spec.*",
	"*_test.*",
	"test_*",
	"*/__tests__/*",
	"*/tests/*",
	"*/test/*",
}

// DefaultConfigPatterns match configuration files.
var DefaultConfigPatterns = []string{
	"*.config.*",
	"config.*",
	"*.conf",
	".*rc",
	".env*",
	"settings.*",
	"*.toml",
	"*.ini",
	"*/config/*",
}

// DefaultDocPatterns match documentation files.
var DefaultDocPatterns = []string{
	"*.md",
	"*.mdx",
	"*.rst",
	"*.txt",
	"readme*",
	"changelog*",
	"contributing*",
	"license*",
	"*/docs/*",
	"*/doc/*",
}
