package walker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func relPaths(t *testing.T, root string, files []string) []string {
	t.Helper()
	var rels []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestWalk_DefaultExclusions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/auth.ts", "export const a = 1")
	writeFile(t, root, "src/app.min.js", "minified")
	writeFile(t, root, "node_modules/pkg/index.js", "dep")
	writeFile(t, root, "dist/bundle.js", "built")
	writeFile(t, root, "package-lock.json", "{}")
	writeFile(t, root, "README.md", "# hi")

	w := New(nil)
	files, err := w.Walk(context.Background(), Options{
		Root:    root,
		Exclude: DefaultExcludePatterns,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"README.md", "src/auth.ts"}, relPaths(t, root, files))
}

func TestWalk_IncludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/auth.ts", "a")
	writeFile(t, root, "src/auth.py", "b")
	writeFile(t, root, "main.go", "c")

	w := New(nil)
	files, err := w.Walk(context.Background(), Options{
		Root:    root,
		Include: []string{"**/*.ts"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"src/auth.ts"}, relPaths(t, root, files))
}

func TestWalk_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "secrets/\n*.log\n")
	writeFile(t, root, "secrets/key.pem", "k")
	writeFile(t, root, "debug.log", "l")
	writeFile(t, root, "main.go", "m")

	w := New(nil)
	files, err := w.Walk(context.Background(), Options{
		Root:             root,
		RespectGitignore: true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{".gitignore", "main.go"}, relPaths(t, root, files))
}

func TestWalk_MissingRoot(t *testing.T) {
	w := New(nil)
	_, err := w.Walk(context.Background(), Options{
		Root: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.Error(t, err)
}

func TestWalk_UnreadableRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")
	require.NoError(t, os.Chmod(root, 0o000))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	w := New(nil)
	_, err := w.Walk(context.Background(), Options{Root: root})
	require.Error(t, err)
}

func TestWalk_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "plain.txt", "x")

	w := New(nil)
	_, err := w.Walk(context.Background(), Options{
		Root: filepath.Join(root, "plain.txt"),
	})
	require.Error(t, err)
}

func TestWalk_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.txt", "b")
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "sub/c.txt", "c")

	w := New(nil)
	first, err := w.Walk(context.Background(), Options{Root: root})
	require.NoError(t, err)
	second, err := w.Walk(context.Background(), Options{Root: root})
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, []string{"a.txt", "b.txt", "sub/c.txt"}, relPaths(t, root, first))
}

func TestWalk_Cancellation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := New(nil)
	_, err := w.Walk(ctx, Options{Root: root})
	require.ErrorIs(t, err, context.Canceled)
}
