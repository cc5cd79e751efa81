package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/codebase-genius/genius/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestClassify_LabelsByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), "# hello")
	writeFile(t, filepath.Join(root, "notes.md"), "notes")
	writeFile(t, filepath.Join(root, "main.py"), "print(1)")
	writeFile(t, filepath.Join(root, "lib.rs"), "fn main() {}")

	tree, err := Classify(m.Path(root))
	require.NoError(t, err)

	require.Equal(t, m.FileTree{
		"README.md": m.CategoryReadme,
		"notes.md":  m.CategoryMarkdown,
		"main.py":   "python",
		"lib.rs":    "rust",
	}, tree)
}

func TestClassify_SkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.py"), "")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "")
	writeFile(t, filepath.Join(root, ".git", "hooks", "pre-commit.py"), "")
	writeFile(t, filepath.Join(root, "__pycache__", "app.py"), "")
	writeFile(t, filepath.Join(root, "venv", "lib", "site.py"), "")

	tree, err := Classify(m.Path(root))
	require.NoError(t, err)

	require.Equal(t, m.FileTree{"app.py": "python"}, tree)
}

func TestClassify_SkipsHiddenEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".hidden.py"), "")
	writeFile(t, filepath.Join(root, ".config", "settings.py"), "")
	writeFile(t, filepath.Join(root, "visible.py"), "")

	tree, err := Classify(m.Path(root))
	require.NoError(t, err)

	require.Equal(t, m.FileTree{"visible.py": "python"}, tree)
}

func TestClassify_OmitsUnrecognizedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "data.csv"), "a,b")
	writeFile(t, filepath.Join(root, "Makefile"), "all:")

	tree, err := Classify(m.Path(root))
	require.NoError(t, err)
	require.Empty(t, tree)
}

func TestClassify_ReadmeSpellings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ReadMe.TXT"), "readme")
	writeFile(t, filepath.Join(root, "docs", "README"), "readme")

	tree, err := Classify(m.Path(root))
	require.NoError(t, err)

	require.Equal(t, m.FileTree{
		"ReadMe.TXT":                    m.CategoryReadme,
		filepath.Join("docs", "README"): m.CategoryReadme,
	}, tree)
}

func TestClassify_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "")
	writeFile(t, filepath.Join(root, "sub", "b.rb"), "")
	writeFile(t, filepath.Join(root, "sub", "deep", "c.php"), "")

	first, err := Classify(m.Path(root))
	require.NoError(t, err)

	second, err := Classify(m.Path(root))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestClassify_MissingRootFails(t *testing.T) {
	tree, err := Classify(m.Path(filepath.Join(t.TempDir(), "does-not-exist")))
	require.Nil(t, tree)

	var fsErr *m.FilesystemError
	require.ErrorAs(t, err, &fsErr)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestClassify_FileRootFails(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "not a directory")

	_, err := Classify(m.Path(file))

	var fsErr *m.FilesystemError
	require.ErrorAs(t, err, &fsErr)
}
