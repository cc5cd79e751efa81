// Package domain holds the core documentation-generation logic:
// file-tree classification, structure extraction, and the workflow
// that ties them to the adapters.
package domain

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/codebase-genius/genius/internal/model"
)

// IgnoredDirs is the repo-wide set of directory names excluded from
// traversal: version-control metadata, dependency caches, virtual
// environments, build output, and tool caches.
var IgnoredDirs = map[string]struct{}{
	".git":          {},
	"node_modules":  {},
	"vendor":        {},
	"__pycache__":   {},
	"venv":          {},
	".venv":         {},
	"env":           {},
	"build":         {},
	"dist":          {},
	".eggs":         {},
	".tox":          {},
	".pytest_cache": {},
	".mypy_cache":   {},
	"htmlcov":       {},
}

// languageByExt maps a file extension to its language category. Kept
// as a single map literal so the classification rule stays auditable.
var languageByExt = map[string]m.Category{
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
	".cpp":  "cpp",
	".c":    "c",
	".h":    "c",
	".go":   "go",
	".rs":   "rust",
	".rb":   "ruby",
	".php":  "php",
}

// readmeNames lists the recognized README spellings, compared
// case-insensitively against the full filename.
var readmeNames = map[string]struct{}{
	"readme.md":  {},
	"readme.txt": {},
	"readme":     {},
}

// Classify walks the tree under root and maps each recognized file's
// relative path to a category. Hidden entries and IgnoredDirs are
// pruned before descent, so files inside them are never visited.
// Classification depends only on the filename, never file content.
//
// A missing or unreadable root fails with a *model.FilesystemError;
// no partial mapping is returned in that case.
func Classify(root m.Path) (m.FileTree, error) {
	rootStr := string(root)

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, &m.FilesystemError{Op: "classify", Path: root, Err: err}
	}

	if !info.IsDir() {
		return nil, &m.FilesystemError{Op: "classify", Path: root, Err: fs.ErrInvalid}
	}

	tree := m.FileTree{}

	err = filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		name := d.Name()

		if d.IsDir() {
			if path == rootStr {
				return nil
			}

			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			if _, ignored := IgnoredDirs[name]; ignored {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		rel, relErr := filepath.Rel(rootStr, path)
		if relErr != nil {
			return relErr
		}

		ext := filepath.Ext(name)

		switch {
		case languageByExt[ext] != "":
			tree[rel] = languageByExt[ext]
		case isReadmeName(name):
			tree[rel] = m.CategoryReadme
		case ext == ".md":
			tree[rel] = m.CategoryMarkdown
		}

		return nil
	})

	if err != nil {
		return nil, &m.FilesystemError{Op: "classify", Path: root, Err: err}
	}

	return tree, nil
}

func isReadmeName(name string) bool {
	_, ok := readmeNames[strings.ToLower(name)]
	return ok
}
