// Package adapter contains infrastructure adapters for the genius CLI.
package adapter

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	m "github.com/codebase-genius/genius/internal/model"
)

// RepoFSAdapter abstracts filesystem operations the domain layer needs
// when reading a repository and writing documentation. It hides direct
// `os` access so the workflow logic can be tested without touching the
// disk.
type RepoFSAdapter interface {
	// ReadFileText loads a file and returns its contents as text.
	// Invalid UTF-8 sequences are replaced rather than failing, so a
	// single undecodable file degrades instead of aborting a run.
	ReadFileText(path m.Path) (string, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory, including missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// CountLines counts the lines in a file; errors degrade to 0.
	CountLines(path m.Path) int

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalRepoFSAdapter is the concrete RepoFSAdapter backed by the os
// package.
type LocalRepoFSAdapter struct{}

// NewLocalRepoFSAdapter constructs a LocalRepoFSAdapter ready to be
// wired into the workflow.
func NewLocalRepoFSAdapter() *LocalRepoFSAdapter {
	return &LocalRepoFSAdapter{}
}

// ReadFileText loads file contents, substituting the Unicode
// replacement character for invalid byte sequences.
func (a *LocalRepoFSAdapter) ReadFileText(path m.Path) (string, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	return strings.ToValidUTF8(string(content), string(utf8.RuneError)), nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalRepoFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates a directory, including missing parents.
func (a *LocalRepoFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalRepoFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// CountLines counts the lines in the file at path. A missing or
// unreadable file counts as 0 lines.
func (a *LocalRepoFSAdapter) CountLines(path m.Path) int {
	f, err := os.Open(string(path))
	if err != nil {
		return 0
	}

	defer func() { _ = f.Close() }()

	count := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		count++
	}

	if scanner.Err() != nil {
		return 0
	}

	return count
}

// RemoveAll removes a directory and all its contents.
func (a *LocalRepoFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalRepoFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalRepoFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
