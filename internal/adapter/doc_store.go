package adapter

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/codebase-genius/genius/internal/model"
	"github.com/codebase-genius/genius/pkg"
)

// IndexFilename is the machine-readable index written next to the
// generated pages.
const IndexFilename = "index.yaml"

// DocStore persists rendered documentation pages and the repository
// index to an output directory.
type DocStore interface {
	// SaveDocs writes every spilled page into dir, creating dir if
	// absent.
	SaveDocs(dir m.Path, pages pkg.FileSpill[m.Page]) error

	// SaveIndex writes index.yaml describing the classified files.
	SaveIndex(dir m.Path, entries []m.IndexEntry) error
}

// LocalDocStore implements DocStore on top of a RepoFSAdapter.
type LocalDocStore struct {
	fs RepoFSAdapter
}

// NewLocalDocStore constructs a LocalDocStore.
func NewLocalDocStore(fs RepoFSAdapter) *LocalDocStore {
	return &LocalDocStore{fs: fs}
}

// SaveDocs writes each page under dir.
func (s *LocalDocStore) SaveDocs(dir m.Path, pages pkg.FileSpill[m.Page]) error {
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return pages.Range(func(_ uint64, page m.Page) error {
		target := s.fs.JoinPath(string(dir), page.Filename)

		if err := s.fs.WriteFile(target, []byte(page.Content), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		return nil
	})
}

// SaveIndex marshals the entries to YAML, sorted by path for stable
// output, and writes them under dir.
func (s *LocalDocStore) SaveIndex(dir m.Path, entries []m.IndexEntry) error {
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	sorted := make([]m.IndexEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	content, err := yaml.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	return s.fs.WriteFile(s.fs.JoinPath(string(dir), IndexFilename), content, 0o600)
}
