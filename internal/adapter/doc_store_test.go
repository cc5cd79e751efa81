package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	m "github.com/codebase-genius/genius/internal/model"
	"github.com/codebase-genius/genius/pkg"
)

func TestLocalDocStore_SaveDocs(t *testing.T) {
	store := NewLocalDocStore(NewLocalRepoFSAdapter())

	spill, err := pkg.NewFileSpill[m.Page]()
	if err != nil {
		t.Fatalf("NewFileSpill() error = %v", err)
	}

	defer spill.Close()

	pages := []m.Page{
		{Filename: "main.py.md", Content: "# `main.py`\n"},
		{Filename: "overview.md", Content: "# repo\n"},
	}
	if err := spill.AppendBatch(pages); err != nil {
		t.Fatalf("AppendBatch() error = %v", err)
	}

	dir := filepath.Join(t.TempDir(), "docs")
	if err := store.SaveDocs(m.Path(dir), spill); err != nil {
		t.Fatalf("SaveDocs() error = %v", err)
	}

	for _, page := range pages {
		content, readErr := os.ReadFile(filepath.Join(dir, page.Filename))
		if readErr != nil {
			t.Fatalf("ReadFile(%s) error = %v", page.Filename, readErr)
		}

		if string(content) != page.Content {
			t.Fatalf("SaveDocs() wrote %q, want %q", content, page.Content)
		}
	}
}

func TestLocalDocStore_SaveIndex(t *testing.T) {
	store := NewLocalDocStore(NewLocalRepoFSAdapter())

	entries := []m.IndexEntry{
		{Path: "z.py", Category: "python", Functions: 2, Lines: 30},
		{Path: "a.py", Category: "python", Classes: 1, Lines: 10},
	}

	dir := filepath.Join(t.TempDir(), "docs")
	if err := store.SaveIndex(m.Path(dir), entries); err != nil {
		t.Fatalf("SaveIndex() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, IndexFilename))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var got []m.IndexEntry
	if err := yaml.Unmarshal(content, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("SaveIndex() wrote %d entries, want 2", len(got))
	}

	// Entries come back sorted by path.
	if got[0].Path != "a.py" || got[1].Path != "z.py" {
		t.Fatalf("SaveIndex() order = [%s %s], want [a.py z.py]", got[0].Path, got[1].Path)
	}

	if got[1].Functions != 2 || got[0].Classes != 1 {
		t.Fatalf("SaveIndex() lost counts: %+v", got)
	}
}
