package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/codebase-genius/genius/internal/model"
)

func TestPageFilename(t *testing.T) {
	require.Equal(t, "main.py.md", PageFilename("main.py"))
	require.Equal(t, "src_lib_util.py.md", PageFilename("src/lib/util.py"))
}

func TestRenderFilePage(t *testing.T) {
	st := m.Structure{
		Functions: []m.Declaration{
			{Name: "foo", Line: 3, Docstring: "does a thing", Kind: m.DeclFunction},
		},
		Classes: []m.Declaration{
			{Name: "Widget", Line: 10, Kind: m.DeclClass},
		},
	}

	page := RenderFilePage("src/app.py", "python", st, 42)

	require.Equal(t, "src_app.py.md", page.Filename)
	require.Contains(t, page.Content, "# `src/app.py`")
	require.Contains(t, page.Content, "- Category: python")
	require.Contains(t, page.Content, "- Lines: 42")
	require.Contains(t, page.Content, "## Functions")
	require.Contains(t, page.Content, "### `foo` (line 3)")
	require.Contains(t, page.Content, "does a thing")
	require.Contains(t, page.Content, "## Classes")
	require.Contains(t, page.Content, "### `Widget` (line 10)")
}

func TestRenderFilePage_NoDeclarations(t *testing.T) {
	page := RenderFilePage("empty.py", "python", m.Structure{}, 0)

	require.Contains(t, page.Content, "No top-level declarations found.")
	require.NotContains(t, page.Content, "## Functions")
}

func TestRenderOverview(t *testing.T) {
	tree := m.FileTree{
		"main.py":   "python",
		"lib.rs":    "rust",
		"util.py":   "python",
		"README.md": m.CategoryReadme,
	}

	page := RenderOverview("myrepo", "A short summary.", tree)

	require.Equal(t, OverviewFilename, page.Filename)
	require.Contains(t, page.Content, "# myrepo")
	require.Contains(t, page.Content, "A short summary.")
	require.Contains(t, page.Content, "## Files (4)")
	require.Contains(t, page.Content, "### python")
	require.Contains(t, page.Content, "- `main.py`")

	// Categories appear in sorted order.
	pythonIdx := strings.Index(page.Content, "### python")
	readmeIdx := strings.Index(page.Content, "### readme")
	rustIdx := strings.Index(page.Content, "### rust")
	require.Less(t, pythonIdx, readmeIdx)
	require.Less(t, readmeIdx, rustIdx)
}
