package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/codebase-genius/genius/internal/model"
)

// OverviewFilename is the name of the repository overview page.
const OverviewFilename = "overview.md"

// PageFilename derives the documentation filename for a source file:
// path separators collapse to underscores and ".md" is appended, so
// every page lands flat in the output directory.
func PageFilename(relPath string) string {
	flat := strings.ReplaceAll(filepath.ToSlash(relPath), "/", "_")
	return flat + ".md"
}

// RenderFilePage renders the markdown documentation page for one
// classified source file.
func RenderFilePage(relPath string, category m.Category, st m.Structure, lineCount int) m.Page {
	var b strings.Builder

	fmt.Fprintf(&b, "# `%s`\n\n", filepath.ToSlash(relPath))
	fmt.Fprintf(&b, "- Category: %s\n", category)
	fmt.Fprintf(&b, "- Lines: %d\n\n", lineCount)

	if len(st.Functions) == 0 && len(st.Classes) == 0 {
		b.WriteString("No top-level declarations found.\n")

		return m.Page{Filename: PageFilename(relPath), Content: b.String()}
	}

	renderDeclarations(&b, "Functions", st.Functions)
	renderDeclarations(&b, "Classes", st.Classes)

	return m.Page{Filename: PageFilename(relPath), Content: b.String()}
}

func renderDeclarations(b *strings.Builder, heading string, decls []m.Declaration) {
	if len(decls) == 0 {
		return
	}

	fmt.Fprintf(b, "## %s\n\n", heading)

	for _, decl := range decls {
		fmt.Fprintf(b, "### `%s` (line %d)\n\n", decl.Name, decl.Line)

		if decl.Docstring != "" {
			fmt.Fprintf(b, "%s\n\n", decl.Docstring)
		}
	}
}

// RenderOverview renders the top-level page: repository name, README
// summary, and the classified tree grouped by category.
func RenderOverview(repoName, readmeSummary string, tree m.FileTree) m.Page {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", repoName)
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(readmeSummary))
	fmt.Fprintf(&b, "## Files (%d)\n\n", len(tree))

	byCategory := map[m.Category][]string{}
	for rel, category := range tree {
		byCategory[category] = append(byCategory[category], rel)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, string(category))
	}

	sort.Strings(categories)

	for _, category := range categories {
		paths := byCategory[m.Category(category)]
		sort.Strings(paths)

		fmt.Fprintf(&b, "### %s\n\n", category)

		for _, rel := range paths {
			fmt.Fprintf(&b, "- `%s`\n", filepath.ToSlash(rel))
		}

		b.WriteString("\n")
	}

	return m.Page{Filename: OverviewFilename, Content: b.String()}
}
