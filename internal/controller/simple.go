package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/codebase-genius/genius/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTree prints the classified tree as a table, or the
// classification error.
func (s *SimpleUI) DisplayTree(ctx context.Context, tree m.FileTree, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("classification error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderTreeTable(tree))

	return nil
}

// DisplayCallSites prints the line numbers where name is called.
func (s *SimpleUI) DisplayCallSites(ctx context.Context, file m.Path, name string, sites []int) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if len(sites) == 0 {
		s.printf("no calls to %s found in %s\n", name, file)
		return nil
	}

	s.printf("%s is called in %s on line(s):\n", name, file)

	for _, line := range sites {
		s.printf("  %d\n", line)
	}

	return nil
}

// DisplayGenerateSummary reports the output location and page counts.
func (s *SimpleUI) DisplayGenerateSummary(ctx context.Context, output m.Path, pages, skipped int) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("Generated %d documentation page(s) in %s\n", pages, output)

	if skipped > 0 {
		s.printf("Skipped %d unreadable file(s)\n", skipped)
	}
}

func renderTreeTable(tree m.FileTree) string {
	paths := make([]string, 0, len(tree))
	for path := range tree {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Category"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, path := range paths {
		table.Append([]string{path, string(tree[path])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}
