// Package controller provides output adapters for displaying
// classification and extraction results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/codebase-genius/genius/internal/model"
)

// UI defines the interface for displaying results to the user.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// DisplayTree shows the classified file tree or the classification
	// error.
	DisplayTree(ctx context.Context, tree m.FileTree, err error) error

	// DisplayCallSites shows the call-site line numbers found for a
	// function in a file.
	DisplayCallSites(ctx context.Context, file m.Path, name string, sites []int) error

	// DisplayGenerateSummary reports where the docs were written and
	// how many pages were produced.
	DisplayGenerateSummary(ctx context.Context, output m.Path, pages, skipped int)
}

// NewUI picks the TUI when stdout is a terminal and the simple printer
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
