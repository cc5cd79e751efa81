package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/codebase-genius/genius/internal/model"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayTree shows the classified tree, paginating when the list is
// taller than the terminal.
func (p *TUI) DisplayTree(ctx context.Context, tree m.FileTree, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		fmt.Fprintf(p.output, "classification error: %v\n", err)
		return err
	}

	rows := make([]treeRow, 0, len(tree))
	for path, category := range tree {
		rows = append(rows, treeRow{path: path, category: category})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].path < rows[j].path })

	model := newFileTreeModel(rows)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, sizeErr := term.GetSize(int(f.Fd()))
		if sizeErr == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, printErr := fmt.Fprint(p.output, model.View())
		return printErr
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, runErr := program.Run(); runErr != nil {
		return runErr
	}

	return nil
}

// DisplayCallSites prints call-site lines; no pagination needed for
// the short listing.
func (p *TUI) DisplayCallSites(ctx context.Context, file m.Path, name string, sites []int) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if len(sites) == 0 {
		fmt.Fprintf(p.output, "no calls to %s found in %s\n", name, file)
		return nil
	}

	fmt.Fprintf(p.output, "%s is called in %s on line(s):\n", headerStyle.Render(name), file)

	for _, line := range sites {
		fmt.Fprintf(p.output, "  %d\n", line)
	}

	return nil
}

// DisplayGenerateSummary reports the output location and page counts.
func (p *TUI) DisplayGenerateSummary(ctx context.Context, output m.Path, pages, skipped int) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	fmt.Fprintf(p.output, "Generated %d documentation page(s) in %s\n", pages, output)

	if skipped > 0 {
		fmt.Fprintf(p.output, "%s\n", dimStyle.Render(fmt.Sprintf("Skipped %d unreadable file(s)", skipped)))
	}
}

// treeRow holds one classified file for display.
type treeRow struct {
	path     string
	category m.Category
}

// fileTreeModel is the Bubble Tea model for the paginated tree view.
type fileTreeModel struct {
	rows     []treeRow
	height   int
	width    int
	offset   int
	quitting bool
}

func newFileTreeModel(rows []treeRow) fileTreeModel {
	return fileTreeModel{rows: rows}
}

func (ftm fileTreeModel) Init() tea.Cmd {
	return nil
}

func (ftm fileTreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ftm.height = msg.Height
		ftm.width = msg.Width

		return ftm, nil

	case tea.KeyMsg:
		return ftm.handleKeyPress(msg)
	}

	return ftm, nil
}

func (ftm fileTreeModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // remaining key types fall through to the string switch
	case tea.KeyCtrlC, tea.KeyEsc:
		ftm.quitting = true
		return ftm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		ftm.quitting = true
		return ftm, tea.Quit

	case "down", "j":
		ftm.offset++
		if ftm.offset > ftm.maxOffset() {
			ftm.offset = ftm.maxOffset()
		}

	case "up", "k":
		ftm.offset--
		if ftm.offset < 0 {
			ftm.offset = 0
		}

	case "g", "home":
		ftm.offset = 0

	case "G", "end":
		ftm.offset = ftm.maxOffset()

	case "d", "pgdown":
		ftm.offset += ftm.itemsPerPage()
		if ftm.offset > ftm.maxOffset() {
			ftm.offset = ftm.maxOffset()
		}

	case "u", "pgup":
		ftm.offset -= ftm.itemsPerPage()
		if ftm.offset < 0 {
			ftm.offset = 0
		}
	}

	return ftm, nil
}

// itemsPerPage calculates how many rows fit on screen after header,
// total line, and footer.
func (ftm fileTreeModel) itemsPerPage() int {
	if ftm.height == 0 {
		return 10
	}

	reserved := 8

	available := ftm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (ftm fileTreeModel) maxOffset() int {
	perPage := ftm.itemsPerPage()
	if perPage <= 0 {
		return 0
	}

	maxOff := len(ftm.rows) - perPage
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the list is too large to fit on
// screen.
func (ftm fileTreeModel) needsPagination() bool {
	if len(ftm.rows) == 0 {
		return false
	}

	return len(ftm.rows) > ftm.itemsPerPage() && ftm.height > 0
}

func (ftm fileTreeModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Genius: repository file tree"))
	b.WriteString("\n\n")

	if len(ftm.rows) == 0 {
		b.WriteString("  no classified files found\n")
		return b.String()
	}

	totalRows := len(ftm.rows)
	perPage := ftm.itemsPerPage()
	paginate := ftm.needsPagination()

	start := ftm.offset

	end := start + perPage
	if end > totalRows {
		end = totalRows
	}

	displayRows := ftm.rows
	if paginate {
		displayRows = ftm.rows[start:end]
	}

	for _, row := range displayRows {
		fmt.Fprintf(&b, "  %s  %s\n", row.path, categoryStyle.Render(string(row.category)))
	}

	fmt.Fprintf(&b, "\n  Total: %d file(s)\n", totalRows)

	if paginate {
		currentPage := (ftm.offset / perPage) + 1
		totalPages := (totalRows + perPage - 1) / perPage
		fmt.Fprintf(&b, "\n  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, totalRows)
		b.WriteString(dimStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
