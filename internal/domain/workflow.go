package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/codebase-genius/genius/internal/adapter"
	"github.com/codebase-genius/genius/internal/controller"
	m "github.com/codebase-genius/genius/internal/model"
	"github.com/codebase-genius/genius/pkg"
)

// GenerateArgs configures a documentation-generation run.
type GenerateArgs struct {
	// Source is a repository URL or a local directory.
	Source string

	// Output is the directory the docs are written to.
	Output m.Path

	// CloneDir is where remote repositories are materialized.
	CloneDir m.Path

	// Exclude holds regexes matched against relative paths.
	Exclude []string

	// Threads bounds the per-file extraction fan-out.
	Threads int

	// SummaryLimit caps the README summary length in runes.
	SummaryLimit int
}

// ListArgs configures a classification listing.
type ListArgs struct {
	Root    m.Path
	Exclude []string
}

// CallsArgs configures a call-site search.
type CallsArgs struct {
	File     m.Path
	Function string
}

// Workflow is the use-case layer of the genius CLI.
type Workflow interface {
	// Generate runs the full pipeline: resolve the source, classify
	// the tree, extract structure from each source file, render
	// markdown pages, and save them with an index.
	Generate(ctx context.Context, args GenerateArgs) error

	// List classifies the tree and hands it to the UI.
	List(ctx context.Context, args ListArgs) error

	// Calls finds the call sites of a function in one file.
	Calls(ctx context.Context, args CallsArgs) error
}

type workflow struct {
	fs        adapter.RepoFSAdapter
	git       adapter.GitAdapter
	docs      adapter.DocStore
	extractor Extractor
	ui        controller.UI
}

// NewWorkflow wires the workflow with its adapters.
func NewWorkflow(
	fs adapter.RepoFSAdapter,
	git adapter.GitAdapter,
	docs adapter.DocStore,
	extractor Extractor,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:        fs,
		git:       git,
		docs:      docs,
		extractor: extractor,
		ui:        ui,
	}
}

// Generate documents the repository at args.Source. Per-file failures
// are logged and skipped so one unreadable file never aborts the run;
// classification failures abort with no partial output.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	root, repoName, err := w.resolveSource(ctx, args)
	if err != nil {
		return err
	}

	tree, err := Classify(root)
	if err != nil {
		return err
	}

	tree, err = filterTree(tree, args.Exclude)
	if err != nil {
		return err
	}

	summary := ReadmeSummary(w.fs, root, args.SummaryLimit)

	spill, err := pkg.NewFileSpill[m.Page]()
	if err != nil {
		return err
	}

	defer func() { _ = spill.Close() }()

	group, groupCtx := errgroup.WithContext(ctx)

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	group.SetLimit(threads)

	var (
		mu      sync.Mutex
		entries []m.IndexEntry
		skipped int
	)

	for rel, category := range tree {
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}

			absolute := w.fs.JoinPath(string(root), rel)
			lines := w.fs.CountLines(absolute)
			entry := m.IndexEntry{Path: filepath.ToSlash(rel), Category: category, Lines: lines}

			if !category.IsLanguage() {
				mu.Lock()
				entries = append(entries, entry)
				mu.Unlock()

				return nil
			}

			text, readErr := w.fs.ReadFileText(absolute)
			if readErr != nil {
				slog.Warn("skipping unreadable file", "path", absolute, "error", readErr)

				mu.Lock()
				skipped++
				mu.Unlock()

				return nil
			}

			structure := w.extractor.ExtractDeclarations(text)
			entry.Functions = len(structure.Functions)
			entry.Classes = len(structure.Classes)

			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()

			return spill.Append(RenderFilePage(rel, category, structure, lines))
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := spill.Append(RenderOverview(repoName, summary, tree)); err != nil {
		return err
	}

	if err := w.docs.SaveDocs(args.Output, spill); err != nil {
		return err
	}

	if err := w.docs.SaveIndex(args.Output, entries); err != nil {
		return err
	}

	w.ui.DisplayGenerateSummary(ctx, args.Output, int(spill.Len()), skipped)

	return nil
}

// List classifies the tree under args.Root and displays it.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	tree, err := Classify(args.Root)
	if err == nil {
		tree, err = filterTree(tree, args.Exclude)
	}

	return w.ui.DisplayTree(ctx, tree, err)
}

// Calls reads one file and displays the call sites of args.Function.
func (w *workflow) Calls(ctx context.Context, args CallsArgs) error {
	text, err := w.fs.ReadFileText(args.File)
	if err != nil {
		return &m.FilesystemError{Op: "read", Path: args.File, Err: err}
	}

	sites, err := w.extractor.FindCallSites(text, args.Function)
	if err != nil {
		return err
	}

	return w.ui.DisplayCallSites(ctx, args.File, args.Function, sites)
}

// resolveSource returns the local root to document and the repository
// name. Remote URLs are cloned into CloneDir; an existing clone is
// reused.
func (w *workflow) resolveSource(ctx context.Context, args GenerateArgs) (m.Path, string, error) {
	if !isRemoteURL(args.Source) {
		root := m.Path(args.Source)

		if _, err := w.fs.FileInfo(root); err != nil {
			return "", "", &m.FilesystemError{Op: "resolve", Path: root, Err: err}
		}

		abs, err := filepath.Abs(args.Source)
		if err != nil {
			abs = args.Source
		}

		return root, filepath.Base(abs), nil
	}

	name := w.git.RepoName(args.Source)
	target := w.fs.JoinPath(string(args.CloneDir), name)

	if _, err := w.fs.FileInfo(target); err == nil {
		slog.Debug("reusing existing clone", "path", target)
		return target, name, nil
	}

	slog.Info("cloning repository", "url", args.Source, "target", target)

	if err := w.git.Clone(ctx, args.Source, target); err != nil {
		return "", "", err
	}

	return target, name, nil
}

func isRemoteURL(source string) bool {
	return strings.Contains(source, "://") || strings.HasPrefix(source, "git@")
}

// filterTree removes entries whose relative path matches any exclude
// pattern. An invalid pattern fails the whole run.
func filterTree(tree m.FileTree, exclude []string) (m.FileTree, error) {
	if len(exclude) == 0 {
		return tree, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, pattern)
	}

	filtered := m.FileTree{}

	for rel, category := range tree {
		excluded := false

		for _, pattern := range patterns {
			if pattern.MatchString(filepath.ToSlash(rel)) {
				excluded = true
				break
			}
		}

		if !excluded {
			filtered[rel] = category
		}
	}

	return filtered, nil
}
