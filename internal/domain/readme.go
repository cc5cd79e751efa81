package domain

import (
	"github.com/codebase-genius/genius/internal/adapter"
	m "github.com/codebase-genius/genius/internal/model"
)

// readmeCandidates is probed in order at the repository root.
var readmeCandidates = []string{"README.md", "readme.md", "README.txt", "README", "readme"}

// DefaultReadmeSummary is returned when no README exists.
const DefaultReadmeSummary = "No README file found in repository."

// ReadmeSummary locates the repository README and returns its content
// truncated to maxLen runes. Unreadable candidates are skipped; when
// nothing matches, DefaultReadmeSummary is returned.
func ReadmeSummary(fs adapter.RepoFSAdapter, root m.Path, maxLen int) string {
	for _, name := range readmeCandidates {
		path := fs.JoinPath(string(root), name)

		if _, err := fs.FileInfo(path); err != nil {
			continue
		}

		content, err := fs.ReadFileText(path)
		if err != nil {
			continue
		}

		return truncate(content, maxLen)
	}

	return DefaultReadmeSummary
}

func truncate(content string, maxLen int) string {
	if maxLen <= 0 {
		return content
	}

	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}

	return string(runes[:maxLen]) + "..."
}
