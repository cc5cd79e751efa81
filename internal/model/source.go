package model

// Path represents a file system path.
type Path string

// Category is the classification label assigned to a file: a language
// name from the extension table, "markdown", or "readme".
type Category string

const (
	// CategoryReadme marks a file recognized as the repository README.
	CategoryReadme Category = "readme"

	// CategoryMarkdown marks a generic markdown file.
	CategoryMarkdown Category = "markdown"
)

// FileTree maps a path relative to the repository root to its category.
// Paths inside ignored or hidden directories never appear here.
type FileTree map[string]Category

// IsLanguage reports whether the category names a programming language
// rather than a documentation file.
func (c Category) IsLanguage() bool {
	return c != CategoryReadme && c != CategoryMarkdown
}
