// Package model defines the data types shared across the genius CLI.
package model

// DeclKind distinguishes the two declaration shapes the extractor
// recognizes.
type DeclKind string

const (
	// DeclFunction is a top-level function declaration.
	DeclFunction DeclKind = "function"

	// DeclClass is a top-level class declaration.
	DeclClass DeclKind = "class"
)

// Declaration is one discovered function or class. Line is 1-based.
// Docstring holds only the first line of an adjacent doc comment, with
// the quote markers stripped; it is empty when no doc comment follows
// the declaration.
type Declaration struct {
	Name      string
	Line      int
	Docstring string
	Kind      DeclKind
}

// Structure is the result of extracting declarations from one file.
// Both slices are in file order (ascending line number). A file with
// no matches yields empty slices, not an error.
type Structure struct {
	Functions []Declaration
	Classes   []Declaration
}

// Page is one rendered documentation file, ready to be written to the
// output directory.
type Page struct {
	Filename string
	Content  string
}

// IndexEntry is one row of the generated index.yaml, describing a
// classified source file and its extraction counts.
type IndexEntry struct {
	Path      string   `yaml:"path"`
	Category  Category `yaml:"category"`
	Functions int      `yaml:"functions"`
	Classes   int      `yaml:"classes"`
	Lines     int      `yaml:"lines"`
}
