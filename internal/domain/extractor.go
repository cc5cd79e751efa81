package domain

import (
	"regexp"
	"strings"

	m "github.com/codebase-genius/genius/internal/model"
)

// Extractor is the capability of recovering lightweight structure from
// source text. The regex implementation is a deliberate shallow
// heuristic, not a parser; alternative implementations must keep the
// same single-line docstring-capture contract.
type Extractor interface {
	// ExtractDeclarations scans src line by line and returns the
	// top-level functions and classes it recognizes, in file order.
	ExtractDeclarations(src string) m.Structure

	// FindCallSites returns the 1-based line numbers on which name is
	// applied (followed by an opening parenthesis), one entry per
	// matching line, ascending.
	FindCallSites(src, name string) ([]int, error)
}

// Declarations must start at column 0; nested declarations are
// intentionally not matched.
var (
	funcDeclPattern  = regexp.MustCompile(`^def\s+(\w+)\s*\(`)
	classDeclPattern = regexp.MustCompile(`^class\s+(\w+)`)
	identifierOnly   = regexp.MustCompile(`^[A-Za-z_]\w*$`)
)

// RegexExtractor implements Extractor with line-anchored patterns.
type RegexExtractor struct{}

// NewRegexExtractor constructs a RegexExtractor.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

// ExtractDeclarations scans src for top-level function and class
// declarations. An input with no matches yields empty slices.
func (e *RegexExtractor) ExtractDeclarations(src string) m.Structure {
	lines := strings.Split(src, "\n")

	var st m.Structure

	for i, line := range lines {
		if match := funcDeclPattern.FindStringSubmatch(line); match != nil {
			st.Functions = append(st.Functions, m.Declaration{
				Name:      match[1],
				Line:      i + 1,
				Docstring: docstringAfter(lines, i),
				Kind:      m.DeclFunction,
			})
		}

		if match := classDeclPattern.FindStringSubmatch(line); match != nil {
			st.Classes = append(st.Classes, m.Declaration{
				Name:      match[1],
				Line:      i + 1,
				Docstring: docstringAfter(lines, i),
				Kind:      m.DeclClass,
			})
		}
	}

	return st
}

// docstringAfter captures a one-line doc fragment from the line
// following a declaration. It does not validate that the string
// literal is closed.
func docstringAfter(lines []string, declIndex int) string {
	if declIndex+1 >= len(lines) {
		return ""
	}

	next := strings.TrimSpace(lines[declIndex+1])
	if !strings.HasPrefix(next, `"""`) && !strings.HasPrefix(next, "'''") {
		return ""
	}

	return strings.Trim(strings.Trim(next, `"`), "'")
}

// FindCallSites scans src for lines where name is called. The name
// must be a plain identifier; anything containing pattern
// metacharacters is rejected with *model.InvalidPatternError instead
// of being interpolated into the pattern.
func (e *RegexExtractor) FindCallSites(src, name string) ([]int, error) {
	if !identifierOnly.MatchString(name) {
		return nil, &m.InvalidPatternError{Name: name}
	}

	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\s*\(`)
	if err != nil {
		return nil, &m.InvalidPatternError{Name: name}
	}

	var sites []int

	for i, line := range strings.Split(src, "\n") {
		if pattern.MatchString(line) {
			sites = append(sites, i+1)
		}
	}

	return sites, nil
}
