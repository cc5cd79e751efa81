package model

import "fmt"

// FilesystemError reports a failed filesystem operation during
// classification or traversal. It lets callers distinguish "empty
// tree" from "traversal failed".
type FilesystemError struct {
	Op   string
	Path Path
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// InvalidPatternError reports a call-site search name that is not a
// plain identifier and therefore cannot be embedded in a match
// pattern.
type InvalidPatternError struct {
	Name string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid function name for call-site search: %q", e.Name)
}
