package tracker

import "fmt"

// BuildError represents a failure while constructing one sheet.
type BuildError struct {
	Sheet string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building sheet %q: %v", e.Sheet, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
