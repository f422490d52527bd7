package finder

import (
	"errors"
	"fmt"
)

// ErrNotDirectory reports that a search root exists but is not a directory.
// It is wrapped by *InvalidRootError and matchable with errors.Is.
var ErrNotDirectory = errors.New("not a directory")

// InvalidRootError reports that a supplied search root is unusable: it does
// not exist, cannot be inspected, or exists but is not a directory.
// The whole call fails; roots are never skipped individually.
type InvalidRootError struct {
	Path string // Absolute path of the offending root
	Err  error  // Underlying cause (stat error, read error, or ErrNotDirectory)
}

// Error implements the error interface for InvalidRootError.
func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid search root %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As traversal.
func (e *InvalidRootError) Unwrap() error {
	return e.Err
}

// PredicateError reports that a predicate failed while evaluating an entry.
// The original error is preserved unchanged and exposed through Unwrap.
type PredicateError struct {
	Path string // Absolute path the predicate was evaluating
	Err  error  // The error the predicate returned
}

// Error implements the error interface for PredicateError.
func (e *PredicateError) Error() string {
	return fmt.Sprintf("predicate failed on %s: %v", e.Path, e.Err)
}

// Unwrap returns the predicate's original error.
func (e *PredicateError) Unwrap() error {
	return e.Err
}

// MultipleMatchError reports that a single-match search observed more than
// one passing entry. It records the first two offending paths; traversal
// stops as soon as the second is seen, so later matches are not listed.
type MultipleMatchError struct {
	First  string
	Second string
}

// Error implements the error interface for MultipleMatchError.
func (e *MultipleMatchError) Error() string {
	return fmt.Sprintf("more than one match: %s, %s", e.First, e.Second)
}
