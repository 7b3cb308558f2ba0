package paging

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidField matches any *InvalidFieldError via errors.Is.
	ErrInvalidField = errors.New("paging: invalid field")
	// ErrInvalidArgument matches any *InvalidArgumentError via errors.Is.
	ErrInvalidArgument = errors.New("paging: invalid argument")
	// ErrSourceUnavailable matches any *SourceUnavailableError via errors.Is.
	ErrSourceUnavailable = errors.New("paging: source unavailable")
)

// InvalidFieldError reports a sort or filter column that is not registered
// for the item type.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("paging: property '%s' does not exist", e.Field)
}

func (e *InvalidFieldError) Is(target error) bool { return target == ErrInvalidField }

// InvalidArgumentError reports a page index or size outside its domain.
type InvalidArgumentError struct {
	Name  string
	Value int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("paging: invalid %s %d", e.Name, e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// SourceUnavailableError wraps a failure of the underlying source.
type SourceUnavailableError struct {
	Op  string
	Err error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("paging: source %s failed: %v", e.Op, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

func (e *SourceUnavailableError) Is(target error) bool { return target == ErrSourceUnavailable }

// sourceError leaves cancellation untouched so callers can tell an aborted
// request from a broken store.
func sourceError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var sue *SourceUnavailableError
	if errors.As(err, &sue) {
		return err
	}
	return &SourceUnavailableError{Op: op, Err: err}
}
