package k8s

import (
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// NotFoundError reports a missing object; the dashboard maps it to 404.
type NotFoundError struct {
	err error
}

func (e *NotFoundError) Error() string {
	return e.err.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.err
}

func (e *NotFoundError) IsNotFound() {}

// ConflictError reports a write that lost against a concurrent update.
type ConflictError struct {
	err error
}

func (e *ConflictError) Error() string {
	return e.err.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.err
}

func (e *ConflictError) IsConflict() {}

// classify wraps API errors the dashboard tells apart.
func classify(err error) error {
	switch {
	case apierrors.IsNotFound(err):
		return &NotFoundError{err: err}
	case apierrors.IsConflict(err):
		return &ConflictError{err: err}
	}

	return err
}
