package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrConcurrencyFailure = errors.New("concurrent modification")
	ErrRepoFailure        = errors.New("repository failure")
	ErrAlreadyExists      = errors.New("survey already exists")
)

// ValidationError reports a field that failed a value-object rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed to validate: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "missing field"}
}

// NotFoundError names the resource an id failed to resolve to.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource '%s' was not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error { return ErrResourceNotFound }

func notFound(kind, id string) *NotFoundError {
	return &NotFoundError{Resource: fmt.Sprintf("%s with id %s", kind, id)}
}

// RepoFailure wraps a storage error so both ErrRepoFailure and the driver
// cause stay reachable through errors.Is / errors.As.
func RepoFailure(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrRepoFailure, err)
}

// SurveyNotFound is returned when a survey id does not resolve.
func SurveyNotFound(id string) *NotFoundError {
	return notFound("survey", id)
}
