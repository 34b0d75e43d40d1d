package cerror

import (
	"errors"
	"fmt"
)

type ValidationKind string

const (
	InvalidGenre ValidationKind = "InvalidGenre"
	InvalidSort  ValidationKind = "InvalidSort"
)

const (
	InvalidGenreMessage = "Genre must be either: Action, Puzzle, Strategy, Casual, Arcade, or Card"
	InvalidSortMessage  = "Must sort by Rating or App"
)

var (
	ErrInvalidGenre = errors.New(InvalidGenreMessage)
	ErrInvalidSort  = errors.New(InvalidSortMessage)
)

// ValidationError rejects a request because of one query parameter.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value string
}

func NewInvalidGenre(value string) *ValidationError {
	return &ValidationError{Kind: InvalidGenre, Field: "genres", Value: value}
}

func NewInvalidSort(value string) *ValidationError {
	return &ValidationError{Kind: InvalidSort, Field: "sort", Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message())
}

// Message is the client-facing text for the error.
func (e *ValidationError) Message() string {
	return e.Unwrap().Error()
}

func (e *ValidationError) Unwrap() error {
	if e.Kind == InvalidSort {
		return ErrInvalidSort
	}
	return ErrInvalidGenre
}
