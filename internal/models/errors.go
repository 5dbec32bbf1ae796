package models

import "errors"

// Domain-specific errors surfaced by the CLI when an operation was a no-op
var (
	// ErrTaskNotFound indicates no task in the list has the given ID
	ErrTaskNotFound = errors.New("task not found")

	// ErrPositionOutOfRange indicates a reorder position outside the list
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrUnknownTag indicates a label that is not part of the tag set
	ErrUnknownTag = errors.New("unknown tag")
)
