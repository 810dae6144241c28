package readlater

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a record lacks a url or title.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is returned when a value cannot be written as a
	// single record field: url and title must fit on one line, and tags
	// must also be free of commas.
	ErrInvalidField = errors.New("invalid field")

	// ErrNotFound is returned by tag mutations on a URL that is not in the list.
	ErrNotFound = errors.New("link not found")
)

// ParseError reports which record of a list failed to parse.
type ParseError struct {
	Record int // 1-based position among non-blank records
	Line   int // 1-based line where the record starts
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d (line %d): %v", e.Record, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
