package plotcsv

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound     = errors.New("cannot open file")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrNoFileLoaded     = errors.New("no CSV file loaded")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrInvalidArgs      = errors.New("invalid arguments")
	ErrEmptySeries      = errors.New("no records to plot")
	ErrUnsupported      = errors.New("not supported by this backend")
)

// ColumnOutOfRangeError is returned when a record has fewer fields than the
// requested column.
type ColumnOutOfRangeError struct {
	Line   int
	Column int
	Fields int
}

func (e *ColumnOutOfRangeError) Error() string {
	return fmt.Sprintf("line %d: column %d out of range (record has %d fields)", e.Line, e.Column, e.Fields)
}

func (e *ColumnOutOfRangeError) Is(target error) bool {
	return target == ErrColumnOutOfRange
}

type InvalidCommandError struct {
	Verb string
}

func (e InvalidCommandError) Error() string {
	return "invalid command: " + e.Verb
}

func (e InvalidCommandError) Is(target error) bool {
	return target == ErrInvalidCommand
}

func usageError(usage string) error {
	return fmt.Errorf("%w: usage: %s", ErrInvalidArgs, usage)
}

func fileNotFound(err error) error {
	return fmt.Errorf("%w: %w", ErrFileNotFound, err)
}
