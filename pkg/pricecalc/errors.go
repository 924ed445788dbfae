package pricecalc

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned by Run when the input path cannot be stat'ed.
	ErrFileNotFound = errors.New("input workbook not found")
	// ErrNoSheets is returned for a workbook without any worksheet.
	ErrNoSheets = errors.New("input workbook has no worksheets")
)

// SheetError wraps a failure to load the sheet at position Index (1-based).
type SheetError struct {
	Index int
	Name  string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *SheetError) Unwrap() error { return e.Err }
