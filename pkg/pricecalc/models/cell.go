// Package models defines the in-memory workbook used by the price calculation.
package models

// ColumnKind describes what a column may hold.
type ColumnKind int

const (
	// ColumnMixed holds whatever the source sheet held: nil, int64, float64, string or bool.
	ColumnMixed ColumnKind = iota
	// ColumnInteger holds only int64 values or nil (absent).
	ColumnInteger
)

// Column is a named sequence of cell values aligned by row index.
type Column struct {
	// Name is the header text as it appears in the sheet.
	Name string
	// Kind constrains the values stored in Cells.
	Kind ColumnKind
	// Cells holds one value per data row; nil means the cell is absent.
	// Values are int64, float64, string, bool or Date.
	Cells []interface{}
}

// Date is a number cell displayed through a date or time format.
// Serial is in the 1900 date system.
type Date struct {
	// Serial is the stored spreadsheet serial (days since 1899-12-30).
	Serial float64
	// NumFmt is the built-in number format ID; used when CustomNumFmt is empty.
	NumFmt int
	// CustomNumFmt is the format code of a custom number format.
	CustomNumFmt string
}
