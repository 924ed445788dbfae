package models

// Sheet is a named table within a workbook.
type Sheet struct {
	// Name is the sheet name.
	Name string
	// Table holds the header and data rows of the sheet.
	Table *Table
}

// Workbook is an ordered list of sheets. Order and names are kept end to end.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets lists the sheets in workbook order.
	Sheets []Sheet
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
