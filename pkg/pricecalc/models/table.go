package models

// Table is an ordered set of columns sharing the same row count.
// Rows have no identity beyond their position.
type Table struct {
	Columns []*Column
	rows    int
}

// NewTable builds a table from a header row and data rows.
// Rows shorter than the widest row (or the header) are padded with nil,
// and columns without a header get an empty name.
func NewTable(header []string, rows [][]interface{}) *Table {
	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	t := &Table{
		Columns: make([]*Column, width),
		rows:    len(rows),
	}
	for c := 0; c < width; c++ {
		name := ""
		if c < len(header) {
			name = header[c]
		}
		col := &Column{
			Name:  name,
			Kind:  ColumnMixed,
			Cells: make([]interface{}, len(rows)),
		}
		for r, row := range rows {
			if c < len(row) {
				col.Cells[r] = row[c]
			}
		}
		t.Columns[c] = col
	}
	return t
}

// Headers returns the column names in column order.
func (t *Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Name
	}
	return headers
}

// RowCount returns the number of data rows (header excluded).
func (t *Table) RowCount() int {
	return t.rows
}

// Column returns the first column named name, or nil.
func (t *Table) Column(name string) *Column {
	for _, col := range t.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

// AddColumn appends a column whose cells are all absent.
func (t *Table) AddColumn(name string, kind ColumnKind) *Column {
	col := &Column{
		Name:  name,
		Kind:  kind,
		Cells: make([]interface{}, t.rows),
	}
	t.Columns = append(t.Columns, col)
	return col
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []interface{} {
	row := make([]interface{}, len(t.Columns))
	for c, col := range t.Columns {
		row[c] = col.Cells[i]
	}
	return row
}
