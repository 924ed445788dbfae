// Package parser reads workbook sheets into tables and resolves their price columns.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a sheet into a table. The first row is the header;
// every following row is a data row.
// Cell values are read raw (no number formatting applied) and typed by
// their stored cell type: numbers become int64 or float64, or models.Date
// when their style shows a date or time; booleans become bool and
// everything else string. Empty cells are nil.
func ReadSheet(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return models.NewTable(nil, nil), nil
	}

	dates := newDateStyles(f)
	header := rows[0]
	data := make([][]interface{}, 0, len(rows)-1)
	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, after the header
		values := make([]interface{}, len(row))

		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}

			v := typedValue(raw, cellType)
			if isNumber(v) {
				if d, ok, err := dates.lookup(sheetName, cellName, v); err != nil {
					return nil, err
				} else if ok {
					v = d
				}
			}
			values[colIdx] = v
		}

		data = append(data, values)
	}

	return models.NewTable(header, data), nil
}

// typedValue converts a raw cell value according to its cell type.
// Text cells stay text even when they look numeric ("00123").
func typedValue(raw string, cellType excelize.CellType) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(raw)
	default:
		return raw
	}
}

// parseValue reads a stored number, keeping whole numbers as int64.
// Text that is not a number comes back unchanged.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}
