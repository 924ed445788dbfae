// Package output writes calculated workbooks back to disk.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/models"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook indicates there is no sheet to write.
var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// WriteWorkbook writes every sheet of wb, in order, to path.
// Each sheet gets its header row followed by the data rows; no index
// column is added and absent cells are left empty. The file is written
// next to path first and renamed over it once complete, so a failed
// write never leaves a partial workbook behind.
func WriteWorkbook(wb *models.Workbook, path string) error {
	if len(wb.Sheets) == 0 {
		return ErrEmptyWorkbook
	}

	f, err := Build(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	tmp, err := os.CreateTemp(dir, "."+strings.TrimSuffix(filepath.Base(path), ext)+"-*"+ext)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := f.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := os.Chmod(tmpPath, outputMode(path)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

// outputMode keeps the permissions of an existing file at path.
// New files get 0644 rather than the 0600 of a temp file.
func outputMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0o644
}

// Build renders wb into a new in-memory excelize file.
func Build(wb *models.Workbook) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}

		if err := writeTable(f, sheet.Name, sheet.Table); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	return f, nil
}

// writeTable streams the header and rows of t into sheetName.
func writeTable(f *excelize.File, sheetName string, t *models.Table) error {
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}
	styles := dateStyles{}

	if t != nil && len(t.Columns) > 0 {
		header := make([]interface{}, len(t.Columns))
		for i, name := range t.Headers() {
			if name != "" {
				header[i] = name
			}
		}
		if err := sw.SetRow("A1", header); err != nil {
			return err
		}

		for r := 0; r < t.RowCount(); r++ {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			row, err := styles.apply(f, t.Row(r))
			if err != nil {
				return err
			}
			if err := sw.SetRow(cell, row); err != nil {
				return err
			}
		}
	}

	return sw.Flush()
}

// dateStyles maps a date number format to its style ID in the output file.
type dateStyles map[models.Date]int

// apply replaces models.Date values in row with styled serial cells.
func (ds dateStyles) apply(f *excelize.File, row []interface{}) ([]interface{}, error) {
	for i, v := range row {
		d, ok := v.(models.Date)
		if !ok {
			continue
		}
		styleID, err := ds.styleID(f, d)
		if err != nil {
			return nil, err
		}
		row[i] = excelize.Cell{StyleID: styleID, Value: d.Serial}
	}
	return row, nil
}

func (ds dateStyles) styleID(f *excelize.File, d models.Date) (int, error) {
	key := models.Date{NumFmt: d.NumFmt, CustomNumFmt: d.CustomNumFmt}
	if id, ok := ds[key]; ok {
		return id, nil
	}

	style := &excelize.Style{NumFmt: d.NumFmt}
	if d.CustomNumFmt != "" {
		code := d.CustomNumFmt
		style.CustomNumFmt = &code
	}
	id, err := f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("date style: %w", err)
	}
	ds[key] = id
	return id, nil
}
