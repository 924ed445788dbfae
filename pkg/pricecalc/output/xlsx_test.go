package output

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/models"
	"github.com/xuri/excelize/v2"
)

func testWorkbook() *models.Workbook {
	priced := models.NewTable([]string{"零件号", "采购价"}, [][]interface{}{
		{"P1", int64(1000)},
		{"P2", nil},
	})
	col := priced.AddColumn("回采最高限价", models.ColumnInteger)
	col.Cells[0] = int64(550)

	return &models.Workbook{
		BookName: "in.xlsx",
		Sheets: []models.Sheet{
			{Name: "发动机", Table: priced},
			{Name: "Sheet1", Table: models.NewTable([]string{"a", "b"}, [][]interface{}{{1.25, true}})},
			{Name: "空表", Table: models.NewTable(nil, nil)},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if err := WriteWorkbook(testWorkbook(), path); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	expected := []string{"发动机", "Sheet1", "空表"}
	if len(sheets) != len(expected) {
		t.Fatalf("Expected sheets %v, got %v", expected, sheets)
	}
	for i := range expected {
		if sheets[i] != expected[i] {
			t.Errorf("Sheet %d = %q, expected %q", i, sheets[i], expected[i])
		}
	}

	rows, err := f.GetRows("发动机")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][2] != "回采最高限价" {
		t.Errorf("Expected created header, got %v", rows[0])
	}
	if rows[1][2] != "550" {
		t.Errorf("Expected 550, got %v", rows[1])
	}
	if len(rows[2]) != 1 {
		t.Errorf("Expected absent cells to stay empty, got %v", rows[2])
	}

	cellType, err := f.GetCellType("发动机", "C2")
	if err != nil {
		t.Fatalf("GetCellType failed: %v", err)
	}
	if cellType == excelize.CellTypeSharedString || cellType == excelize.CellTypeInlineString {
		t.Errorf("Expected numeric ceiling cell, got type %v", cellType)
	}

	value, _ := f.GetCellValue("Sheet1", "B2")
	if value != "TRUE" {
		t.Errorf("Expected TRUE, got %q", value)
	}

	empty, _ := f.GetRows("空表")
	if len(empty) != 0 {
		t.Errorf("Expected empty sheet, got %v", empty)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Errorf("Expected mode 0644, got %v", info.Mode().Perm())
		}
	}
}

func TestWriteWorkbookReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := os.WriteFile(path, []byte("stale"), 0o640); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatal(err)
	}

	if err := WriteWorkbook(testWorkbook(), path); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Expected valid workbook, got %v", err)
	}
	f.Close()

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o640 {
			t.Errorf("Expected existing mode 0640 kept, got %v", info.Mode().Perm())
		}
	}
}

func TestWriteWorkbookDates(t *testing.T) {
	table := models.NewTable([]string{"日期", "时间"}, [][]interface{}{
		{models.Date{Serial: 45413, NumFmt: 17}, models.Date{Serial: 45413.5, CustomNumFmt: "yyyy/m/d h:mm"}},
		{models.Date{Serial: 45414, NumFmt: 17}, nil},
	})
	wb := &models.Workbook{Sheets: []models.Sheet{{Name: "Sheet1", Table: table}}}
	path := filepath.Join(t.TempDir(), "dates.xlsx")

	if err := WriteWorkbook(wb, path); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell   string
		raw    string
		numFmt int
		custom string
	}{
		{"A2", "45413", 17, ""},
		{"A3", "45414", 17, ""},
		{"B2", "45413.5", 0, "yyyy/m/d h:mm"},
	}
	for _, tt := range tests {
		raw, err := f.GetCellValue("Sheet1", tt.cell, excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if raw != tt.raw {
			t.Errorf("%s raw = %q, expected %q", tt.cell, raw, tt.raw)
		}

		styleID, err := f.GetCellStyle("Sheet1", tt.cell)
		if err != nil {
			t.Fatalf("GetCellStyle(%s) failed: %v", tt.cell, err)
		}
		style, err := f.GetStyle(styleID)
		if err != nil {
			t.Fatalf("GetStyle(%d) failed: %v", styleID, err)
		}
		if tt.custom != "" {
			if style.CustomNumFmt == nil || *style.CustomNumFmt != tt.custom {
				t.Errorf("%s custom format = %v, expected %q", tt.cell, style.CustomNumFmt, tt.custom)
			}
		} else if style.NumFmt != tt.numFmt {
			t.Errorf("%s NumFmt = %d, expected %d", tt.cell, style.NumFmt, tt.numFmt)
		}
	}

	a2, _ := f.GetCellStyle("Sheet1", "A2")
	a3, _ := f.GetCellStyle("Sheet1", "A3")
	if a2 != a3 {
		t.Errorf("Expected one style per date format, got %d and %d", a2, a3)
	}
}

func TestWriteWorkbookUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	if err := WriteWorkbook(testWorkbook(), path); err == nil {
		t.Fatalf("Expected error for unsupported extension")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no files left behind, got %d", len(entries))
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	err := WriteWorkbook(&models.Workbook{}, filepath.Join(t.TempDir(), "out.xlsx"))
	if !errors.Is(err, ErrEmptyWorkbook) {
		t.Errorf("Expected ErrEmptyWorkbook, got %v", err)
	}
}
