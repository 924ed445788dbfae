package pricecalc

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/calc"
	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/models"
	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/output"
	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/parser"
	"github.com/xuri/excelize/v2"
)

// Report describes a completed run.
type Report struct {
	// InputPath is the workbook that was read.
	InputPath string
	// OutputPath is the workbook that was written.
	OutputPath string
	// Sheets has one entry per sheet, in workbook order.
	Sheets []SheetReport
}

// SheetReport describes what happened to one sheet.
type SheetReport struct {
	// Index is the 0-based sheet position.
	Index int
	// Name is the sheet name.
	Name string
	// Discount is the applied discount, nil for a pass-through sheet.
	Discount *calc.Discount
	// Stats is the calculation summary. Only Rows is set for pass-through sheets.
	Stats calc.Stats
}

// Run reads every sheet of the workbook at inputPath, prices the sheets
// the policy has a discount for, and writes all sheets, in their
// original order, to outputPath. An empty outputPath is derived from
// inputPath with the configured suffix.
//
// Nothing is written unless the whole workbook was read and calculated.
// Panics are recovered and returned as errors carrying the stack.
func Run(inputPath, outputPath string, opts Options) (report *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = fmt.Errorf("unexpected failure: %v\n%s", r, debug.Stack())
		}
	}()

	logger := opts.logger()
	policy := opts.Policy
	if policy.Len() == 0 {
		policy = calc.DefaultPolicy()
	}

	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
		}
		return nil, err
	}

	logger.Printf("正在读取文件: %s", inputPath)
	wb, err := readWorkbook(inputPath)
	if err != nil {
		return nil, err
	}

	names := wb.SheetNames()
	if len(names) < policy.Len() {
		logger.Printf("\n警告: Excel文件只有 %d 个Sheet，期望至少%d个", len(names), policy.Len())
	}
	logger.Printf("\n检测到 %d 个Sheet: %q", len(names), names)

	report = &Report{InputPath: inputPath}
	for idx := range wb.Sheets {
		sheet := &wb.Sheets[idx]
		logger.Printf("\n处理 Sheet %d: %s", idx+1, sheet.Name)

		sr := SheetReport{Index: idx, Name: sheet.Name}
		if d, ok := policy.RateForSheet(idx); ok {
			logger.Printf("  使用折扣率: Sheet %d (%s)", idx+1, d.Label())
			sr.Discount = &d
			sr.Stats = calc.Calculate(sheet.Table, d)
			logStats(logger, sheet.Name, sr.Stats)
		} else {
			logger.Printf("  警告: Sheet %d 未配置折扣率，跳过价格计算", idx+1)
			sr.Stats.Rows = sheet.Table.RowCount()
		}
		report.Sheets = append(report.Sheets, sr)
	}

	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath, opts.suffix())
	}
	report.OutputPath = outputPath

	logger.Printf("\n正在保存到: %s", outputPath)
	if err := output.WriteWorkbook(wb, outputPath); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Printf("\n✓ 处理完成！")
	logger.Printf("  - 输入文件: %s", inputPath)
	logger.Printf("  - 输出文件: %s", outputPath)
	logger.Printf("  - 处理Sheet数: %d", len(wb.Sheets))

	return report, nil
}

// readWorkbook loads every sheet of the file into memory and closes it.
func readWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoSheets
	}

	wb := &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   make([]models.Sheet, 0, len(sheetList)),
	}
	for i, sheetName := range sheetList {
		tbl, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			return nil, &SheetError{Index: i + 1, Name: sheetName, Err: err}
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{Name: sheetName, Table: tbl})
	}

	return wb, nil
}

func logStats(logger *log.Logger, sheetName string, stats calc.Stats) {
	if stats.Skipped {
		logger.Printf("  警告: Sheet '%s' 未找到'主机厂采购价(含税)'列，跳过处理", sheetName)
		return
	}
	for _, name := range stats.Created {
		logger.Printf("  提示: Sheet '%s' 未找到'%s'列，将创建新列", sheetName, name)
	}
	logger.Printf("  - 采购价列: %s", stats.Refs.BasePrice)
	logger.Printf("  - 共 %d 行，其中 %d 行有有效的采购价格", stats.Rows, stats.Valid)
}
