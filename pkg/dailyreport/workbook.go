package dailyreport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only view of a spreadsheet file.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Rows returns the cell text grid of a sheet.
	Rows(sheetName string) ([][]string, error)
	Close() error
}

// OpenWorkbook opens an .xlsx/.xlsm workbook, or a legacy .xls workbook,
// chosen by file extension.
func OpenWorkbook(path string) (Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".xls") {
		wb, closer, err := xls.OpenWithCloser(path, "utf-8")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return &xlsWorkbook{wb: wb, closer: closer}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return &xlsxWorkbook{f: f}, nil
}

type xlsxWorkbook struct {
	f *excelize.File
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheetName string) ([][]string, error) {
	return w.f.GetRows(sheetName)
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

type xlsWorkbook struct {
	wb     *xls.WorkBook
	closer io.Closer
}

func (w *xlsWorkbook) SheetNames() []string {
	names := make([]string, 0, w.wb.NumSheets())
	for i := 0; i < w.wb.NumSheets(); i++ {
		if sheet := w.wb.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

func (w *xlsWorkbook) Rows(sheetName string) ([][]string, error) {
	for i := 0; i < w.wb.NumSheets(); i++ {
		sheet := w.wb.GetSheet(i)
		if sheet == nil || sheet.Name != sheetName {
			continue
		}
		if sheet.MaxRow == 0 && sheet.Row(0) == nil {
			return nil, nil
		}

		rows := make([][]string, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			cells := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows[r] = cells
		}
		return trimTrailingEmpty(rows), nil
	}
	return nil, fmt.Errorf("sheet %s does not exist", sheetName)
}

func (w *xlsWorkbook) Close() error {
	return w.closer.Close()
}

// trimTrailingEmpty drops trailing empty rows, matching excelize GetRows.
func trimTrailingEmpty(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && len(rows[end-1]) == 0 {
		end--
	}
	return rows[:end]
}
