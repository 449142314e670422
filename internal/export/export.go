// Package export persists a dataset as XLSX, CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/halcyonlab/tablechat/internal/dataset"
)

// ErrNoDataset is returned when there is nothing to write.
var ErrNoDataset = errors.New("尚未載入任何資料表")

// Write picks the format from the file extension.
func Write(d *dataset.Dataset, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(d, path)
	case ".csv":
		return WriteCSV(d, path)
	case ".json":
		return WriteJSON(d, path)
	default:
		return fmt.Errorf("不支援的匯出格式: %s", filepath.Ext(path))
	}
}

// WriteXLSX writes the dataset to a single-sheet workbook. Numeric
// cells keep their numeric type so spreadsheet formulas work on them.
func WriteXLSX(d *dataset.Dataset, path string) error {
	if d == nil || d.Cols() == 0 {
		return ErrNoDataset
	}
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for c, col := range d.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col.Name); err != nil {
			return fmt.Errorf("write header %q: %w", col.Name, err)
		}
	}
	for r := 0; r < d.Rows(); r++ {
		for c, col := range d.Columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			v := col.Cells[r]
			if v.Missing {
				continue
			}
			var value any = v.Raw
			if col.Kind == dataset.KindNumeric {
				value = v.Num
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// WriteCSV writes UTF-8 CSV with a BOM so spreadsheet applications
// detect the encoding for Chinese content.
func WriteCSV(d *dataset.Dataset, path string) (err error) {
	if d == nil || d.Cols() == 0 {
		return ErrNoDataset
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	w := csv.NewWriter(f)
	header := make([]string, d.Cols())
	for i, col := range d.Columns {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, d.Cols())
	for r := 0; r < d.Rows(); r++ {
		for c, col := range d.Columns {
			if col.Cells[r].Missing {
				row[c] = ""
			} else {
				row[c] = col.Cells[r].Raw
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteJSON writes the dataset as an array of records keyed by column
// name. Missing cells are null; numeric cells are numbers.
func WriteJSON(d *dataset.Dataset, path string) error {
	if d == nil || d.Cols() == 0 {
		return ErrNoDataset
	}
	records := make([]map[string]any, d.Rows())
	for r := 0; r < d.Rows(); r++ {
		rec := make(map[string]any, d.Cols())
		for _, col := range d.Columns {
			cell := col.Cells[r]
			switch {
			case cell.Missing:
				rec[col.Name] = nil
			case col.Kind == dataset.KindNumeric:
				rec[col.Name] = cell.Num
			default:
				rec[col.Name] = cell.Raw
			}
		}
		records[r] = rec
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
