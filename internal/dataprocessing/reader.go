package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// Required input columns. Additional columns are ignored.
const (
	ColumnOrderDate  = "Order_Date"
	ColumnProduct    = "Product"
	ColumnTotalSales = "Total_Sales"
	ColumnStateCode  = "State_Code"
)

// ReadFile reads the sales dataset from a CSV or Excel file, selected by
// extension, and returns the raw rows in input order. A missing file or a
// header without the four required columns is fatal: no output may be
// produced from a malformed dataset.
func ReadFile(path, sheet string) ([]domain.RawRecord, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readExcelRows(path, sheet)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("input file %s has no header row", filepath.Base(path)))
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.RawRecord{
			OrderDate:  cell(row, columns[ColumnOrderDate]),
			Product:    cell(row, columns[ColumnProduct]),
			TotalSales: cell(row, columns[ColumnTotalSales]),
			StateCode:  cell(row, columns[ColumnStateCode]),
		})
	}

	slog.Info("Read sales dataset",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	return records, nil
}

// readCSVRows reads all rows from a CSV file.
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open input file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated; missing cells read as empty

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV input", err).
			WithContext("path", path)
	}

	if len(rows) > 0 {
		// Strip a UTF-8 BOM left by spreadsheet exports
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}

	return rows, nil
}

// readExcelRows reads all rows from one sheet of an Excel workbook.
// An empty sheet name selects the first sheet.
func readExcelRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open input workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewValidationError("input workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheet), err).
			WithContext("path", path)
	}

	return rows, nil
}

// mapColumns locates the required columns in the header row,
// case-insensitively. Extra columns are ignored.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(ColumnOrderDate):
			columns[ColumnOrderDate] = i
		case strings.ToLower(ColumnProduct):
			columns[ColumnProduct] = i
		case strings.ToLower(ColumnTotalSales):
			columns[ColumnTotalSales] = i
		case strings.ToLower(ColumnStateCode):
			columns[ColumnStateCode] = i
		}
	}

	for _, required := range []string{ColumnOrderDate, ColumnProduct, ColumnTotalSales, ColumnStateCode} {
		if _, ok := columns[required]; !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("required column %q missing from input header", required))
		}
	}

	return columns, nil
}

// cell returns row[idx], or "" when the row is too short.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
