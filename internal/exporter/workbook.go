package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// Workbook sheet names
const (
	SheetPeakMonth       = "Peak Month"
	SheetLowestMonth     = "Lowest Month"
	SheetTopProduct      = "Top Product"
	SheetCustomerByState = "Customer by State"
)

// WorkbookExporter writes the multi-sheet summary workbook.
type WorkbookExporter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewWorkbookExporter creates a workbook exporter.
func NewWorkbookExporter(paths *config.Paths, logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{paths: paths, logger: logger}
}

// Export writes the four-sheet summary workbook. On an empty valid set
// every sheet carries its header row plus a no-data notice, so the file
// opens legibly rather than looking truncated.
func (e *WorkbookExporter) Export(ctx context.Context, sel domain.Selections) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the first report sheet
	if err := f.SetSheetName("Sheet1", SheetPeakMonth); err != nil {
		return errors.NewStorageError("failed to name workbook sheet", err)
	}
	for _, sheet := range []string{SheetLowestMonth, SheetTopProduct, SheetCustomerByState} {
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to create sheet %q", sheet), err)
		}
	}

	if err := writeMonthSheet(f, SheetPeakMonth, sel.PeakMonths, sel.HasData); err != nil {
		return err
	}
	if err := writeMonthSheet(f, SheetLowestMonth, sel.LowestMonths, sel.HasData); err != nil {
		return err
	}

	if err := setRow(f, SheetTopProduct, 1, "Product", "TotalSales"); err != nil {
		return err
	}
	if sel.HasData {
		total, _ := sel.TopProduct.Total.Float64()
		if err := setRow(f, SheetTopProduct, 2, sel.TopProduct.Product, total); err != nil {
			return err
		}
	} else if err := setRow(f, SheetTopProduct, 2, "no data"); err != nil {
		return err
	}

	if err := setRow(f, SheetCustomerByState, 1, "StateCode", "CustomerCount"); err != nil {
		return err
	}
	if sel.HasData {
		for i, s := range sel.CustomerCountByState {
			if err := setRow(f, SheetCustomerByState, i+2, s.StateCode, s.Customers); err != nil {
				return err
			}
		}
	} else if err := setRow(f, SheetCustomerByState, 2, "no data"); err != nil {
		return err
	}

	if err := f.SaveAs(e.paths.SummaryWorkbookXLSX); err != nil {
		return errors.NewStorageError("failed to save summary workbook", err)
	}

	e.logger.InfoContext(ctx, "wrote summary workbook",
		slog.String("path", e.paths.SummaryWorkbookXLSX),
		slog.Bool("has_data", sel.HasData))
	return nil
}

func writeMonthSheet(f *excelize.File, sheet string, months []domain.MonthlySales, hasData bool) error {
	if err := setRow(f, sheet, 1, "MonthLabel", "TotalSales"); err != nil {
		return err
	}
	if !hasData {
		return setRow(f, sheet, 2, "no data")
	}
	for i, m := range months {
		total, _ := m.Total.Float64()
		if err := setRow(f, sheet, i+2, m.Label, total); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.NewStorageError("failed to resolve workbook cell", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write row %d on sheet %q", row, sheet), err)
	}
	return nil
}
