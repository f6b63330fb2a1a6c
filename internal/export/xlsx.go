package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/storemate/storemate-cli/internal/reports"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

const sheetName = "Report"

// XLSXWriter renders a report table as a single-sheet workbook.
type XLSXWriter struct{}

// NewXLSXWriter builds an XLSX writer.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// Write renders the table onto one sheet: header row first, then one
// row per table row. Cells are written as strings so the workbook
// holds exactly the same values as the PDF.
func (w *XLSXWriter) Write(table *reports.Table, out io.Writer) error {
	if table == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "nil report table")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "drop default sheet")
	}

	if err := writeRow(f, 1, table.Columns); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render xlsx")
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cell coordinates")
	}
	values := make([]any, len(cells))
	for i, v := range cells {
		values[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write row")
	}
	return nil
}
