package export

import (
	"io"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/storemate/storemate-cli/internal/reports"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

// pageBreakY is where a new page starts on A4 portrait with 10mm margins.
const pageBreakY = 270.0

// usableWidth is the printable width in mm on A4 portrait with 10mm margins.
const usableWidth = 190.0

// PDFWriter renders a report table as an A4 portrait PDF.
type PDFWriter struct{}

// NewPDFWriter builds a PDF writer.
func NewPDFWriter() *PDFWriter {
	return &PDFWriter{}
}

// Write renders the table: title, header row, one cell row per table
// row. The header row repeats after every page break so no page shows
// bare data.
func (w *PDFWriter) Write(table *reports.Table, out io.Writer) error {
	if table == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "nil report table")
	}

	widths := columnWidths(table.Columns)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(usableWidth, 10, table.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeHeader(pdf, table.Columns, widths)

	pdf.SetFont("Arial", "", 9)
	for _, row := range table.Rows {
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
			writeHeader(pdf, table.Columns, widths)
			pdf.SetFont("Arial", "", 9)
		}
		for i, cell := range row {
			align := "L"
			if i >= len(table.Columns)-4 {
				align = "R"
			}
			last := i == len(row)-1
			lineBreak := 0
			if last {
				lineBreak = 1
			}
			pdf.CellFormat(widths[i], 6, cell, "1", lineBreak, align, false, 0, "")
		}
	}

	if err := pdf.Output(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render pdf")
	}
	return nil
}

func writeHeader(pdf *gofpdf.Fpdf, columns []string, widths []float64) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	for i, column := range columns {
		last := i == len(columns)-1
		lineBreak := 0
		if last {
			lineBreak = 1
		}
		pdf.CellFormat(widths[i], 7, column, "1", lineBreak, "C", true, 0, "")
	}
}

// columnWidths lays the known report shapes out over the printable
// width; anything else gets an even split.
func columnWidths(columns []string) []float64 {
	switch len(columns) {
	case 8:
		// Sr. No., Date, Customer, Item Name, Quantity, Price, Subtotal, Total
		return []float64{14, 24, 36, 40, 18, 19, 19, 20}
	case 7:
		// Sr. No., Date, Item Name, Quantity, Price, Subtotal, Total
		return []float64{14, 26, 56, 18, 25, 25, 26}
	}
	widths := make([]float64, len(columns))
	for i := range widths {
		widths[i] = usableWidth / float64(len(columns))
	}
	return widths
}
