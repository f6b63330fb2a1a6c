package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/storemate/storemate-cli/internal/reports"
)

func sampleTable() *reports.Table {
	return &reports.Table{
		Title:   "Sales Report",
		Columns: []string{"Sr. No.", "Date", "Customer", "Item Name", "Quantity", "Price (INR)", "Subtotal (INR)", "Total (INR)"},
		Rows: [][]string{
			{"1", "03/08/2026", "Asha Traders", "Rice", "2", "120.00", "240.00", "285.50"},
			{"", "", "", "Sugar", "1", "45.50", "45.50", ""},
			{"2", "04/08/2026", "Walk-in", "Oil", "1", "180.00", "180.00", "180.00"},
		},
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(reports.KindSales, "pdf"); got != "sales-report.pdf" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := FileName(reports.KindCustomerLedger, "xlsx"); got != "customerLedger-report.xlsx" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestPDFWriterProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPDFWriter().Write(sampleTable(), &buf); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Fatalf("output does not start with a PDF marker: %q", buf.String()[:8])
	}
}

func TestPDFWriterHandlesManyRows(t *testing.T) {
	table := sampleTable()
	// Enough rows to force page breaks and the repeated header path.
	for i := 0; i < 200; i++ {
		table.Rows = append(table.Rows, []string{"3", "05/08/2026", "Bharat Stores", "Salt", "1", "20.00", "20.00", "20.00"})
	}

	var buf bytes.Buffer
	if err := NewPDFWriter().Write(table, &buf); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty pdf output")
	}
}

func TestXLSXWriterRoundTripsCells(t *testing.T) {
	table := sampleTable()
	var buf bytes.Buffer
	if err := NewXLSXWriter().Write(table, &buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Report")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != len(table.Rows)+1 {
		t.Fatalf("unexpected row count %d", len(rows))
	}
	for i, want := range table.Columns {
		if rows[0][i] != want {
			t.Fatalf("header cell %d = %q, want %q", i, rows[0][i], want)
		}
	}
	for r, wantRow := range table.Rows {
		got := rows[r+1]
		for c, want := range wantRow {
			var cell string
			if c < len(got) {
				cell = got[c]
			}
			if cell != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", r+1, c, cell, want)
			}
		}
	}
}

func TestWritersEmitIdenticalCellValues(t *testing.T) {
	// Both writers render the same flattened table; the workbook cells
	// are readable, so check them against the table that also fed the
	// PDF.
	table := sampleTable()

	var pdfBuf, xlsxBuf bytes.Buffer
	if err := NewPDFWriter().Write(table, &pdfBuf); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if err := NewXLSXWriter().Write(table, &xlsxBuf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	f, err := excelize.OpenReader(&xlsxBuf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Report")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	for r, wantRow := range table.Rows {
		for c, want := range wantRow {
			var cell string
			if c < len(rows[r+1]) {
				cell = rows[r+1][c]
			}
			if cell != want {
				t.Fatalf("workbook diverged from table at (%d,%d): %q != %q", r+1, c, cell, want)
			}
		}
	}
}
