// Package reports turns nested sale records into flat tables that the
// PDF and spreadsheet writers render from without re-deriving anything.
package reports

import (
	"strconv"
	"time"

	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

// Kind selects which report to build.
type Kind string

const (
	KindSales          Kind = "sales"
	KindCustomerLedger Kind = "customerLedger"
)

const dateLayout = "02/01/2006"

// Line is one item line inside a report group.
type Line struct {
	ItemName  string
	Quantity  int
	UnitPrice float64
}

// Group is one sale in the report: its lines plus the fields shown only
// on the group's first row.
type Group struct {
	Date     time.Time
	Customer string
	Total    float64
	Lines    []Line
}

// Table is the flattened, already-stringified report. Both export
// encodings render exactly these cells, so their contents match by
// construction.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

var salesColumns = []string{
	"Sr. No.", "Date", "Customer", "Item Name", "Quantity", "Price (INR)", "Subtotal (INR)", "Total (INR)",
}

var ledgerColumns = []string{
	"Sr. No.", "Date", "Item Name", "Quantity", "Price (INR)", "Subtotal (INR)", "Total (INR)",
}

// Flatten lays the groups out one row per item line. Group-level cells
// (serial number, date, customer, total) appear on the first row of
// each group; the remaining rows carry empty strings there so every
// row has the same column count. Serial numbers are 1-based over
// groups, not rows.
func Flatten(kind Kind, title string, groups []Group) (*Table, error) {
	var columns []string
	switch kind {
	case KindSales:
		columns = salesColumns
	case KindCustomerLedger:
		columns = ledgerColumns
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown report type")
	}

	table := &Table{Title: title, Columns: columns}
	for i, group := range groups {
		if len(group.Lines) == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "report entry has no item lines")
		}
		for j, line := range group.Lines {
			row := make([]string, 0, len(columns))
			if j == 0 {
				row = append(row, strconv.Itoa(i+1), group.Date.Format(dateLayout))
				if kind == KindSales {
					row = append(row, group.Customer)
				}
			} else {
				row = append(row, "", "")
				if kind == KindSales {
					row = append(row, "")
				}
			}
			subtotal := line.UnitPrice * float64(line.Quantity)
			row = append(row,
				line.ItemName,
				strconv.Itoa(line.Quantity),
				money(line.UnitPrice),
				money(subtotal),
			)
			if j == 0 {
				row = append(row, money(group.Total))
			} else {
				row = append(row, "")
			}
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}

// money renders an amount with exactly two decimals.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
