// Package export renders flattened report tables to PDF and XLSX
// files. Both writers take the same table and emit the same cell
// values; only the container format differs.
package export

import (
	"fmt"
	"io"

	"github.com/storemate/storemate-cli/internal/reports"
)

// FileName derives the download name for a report, matching the
// pattern <reportType>-report.<ext>.
func FileName(kind reports.Kind, ext string) string {
	return fmt.Sprintf("%s-report.%s", string(kind), ext)
}

// Writer renders a table to one output format.
type Writer interface {
	Write(table *reports.Table, out io.Writer) error
}
