package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/storemate/storemate-cli/pkg/pagination"
)

// printTable renders rows under a header with aligned columns.
func printTable(out io.Writer, headers []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

// printPageFooter reports which slice of the collection is shown.
func printPageFooter(out io.Writer, info pagination.Info) {
	fmt.Fprintf(out, "page %d of %d (%d total)\n", info.Page, info.TotalPages, info.TotalItems)
}

// money renders an amount with two decimals for display.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
