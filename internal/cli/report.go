package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/storemate/storemate-cli/internal/export"
	"github.com/storemate/storemate-cli/internal/reports"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

func (a *App) reportCommand() *cobra.Command {
	var (
		kind     string
		start    string
		end      string
		customer string
		format   string
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a sales or customer ledger report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}

			reportKind := reports.Kind(kind)
			table, err := a.reports.Fetch(cmd.Context(), reportKind, reports.Filter{
				StartDate:    start,
				EndDate:      end,
				CustomerName: customer,
			})
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = a.cfg.Export.OutputDir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create output dir")
			}

			var wrotePDF, wroteXLSX bool
			switch format {
			case "pdf":
				wrotePDF = true
			case "xlsx":
				wroteXLSX = true
			case "both":
				wrotePDF, wroteXLSX = true, true
			default:
				return pkgerrors.New(pkgerrors.CodeValidation, "format must be pdf, xlsx or both")
			}

			if wrotePDF {
				path := filepath.Join(outDir, export.FileName(reportKind, "pdf"))
				if err := writeReportFile(path, table, export.NewPDFWriter()); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Wrote %s\n", path)
			}
			if wroteXLSX {
				path := filepath.Join(outDir, export.FileName(reportKind, "xlsx"))
				if err := writeReportFile(path, table, export.NewXLSXWriter()); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Wrote %s\n", path)
			}
			fmt.Fprintf(a.out, "%d rows exported\n", len(table.Rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", string(reports.KindSales), "report type: sales or customerLedger")
	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (sales report)")
	cmd.Flags().StringVar(&end, "end", "", "end date YYYY-MM-DD (sales report)")
	cmd.Flags().StringVar(&customer, "customer", "", "customer name (customer ledger)")
	cmd.Flags().StringVar(&format, "format", "pdf", "output format: pdf, xlsx or both")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory, defaults to the configured export dir")
	return cmd
}

func writeReportFile(path string, table *reports.Table, writer export.Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create report file")
	}
	defer func() { _ = f.Close() }()

	if err := writer.Write(table, f); err != nil {
		return err
	}
	return nil
}
