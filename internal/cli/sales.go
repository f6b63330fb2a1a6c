package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/storemate/storemate-cli/pkg/pagination"
)

var saleHeaders = []string{"ID", "DATE", "CUSTOMER", "ITEMS", "TOTAL", "PAYMENT"}

func (a *App) salesCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List past sales",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}
			if err := a.sales.Refresh(cmd.Context()); err != nil {
				return err
			}

			pageItems, info := pagination.Paginate(a.sales.Sales(), page, a.cfg.List.PageSize)

			rows := make([][]string, 0, len(pageItems))
			for _, sale := range pageItems {
				customer := "Walk-in"
				if sale.Customer != nil {
					customer = sale.Customer.Name
				}
				rows = append(rows, []string{
					sale.ID,
					sale.Date.Format("02/01/2006"),
					customer,
					strconv.Itoa(len(sale.Items)),
					money(sale.Total),
					sale.PaymentType,
				})
			}
			printTable(a.out, saleHeaders, rows)
			printPageFooter(a.out, info)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to show")
	return cmd
}
