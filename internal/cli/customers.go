package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storemate/storemate-cli/internal/api"
	"github.com/storemate/storemate-cli/pkg/pagination"
)

var customerHeaders = []string{"ID", "NAME", "ADDRESS", "MOBILE"}

func (a *App) customersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customer records",
	}
	cmd.AddCommand(
		a.customersListCommand(),
		a.customersAddCommand(),
	)
	return cmd
}

func (a *App) customersListCommand() *cobra.Command {
	var search string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}
			if err := a.customers.Refresh(cmd.Context()); err != nil {
				return err
			}

			matched := a.customers.Search(search)
			pageItems, info := pagination.Paginate(matched, page, a.cfg.List.PageSize)

			rows := make([][]string, 0, len(pageItems))
			for _, customer := range pageItems {
				rows = append(rows, []string{
					customer.ID, customer.Name, customer.Address, customer.MobileNumber,
				})
			}
			printTable(a.out, customerHeaders, rows)
			printPageFooter(a.out, info)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by name")
	cmd.Flags().IntVar(&page, "page", 1, "page to show")
	return cmd
}

func (a *App) customersAddCommand() *cobra.Command {
	var input api.CustomerInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}
			created, err := a.customers.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Added customer %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&input.Address, "address", "", "customer address")
	cmd.Flags().StringVar(&input.MobileNumber, "mobile", "", "ten digit mobile number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("mobile")
	return cmd
}
