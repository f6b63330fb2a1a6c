package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/storemate/storemate-cli/internal/api"
	"github.com/storemate/storemate-cli/pkg/pagination"
)

var itemHeaders = []string{"ID", "NAME", "DESCRIPTION", "QTY", "PRICE"}

func (a *App) itemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage the item catalog",
	}
	cmd.AddCommand(
		a.itemsListCommand(),
		a.itemsAddCommand(),
		a.itemsUpdateCommand(),
		a.itemsDeleteCommand(),
	)
	return cmd
}

func (a *App) itemsListCommand() *cobra.Command {
	var search string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}
			if err := a.catalog.Refresh(cmd.Context()); err != nil {
				return err
			}

			matched := a.catalog.Search(search)
			pageItems, info := pagination.Paginate(matched, page, a.cfg.List.PageSize)

			rows := make([][]string, 0, len(pageItems))
			for _, item := range pageItems {
				rows = append(rows, []string{
					item.ID, item.Name, item.Description,
					strconv.Itoa(item.Quantity), money(item.Price),
				})
			}
			printTable(a.out, itemHeaders, rows)
			printPageFooter(a.out, info)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by name")
	cmd.Flags().IntVar(&page, "page", 1, "page to show")
	return cmd
}

func itemInputFlags(cmd *cobra.Command, input *api.ItemInput) {
	cmd.Flags().StringVar(&input.Name, "name", "", "item name")
	cmd.Flags().StringVar(&input.Description, "description", "", "item description")
	cmd.Flags().IntVar(&input.Quantity, "quantity", 0, "stock quantity")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "unit price")
}

func (a *App) itemsAddCommand() *cobra.Command {
	var input api.ItemInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}
			created, err := a.catalog.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Added item %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	itemInputFlags(cmd, &input)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *App) itemsUpdateCommand() *cobra.Command {
	var input api.ItemInput

	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Update a catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}
			if err := a.catalog.Update(cmd.Context(), args[0], input); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Updated item %s\n", args[0])
			return nil
		},
	}
	itemInputFlags(cmd, &input)
	return cmd
}

func (a *App) itemsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete a catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}
			if err := a.catalog.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted item %s\n", args[0])
			return nil
		},
	}
}
