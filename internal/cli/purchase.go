package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storemate/storemate-cli/internal/api"
	"github.com/storemate/storemate-cli/internal/cart"
	"github.com/storemate/storemate-cli/internal/sales"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

// cartLine is one parsed --item flag.
type cartLine struct {
	ItemID   string
	Quantity int
}

// parseItemFlag parses "id" or "id:qty".
func parseItemFlag(value string) (cartLine, error) {
	id, qtyPart, found := strings.Cut(strings.TrimSpace(value), ":")
	id = strings.TrimSpace(id)
	if id == "" {
		return cartLine{}, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	line := cartLine{ItemID: id, Quantity: 1}
	if found {
		qty, err := strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil {
			return cartLine{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("bad quantity in %q", value))
		}
		line.Quantity = qty
	}
	return line, nil
}

// itemIndex adapts a fetched item list to the cart's snapshot lookup.
type itemIndex struct {
	byID map[string]api.Item
}

func newItemIndex(items []api.Item) *itemIndex {
	idx := &itemIndex{byID: make(map[string]api.Item, len(items))}
	for _, item := range items {
		idx.byID[item.ID] = item
	}
	return idx
}

func (i *itemIndex) Snapshot(itemID string) (cart.Snapshot, bool) {
	item, ok := i.byID[itemID]
	if !ok {
		return cart.Snapshot{}, false
	}
	return cart.Snapshot{ItemID: item.ID, Name: item.Name, Price: item.Price}, true
}

func (a *App) purchaseCommand() *cobra.Command {
	var customerID string
	var payment string
	var itemFlags []string

	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Record a sale",
		Long:  "Record a sale from one or more --item flags. Without --customer the sale is recorded as walk-in.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.session.Guard(); err != nil {
				return err
			}
			ctx := cmd.Context()

			data, err := sales.LoadPurchaseData(ctx, a.client, a.client)
			if err != nil {
				return err
			}

			var billTo *string
			if customerID != "" {
				found := false
				for _, customer := range data.Customers {
					if customer.ID == customerID {
						found = true
						break
					}
				}
				if !found {
					return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no customer with id %s", customerID))
				}
				billTo = &customerID
			}

			agg, err := cart.NewAggregator(newItemIndex(data.Items), a.client)
			if err != nil {
				return err
			}

			for _, raw := range itemFlags {
				line, err := parseItemFlag(raw)
				if err != nil {
					return err
				}
				if _, err := agg.Add(line.ItemID); err != nil {
					// A duplicate flag is a notice, not a failure; the
					// first occurrence's quantity stands.
					if pkgerrors.CodeOf(err) == pkgerrors.CodeDuplicateItem {
						fmt.Fprintf(a.out, "Notice: %s already in cart, skipping\n", line.ItemID)
						continue
					}
					return err
				}
				if line.Quantity != 1 {
					if err := agg.SetQuantity(line.ItemID, line.Quantity); err != nil {
						return err
					}
				}
			}

			for _, line := range agg.Lines() {
				fmt.Fprintf(a.out, "  %s x%d @ %s = %s\n", line.Name, line.Quantity, money(line.Price), money(line.Subtotal()))
			}

			total := agg.Total()
			sale, err := agg.Submit(ctx, billTo, payment)
			if err != nil {
				return err
			}
			if sale.ID != "" {
				fmt.Fprintf(a.out, "Sale recorded (%s), total %s\n", sale.ID, money(total))
			} else {
				fmt.Fprintf(a.out, "Sale recorded, total %s\n", money(total))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id (omit for walk-in)")
	cmd.Flags().StringVar(&payment, "payment", "cash", "payment type")
	cmd.Flags().StringArrayVar(&itemFlags, "item", nil, "item as id or id:quantity, repeatable")
	return cmd
}
