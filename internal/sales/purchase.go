package sales

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/storemate/storemate-cli/internal/api"
)

// CustomerLister fetches the customer collection for the purchase flow.
type CustomerLister interface {
	ListCustomers(ctx context.Context) ([]api.Customer, error)
}

// ItemLister fetches the item catalog for the purchase flow.
type ItemLister interface {
	ListItems(ctx context.Context) ([]api.Item, error)
}

// PurchaseData is everything the purchase flow needs up front: who can
// be billed and what can be sold.
type PurchaseData struct {
	Customers []api.Customer
	Items     []api.Item
}

// LoadPurchaseData fetches customers and items in parallel. Either
// failure fails the load; a purchase flow with half its data is worse
// than one that retries.
func LoadPurchaseData(ctx context.Context, customers CustomerLister, items ItemLister) (*PurchaseData, error) {
	var data PurchaseData

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		fetched, err := customers.ListCustomers(gctx)
		if err != nil {
			return err
		}
		data.Customers = fetched
		return nil
	})
	group.Go(func() error {
		fetched, err := items.ListItems(gctx)
		if err != nil {
			return err
		}
		data.Items = fetched
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
