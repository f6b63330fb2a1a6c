// Package cart holds the in-progress sale. Lines live only in memory:
// nothing reaches the remote service until Submit, and a submit failure
// leaves every line exactly as it was.
package cart

import (
	"context"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

// Snapshot captures the catalog fields a cart line needs at add time.
// The price is frozen here; later catalog edits do not touch open carts.
type Snapshot struct {
	ItemID string
	Name   string
	Price  float64
}

// Line is one cart entry.
type Line struct {
	ItemID   string
	Name     string
	Price    float64
	Quantity int
}

// Subtotal is the line quantity priced at the frozen unit price.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// ItemSource resolves catalog items for the cart.
type ItemSource interface {
	Snapshot(itemID string) (Snapshot, bool)
}

// SaleCreator persists a finished cart remotely.
type SaleCreator interface {
	CreateSale(ctx context.Context, input api.CreateSaleInput) (*api.Sale, error)
}

// Aggregator accumulates sale lines and submits them as one sale. It is
// owned by a single goroutine and does no locking.
type Aggregator struct {
	lines map[string]*Line
	order []string
	src   ItemSource
	sink  SaleCreator
}

// NewAggregator builds an empty cart over the given catalog source and
// sale sink.
func NewAggregator(src ItemSource, sink SaleCreator) (*Aggregator, error) {
	if src == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart requires an item source")
	}
	if sink == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart requires a sale creator")
	}
	return &Aggregator{
		lines: map[string]*Line{},
		src:   src,
		sink:  sink,
	}, nil
}

// Add appends a new line with quantity 1 for the given item. Adding an
// item already in the cart fails without merging or changing quantity;
// the caller surfaces the notice and the cart stays usable.
func (a *Aggregator) Add(itemID string) (*Line, error) {
	if _, exists := a.lines[itemID]; exists {
		return nil, pkgerrors.New(pkgerrors.CodeDuplicateItem, "")
	}
	snap, ok := a.src.Snapshot(itemID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found in catalog")
	}

	line := &Line{
		ItemID:   snap.ItemID,
		Name:     snap.Name,
		Price:    snap.Price,
		Quantity: 1,
	}
	a.lines[itemID] = line
	a.order = append(a.order, itemID)
	copied := *line
	return &copied, nil
}

// SetQuantity replaces the quantity on an existing line. A quantity of
// zero or less is rejected and the line keeps its previous quantity.
func (a *Aggregator) SetQuantity(itemID string, quantity int) error {
	line, exists := a.lines[itemID]
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "item is not in the cart")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	line.Quantity = quantity
	return nil
}

// Remove drops the line for the given item. Removing an absent item is
// a no-op.
func (a *Aggregator) Remove(itemID string) {
	if _, exists := a.lines[itemID]; !exists {
		return
	}
	delete(a.lines, itemID)
	for i, id := range a.order {
		if id == itemID {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Lines returns the cart contents in insertion order. The slice holds
// copies; mutating it does not touch the cart.
func (a *Aggregator) Lines() []Line {
	out := make([]Line, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, *a.lines[id])
	}
	return out
}

// Len reports the number of lines in the cart.
func (a *Aggregator) Len() int {
	return len(a.lines)
}

// Total recomputes the cart total from current lines.
func (a *Aggregator) Total() float64 {
	var total float64
	for _, line := range a.lines {
		total += line.Subtotal()
	}
	return total
}

// Submit sends the cart as one sale. A nil customerID records a walk-in
// sale. An empty cart fails locally without a network call. On success
// the cart resets to empty; on failure it is left untouched so the
// operator can retry.
func (a *Aggregator) Submit(ctx context.Context, customerID *string, paymentType string) (*api.Sale, error) {
	if len(a.lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "")
	}
	if paymentType == "" {
		paymentType = "cash"
	}

	input := api.CreateSaleInput{
		CustomerID:  customerID,
		Items:       make([]api.SaleLineInput, 0, len(a.order)),
		TotalAmount: a.Total(),
		PaymentType: paymentType,
	}
	for _, id := range a.order {
		line := a.lines[id]
		input.Items = append(input.Items, api.SaleLineInput{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	sale, err := a.sink.CreateSale(ctx, input)
	if err != nil {
		return nil, err
	}

	a.lines = map[string]*Line{}
	a.order = nil
	return sale, nil
}
