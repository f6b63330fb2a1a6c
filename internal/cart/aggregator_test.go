package cart

import (
	"context"
	"testing"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

type stubSource struct {
	snapshots map[string]Snapshot
}

func (s *stubSource) Snapshot(itemID string) (Snapshot, bool) {
	snap, ok := s.snapshots[itemID]
	return snap, ok
}

type stubSink struct {
	calls int
	input api.CreateSaleInput
	sale  *api.Sale
	err   error
}

func (s *stubSink) CreateSale(ctx context.Context, input api.CreateSaleInput) (*api.Sale, error) {
	s.calls++
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	if s.sale != nil {
		return s.sale, nil
	}
	return &api.Sale{ID: "s1"}, nil
}

func newTestCart(t *testing.T, sink *stubSink) *Aggregator {
	t.Helper()
	src := &stubSource{snapshots: map[string]Snapshot{
		"i1": {ItemID: "i1", Name: "Rice", Price: 60},
		"i2": {ItemID: "i2", Name: "Sugar", Price: 45.5},
		"i3": {ItemID: "i3", Name: "Oil", Price: 180},
	}}
	agg, err := NewAggregator(src, sink)
	if err != nil {
		t.Fatalf("new aggregator: %v", err)
	}
	return agg
}

func TestAddDuplicateLeavesCartUnchanged(t *testing.T) {
	agg := newTestCart(t, &stubSink{})

	if _, err := agg.Add("i1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := agg.SetQuantity("i1", 3); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	_, err := agg.Add("i1")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDuplicateItem {
		t.Fatalf("expected duplicate item error, got %v", err)
	}

	lines := agg.Lines()
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("duplicate add mutated the cart: %+v", lines)
	}
	meta := pkgerrors.MetadataFor(pkgerrors.CodeDuplicateItem)
	if meta.Fatal {
		t.Fatal("duplicate item must not be fatal")
	}
}

func TestAddUnknownItem(t *testing.T) {
	agg := newTestCart(t, &stubSink{})
	if _, err := agg.Add("missing"); pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetQuantityRejectsNonPositive(t *testing.T) {
	agg := newTestCart(t, &stubSink{})
	if _, err := agg.Add("i1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := agg.SetQuantity("i1", 4); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	for _, quantity := range []int{0, -2} {
		if err := agg.SetQuantity("i1", quantity); pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
			t.Fatalf("quantity %d: expected validation error, got %v", quantity, err)
		}
	}
	if lines := agg.Lines(); lines[0].Quantity != 4 {
		t.Fatalf("rejected quantity mutated the line: %+v", lines[0])
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	agg := newTestCart(t, &stubSink{})
	if _, err := agg.Add("i1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	agg.Remove("i9")
	if agg.Len() != 1 {
		t.Fatalf("removing an absent item changed the cart, len=%d", agg.Len())
	}

	agg.Remove("i1")
	if agg.Len() != 0 {
		t.Fatalf("remove did not drop the line, len=%d", agg.Len())
	}
}

func TestLinesPreserveInsertionOrder(t *testing.T) {
	agg := newTestCart(t, &stubSink{})
	for _, id := range []string{"i2", "i1", "i3"} {
		if _, err := agg.Add(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	agg.Remove("i1")

	lines := agg.Lines()
	if len(lines) != 2 || lines[0].ItemID != "i2" || lines[1].ItemID != "i3" {
		t.Fatalf("unexpected order: %+v", lines)
	}
}

func TestTotalRecomputes(t *testing.T) {
	agg := newTestCart(t, &stubSink{})
	if _, err := agg.Add("i1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := agg.Add("i2"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if total := agg.Total(); total != 105.5 {
		t.Fatalf("unexpected total %v", total)
	}

	if err := agg.SetQuantity("i1", 3); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if total := agg.Total(); total != 225.5 {
		t.Fatalf("total did not follow quantity change: %v", total)
	}

	agg.Remove("i2")
	if total := agg.Total(); total != 180 {
		t.Fatalf("total did not follow removal: %v", total)
	}
}

func TestSubmitEmptyCartSkipsNetwork(t *testing.T) {
	sink := &stubSink{}
	agg := newTestCart(t, sink)

	_, err := agg.Submit(context.Background(), nil, "cash")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeEmptyCart {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if sink.calls != 0 {
		t.Fatalf("empty submit reached the network %d times", sink.calls)
	}
}

func TestSubmitBuildsPayloadAndResets(t *testing.T) {
	sink := &stubSink{}
	agg := newTestCart(t, sink)
	if _, err := agg.Add("i1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := agg.Add("i3"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := agg.SetQuantity("i1", 2); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	customerID := "c1"
	sale, err := agg.Submit(context.Background(), &customerID, "upi")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sale.ID != "s1" {
		t.Fatalf("unexpected sale %+v", sale)
	}

	input := sink.input
	if input.CustomerID == nil || *input.CustomerID != "c1" {
		t.Fatalf("unexpected customer %v", input.CustomerID)
	}
	if input.PaymentType != "upi" || input.TotalAmount != 300 {
		t.Fatalf("unexpected payload %+v", input)
	}
	if len(input.Items) != 2 || input.Items[0].ItemID != "i1" || input.Items[1].ItemID != "i3" {
		t.Fatalf("unexpected line order %+v", input.Items)
	}
	if input.Items[0].Quantity != 2 || input.Items[0].Price != 60 {
		t.Fatalf("unexpected first line %+v", input.Items[0])
	}

	if agg.Len() != 0 || agg.Total() != 0 {
		t.Fatalf("cart did not reset after submit: len=%d total=%v", agg.Len(), agg.Total())
	}
}

func TestSubmitWalkInOmitsCustomer(t *testing.T) {
	sink := &stubSink{}
	agg := newTestCart(t, sink)
	if _, err := agg.Add("i1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := agg.Submit(context.Background(), nil, ""); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sink.input.CustomerID != nil {
		t.Fatalf("walk-in sale carried a customer: %v", *sink.input.CustomerID)
	}
	if sink.input.PaymentType != "cash" {
		t.Fatalf("expected cash default, got %q", sink.input.PaymentType)
	}
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	sink := &stubSink{err: pkgerrors.New(pkgerrors.CodeUnreachable, "down")}
	agg := newTestCart(t, sink)
	if _, err := agg.Add("i1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := agg.Submit(context.Background(), nil, "cash"); err == nil {
		t.Fatal("expected submit error")
	}
	if agg.Len() != 1 {
		t.Fatalf("failed submit emptied the cart, len=%d", agg.Len())
	}
}

func TestSnapshotPriceIsFrozen(t *testing.T) {
	src := &stubSource{snapshots: map[string]Snapshot{
		"i1": {ItemID: "i1", Name: "Rice", Price: 60},
	}}
	agg, err := NewAggregator(src, &stubSink{})
	if err != nil {
		t.Fatalf("new aggregator: %v", err)
	}
	if _, err := agg.Add("i1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	src.snapshots["i1"] = Snapshot{ItemID: "i1", Name: "Rice", Price: 75}
	if lines := agg.Lines(); lines[0].Price != 60 {
		t.Fatalf("catalog edit leaked into the open cart: %+v", lines[0])
	}
}
