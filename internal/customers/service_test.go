package customers

import (
	"context"
	"testing"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

type stubAPI struct {
	customers []api.Customer
	added     *api.CustomerInput
	listErr   error
	addErr    error
}

func (s *stubAPI) ListCustomers(ctx context.Context) ([]api.Customer, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.customers, nil
}

func (s *stubAPI) AddCustomer(ctx context.Context, input api.CustomerInput) (*api.Customer, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.added = &input
	return &api.Customer{ID: "c9", Name: input.Name, Address: input.Address, MobileNumber: input.MobileNumber}, nil
}

func seedCustomers() []api.Customer {
	return []api.Customer{
		{ID: "c1", Name: "Asha Traders", Address: "Main Road", MobileNumber: "9876543210"},
		{ID: "c2", Name: "Bharat Stores", Address: "Market Lane", MobileNumber: "9123456780"},
	}
}

func newSyncedService(t *testing.T, remote *stubAPI) *Service {
	t.Helper()
	svc, err := NewService(remote)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return svc
}

func TestRefreshAndGet(t *testing.T) {
	svc := newSyncedService(t, &stubAPI{customers: seedCustomers()})

	if len(svc.Customers()) != 2 {
		t.Fatalf("unexpected cache size %d", len(svc.Customers()))
	}
	customer, ok := svc.Get("c2")
	if !ok || customer.Name != "Bharat Stores" {
		t.Fatalf("unexpected customer %+v ok=%v", customer, ok)
	}
	if _, ok := svc.Get("missing"); ok {
		t.Fatal("resolved an unknown customer id")
	}
}

func TestAddRejectsBadMobileNumber(t *testing.T) {
	remote := &stubAPI{}
	svc := newSyncedService(t, remote)

	for _, mobile := range []string{"98765", "98765432100", "98765abcde", ""} {
		_, err := svc.Add(context.Background(), api.CustomerInput{
			Name:         "New Shop",
			Address:      "Side Street",
			MobileNumber: mobile,
		})
		if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
			t.Fatalf("mobile %q: expected validation error, got %v", mobile, err)
		}
	}
	if remote.added != nil {
		t.Fatal("invalid input reached the remote service")
	}
}

func TestAddAppendsPersistedRecord(t *testing.T) {
	remote := &stubAPI{customers: seedCustomers()}
	svc := newSyncedService(t, remote)

	created, err := svc.Add(context.Background(), api.CustomerInput{
		Name:         "  New Shop  ",
		Address:      "Side Street",
		MobileNumber: "9876501234",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != "c9" || created.Name != "New Shop" {
		t.Fatalf("unexpected created customer %+v", created)
	}
	if _, ok := svc.Get("c9"); !ok {
		t.Fatal("new customer not in cache")
	}
}

func TestAddRemoteFailureLeavesCache(t *testing.T) {
	remote := &stubAPI{customers: seedCustomers()}
	svc := newSyncedService(t, remote)
	remote.addErr = pkgerrors.New(pkgerrors.CodeConflict, "customer exists")

	_, err := svc.Add(context.Background(), api.CustomerInput{
		Name:         "Asha Traders",
		Address:      "Main Road",
		MobileNumber: "9876543210",
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(svc.Customers()) != 2 {
		t.Fatal("failed add mutated the cache")
	}
}

func TestSearch(t *testing.T) {
	svc := newSyncedService(t, &stubAPI{customers: seedCustomers()})

	if hits := svc.Search("asha"); len(hits) != 1 || hits[0].ID != "c1" {
		t.Fatalf("unexpected hits %+v", hits)
	}
	if hits := svc.Search(""); len(hits) != 2 {
		t.Fatalf("empty term should return everyone, got %d", len(hits))
	}
}
