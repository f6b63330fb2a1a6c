// Package customers manages the client-side copy of the customer book.
package customers

import (
	"context"
	"strings"
	"time"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
	"github.com/storemate/storemate-cli/pkg/validators"
)

const maxFieldLen = 200

// API is the slice of the remote client the customer book needs.
type API interface {
	ListCustomers(ctx context.Context) ([]api.Customer, error)
	AddCustomer(ctx context.Context, input api.CustomerInput) (*api.Customer, error)
}

// Service caches customer records the same way the catalog caches items.
type Service struct {
	remote     API
	customers  []api.Customer
	byID       map[string]int
	lastSynced time.Time
}

// NewService builds an empty customer book over the remote client.
func NewService(remote API) (*Service, error) {
	if remote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "customers requires a remote client")
	}
	return &Service{remote: remote, byID: map[string]int{}}, nil
}

// Refresh replaces the cache with the remote customer collection.
func (s *Service) Refresh(ctx context.Context) error {
	customers, err := s.remote.ListCustomers(ctx)
	if err != nil {
		return err
	}
	s.customers = customers
	s.byID = make(map[string]int, len(customers))
	for i, customer := range customers {
		s.byID[customer.ID] = i
	}
	s.lastSynced = time.Now()
	return nil
}

// Customers returns the cached records. The slice is shared; callers
// must not mutate it.
func (s *Service) Customers() []api.Customer {
	return s.customers
}

// LastSynced reports when the cache last matched the remote collection.
func (s *Service) LastSynced() time.Time {
	return s.lastSynced
}

// Get resolves one cached customer by id.
func (s *Service) Get(customerID string) (api.Customer, bool) {
	idx, ok := s.byID[customerID]
	if !ok {
		return api.Customer{}, false
	}
	return s.customers[idx], true
}

// Add validates the input, creates the customer remotely and appends
// the persisted record to the cache. The mobile number must be exactly
// ten digits.
func (s *Service) Add(ctx context.Context, input api.CustomerInput) (*api.Customer, error) {
	input.Name = validators.SanitizeString(input.Name, maxFieldLen)
	input.Address = validators.SanitizeString(input.Address, maxFieldLen)
	input.MobileNumber = validators.SanitizeString(input.MobileNumber, maxFieldLen)
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	created, err := s.remote.AddCustomer(ctx, input)
	if err != nil {
		return nil, err
	}
	s.byID[created.ID] = len(s.customers)
	s.customers = append(s.customers, *created)
	return created, nil
}

// Search filters the cached customers by case-insensitive name
// substring. An empty term returns everyone.
func (s *Service) Search(term string) []api.Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.customers
	}
	var out []api.Customer
	for _, customer := range s.customers {
		if strings.Contains(strings.ToLower(customer.Name), term) {
			out = append(out, customer)
		}
	}
	return out
}
