package api

import (
	"context"
	"net/http"
)

type customersResponse struct {
	Customers []Customer `json:"customers"`
}

type addCustomerResponse struct {
	NewCustomer Customer `json:"newCustomer"`
}

// ListCustomers fetches the full customer collection.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var parsed customersResponse
	if err := c.do(ctx, http.MethodGet, "/customers", nil, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Customers, nil
}

// AddCustomer creates a customer record and returns the persisted record.
func (c *Client) AddCustomer(ctx context.Context, input CustomerInput) (*Customer, error) {
	var parsed addCustomerResponse
	if err := c.do(ctx, http.MethodPost, "/addcustomer", nil, input, &parsed); err != nil {
		return nil, err
	}
	return &parsed.NewCustomer, nil
}
