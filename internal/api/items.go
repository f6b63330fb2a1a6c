package api

import (
	"context"
	"net/http"
)

type itemsResponse struct {
	Items []Item `json:"items"`
}

type addItemResponse struct {
	NewItem Item `json:"newItem"`
}

// ListItems fetches the full item catalog.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var parsed itemsResponse
	if err := c.do(ctx, http.MethodGet, "/items", nil, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Items, nil
}

// AddItem creates a catalog item and returns the persisted record.
func (c *Client) AddItem(ctx context.Context, input ItemInput) (*Item, error) {
	var parsed addItemResponse
	if err := c.do(ctx, http.MethodPost, "/additem", nil, input, &parsed); err != nil {
		return nil, err
	}
	return &parsed.NewItem, nil
}

// UpdateItem replaces the fields of an existing catalog item.
func (c *Client) UpdateItem(ctx context.Context, itemID string, input ItemInput) error {
	return c.do(ctx, http.MethodPut, "/edititem/"+itemID, nil, input, nil)
}

// DeleteItem removes a catalog item.
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/deleteitem/"+itemID, nil, nil, nil)
}
