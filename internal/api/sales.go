package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

type salesResponse struct {
	Sales []Sale `json:"sales"`
}

type createSaleResponse struct {
	Sale Sale `json:"sale"`
}

// ListSales fetches the full sale history.
func (c *Client) ListSales(ctx context.Context) ([]Sale, error) {
	var parsed salesResponse
	if err := c.do(ctx, http.MethodGet, "/sales", nil, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Sales, nil
}

// CreateSale submits a completed cart as a new sale.
func (c *Client) CreateSale(ctx context.Context, input CreateSaleInput) (*Sale, error) {
	resp, err := c.send(ctx, http.MethodPost, "/sales", nil, input)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	// Some deployments answer with an empty body; the status already
	// confirmed the sale, so only a malformed body is an error.
	var parsed createSaleResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeRemote, err, "decode sale response")
	}
	return &parsed.Sale, nil
}
