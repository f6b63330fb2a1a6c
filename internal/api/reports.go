package api

import (
	"context"
	"net/http"
	"net/url"
)

type salesReportResponse struct {
	Sales []Sale `json:"sales"`
}

type customerLedgerResponse struct {
	Entries []Sale `json:"customerLedger"`
}

// SalesReport fetches the nested sale records for the given date range.
// Dates are YYYY-MM-DD strings as the report endpoint expects them.
func (c *Client) SalesReport(ctx context.Context, startDate, endDate string) ([]Sale, error) {
	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)
	query.Set("customerName", "")

	var parsed salesReportResponse
	if err := c.do(ctx, http.MethodGet, "/reports/sales", query, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Sales, nil
}

// CustomerLedger fetches the chronological sale entries for one customer.
func (c *Client) CustomerLedger(ctx context.Context, customerName string) ([]Sale, error) {
	query := url.Values{}
	query.Set("customerName", customerName)

	var parsed customerLedgerResponse
	if err := c.do(ctx, http.MethodGet, "/reports/customerLedger", query, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Entries, nil
}
