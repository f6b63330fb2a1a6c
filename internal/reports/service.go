package reports

import (
	"context"
	"time"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
	"github.com/storemate/storemate-cli/pkg/validators"
)

const filterDateLayout = "2006-01-02"

// API is the slice of the remote client the report builder needs.
type API interface {
	SalesReport(ctx context.Context, startDate, endDate string) ([]api.Sale, error)
	CustomerLedger(ctx context.Context, customerName string) ([]api.Sale, error)
}

// Filter selects which records go into a report. Sales reports need
// both dates; customer ledgers need the customer name.
type Filter struct {
	StartDate    string
	EndDate      string
	CustomerName string
}

// Service fetches report data and flattens it into tables.
type Service struct {
	remote API
}

// NewService builds a report builder over the remote client.
func NewService(remote API) (*Service, error) {
	if remote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "reports requires a remote client")
	}
	return &Service{remote: remote}, nil
}

// Fetch validates the filter for the requested kind, pulls the records
// and flattens them. Filter validation failing means no network call
// was made.
func (s *Service) Fetch(ctx context.Context, kind Kind, filter Filter) (*Table, error) {
	switch kind {
	case KindSales:
		if err := validateDateRange(filter.StartDate, filter.EndDate); err != nil {
			return nil, err
		}
		sales, err := s.remote.SalesReport(ctx, filter.StartDate, filter.EndDate)
		if err != nil {
			return nil, err
		}
		return Flatten(kind, "Sales Report", toGroups(sales, true))

	case KindCustomerLedger:
		name := validators.SanitizeString(filter.CustomerName, 0)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
		}
		sales, err := s.remote.CustomerLedger(ctx, name)
		if err != nil {
			return nil, err
		}
		return Flatten(kind, "Customer Ledger - "+name, toGroups(sales, false))
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown report type")
}

func validateDateRange(start, end string) error {
	if start == "" || end == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "start and end dates are required")
	}
	from, err := time.Parse(filterDateLayout, start)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "start date must be YYYY-MM-DD")
	}
	to, err := time.Parse(filterDateLayout, end)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "end date must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return pkgerrors.New(pkgerrors.CodeValidation, "end date is before start date")
	}
	return nil
}

// toGroups converts remote sale records into report groups. The
// customer column only exists on the sales report; the ledger is
// already scoped to one customer.
func toGroups(sales []api.Sale, withCustomer bool) []Group {
	groups := make([]Group, 0, len(sales))
	for _, sale := range sales {
		group := Group{
			Date:  sale.Date,
			Total: sale.Total,
			Lines: make([]Line, 0, len(sale.Items)),
		}
		if withCustomer {
			if sale.Customer != nil {
				group.Customer = sale.Customer.Name
			} else {
				group.Customer = "Walk-in"
			}
		}
		for _, line := range sale.Items {
			group.Lines = append(group.Lines, Line{
				ItemName:  line.Item.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.Price,
			})
		}
		groups = append(groups, group)
	}
	return groups
}
