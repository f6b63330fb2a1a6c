// Package sales reads the sale history and assembles the data a
// purchase flow needs before the first item is added.
package sales

import (
	"context"
	"time"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

// API is the slice of the remote client the sale history needs.
type API interface {
	ListSales(ctx context.Context) ([]api.Sale, error)
}

// Service caches the sale history for listing. Sales are server-owned
// and append-only from this client's point of view.
type Service struct {
	remote     API
	sales      []api.Sale
	lastSynced time.Time
}

// NewService builds an empty sale history over the remote client.
func NewService(remote API) (*Service, error) {
	if remote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "sales requires a remote client")
	}
	return &Service{remote: remote}, nil
}

// Refresh replaces the cached history with the remote one.
func (s *Service) Refresh(ctx context.Context) error {
	sales, err := s.remote.ListSales(ctx)
	if err != nil {
		return err
	}
	s.sales = sales
	s.lastSynced = time.Now()
	return nil
}

// Sales returns the cached history. The slice is shared; callers must
// not mutate it.
func (s *Service) Sales() []api.Sale {
	return s.sales
}

// LastSynced reports when the cache last matched the remote history.
func (s *Service) LastSynced() time.Time {
	return s.lastSynced
}
