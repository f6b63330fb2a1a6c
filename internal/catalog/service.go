// Package catalog manages the client-side copy of the item catalog. The
// remote service owns the records; this cache exists so listing, search
// and cart lookups do not refetch on every keystroke.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/storemate/storemate-cli/internal/api"
	"github.com/storemate/storemate-cli/internal/cart"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
	"github.com/storemate/storemate-cli/pkg/validators"
)

// maxFieldLen caps free-text fields before they reach validation.
const maxFieldLen = 200

// API is the slice of the remote client the catalog needs.
type API interface {
	ListItems(ctx context.Context) ([]api.Item, error)
	AddItem(ctx context.Context, input api.ItemInput) (*api.Item, error)
	UpdateItem(ctx context.Context, itemID string, input api.ItemInput) error
	DeleteItem(ctx context.Context, itemID string) error
}

// Service caches the item catalog and pushes mutations to the remote
// service before patching the cache. Single-goroutine ownership, no
// locking.
type Service struct {
	remote     API
	items      []api.Item
	byID       map[string]int
	lastSynced time.Time
}

// NewService builds an empty catalog over the remote client.
func NewService(remote API) (*Service, error) {
	if remote == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog requires a remote client")
	}
	return &Service{remote: remote, byID: map[string]int{}}, nil
}

// Refresh replaces the cache with the remote catalog.
func (s *Service) Refresh(ctx context.Context) error {
	items, err := s.remote.ListItems(ctx)
	if err != nil {
		return err
	}
	s.replace(items)
	return nil
}

// Items returns the cached catalog. The slice is shared; callers must
// not mutate it.
func (s *Service) Items() []api.Item {
	return s.items
}

// LastSynced reports when the cache last matched the remote catalog.
// The zero time means no successful sync yet.
func (s *Service) LastSynced() time.Time {
	return s.lastSynced
}

// Snapshot resolves a cached item into the frozen fields a cart line
// carries.
func (s *Service) Snapshot(itemID string) (cart.Snapshot, bool) {
	idx, ok := s.byID[itemID]
	if !ok {
		return cart.Snapshot{}, false
	}
	item := s.items[idx]
	return cart.Snapshot{ItemID: item.ID, Name: item.Name, Price: item.Price}, true
}

// Add validates the input, creates the item remotely and appends the
// persisted record to the cache.
func (s *Service) Add(ctx context.Context, input api.ItemInput) (*api.Item, error) {
	input.Name = validators.SanitizeString(input.Name, maxFieldLen)
	input.Description = validators.SanitizeString(input.Description, maxFieldLen)
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	created, err := s.remote.AddItem(ctx, input)
	if err != nil {
		return nil, err
	}
	s.byID[created.ID] = len(s.items)
	s.items = append(s.items, *created)
	return created, nil
}

// Update validates the input, updates the item remotely and patches the
// cached record in place.
func (s *Service) Update(ctx context.Context, itemID string, input api.ItemInput) error {
	input.Name = validators.SanitizeString(input.Name, maxFieldLen)
	input.Description = validators.SanitizeString(input.Description, maxFieldLen)
	if err := validators.Struct(input); err != nil {
		return err
	}

	if err := s.remote.UpdateItem(ctx, itemID, input); err != nil {
		return err
	}
	if idx, ok := s.byID[itemID]; ok {
		s.items[idx].Name = input.Name
		s.items[idx].Description = input.Description
		s.items[idx].Quantity = input.Quantity
		s.items[idx].Price = input.Price
	}
	return nil
}

// Delete removes the item remotely and drops it from the cache.
func (s *Service) Delete(ctx context.Context, itemID string) error {
	if err := s.remote.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	idx, ok := s.byID[itemID]
	if !ok {
		return nil
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.byID, itemID)
	for i := idx; i < len(s.items); i++ {
		s.byID[s.items[i].ID] = i
	}
	return nil
}

// Search filters the cached catalog by case-insensitive name substring.
// An empty term returns the full catalog.
func (s *Service) Search(term string) []api.Item {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.items
	}
	var out []api.Item
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			out = append(out, item)
		}
	}
	return out
}

func (s *Service) replace(items []api.Item) {
	s.items = items
	s.byID = make(map[string]int, len(items))
	for i, item := range items {
		s.byID[item.ID] = i
	}
	s.lastSynced = time.Now()
}
