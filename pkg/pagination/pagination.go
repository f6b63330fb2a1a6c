// Package pagination slices fully loaded collections for display. The
// remote API returns whole collections, so paging happens entirely on the
// client over the in-memory copy.
package pagination

const (
	// DefaultPerPage is the standard page size when none is provided.
	DefaultPerPage = 10
	// MaxPerPage caps how many rows a single page can show.
	MaxPerPage = 100
)

// Info describes the window a page covers within the full collection.
type Info struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}

// NormalizePerPage enforces the configured default and maximum page sizes.
func NormalizePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// Paginate returns the requested page of items plus paging info. Pages are
// 1-based; out-of-range pages clamp to the nearest valid page so a view
// never renders an empty window while items exist.
func Paginate[T any](items []T, page, perPage int) ([]T, Info) {
	perPage = NormalizePerPage(perPage)

	totalItems := len(items)
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return items[start:end], Info{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
