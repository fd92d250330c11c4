package tasks

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
	tasksSvc "tasklist/internal/domain/services/tasks"
)

// SortField names the item attribute a page is ordered by
type SortField string

const (
	SortByID       SortField = "id"
	SortByPriority SortField = "priority"
	SortByStatus   SortField = "status"
)

// ParseSortField maps a caller-supplied key to a SortField.
// Matching is case-insensitive; anything unrecognized sorts by id.
func ParseSortField(key string) SortField {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "priority":
		return SortByPriority
	case "status":
		return SortByStatus
	default:
		return SortByID
	}
}

// Page is one window over a sorted item sequence
type Page struct {
	Items           []models.Item
	TotalItemCount  int
	PageNumber      int
	PageSize        int
	TotalPages      int
	HasPreviousPage bool
	HasNextPage     bool
}

// Paginate sorts items and returns the requested page.
//
// The page number is clamped into [1, TotalPages]. Items with equal sort keys
// keep id order regardless of direction. A page size below 1 is a validation
// error. The input slice is not modified.
func Paginate(items []models.Item, req tasksSvc.PageRequest) (Page, error) {
	if req.PageSize < 1 {
		return Page{}, &domain.ValidationError{
			Message: fmt.Sprintf("page size must be at least 1, got %d", req.PageSize),
		}
	}

	total := len(items)
	totalPages := (total + req.PageSize - 1) / req.PageSize

	pageNumber := max(req.PageNumber, 1)
	if pageNumber > totalPages {
		pageNumber = max(totalPages, 1)
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, itemComparator(ParseSortField(req.SortBy), req.Descending))

	start := min((pageNumber-1)*req.PageSize, total)
	end := min(start+req.PageSize, total)

	return Page{
		Items:           sorted[start:end],
		TotalItemCount:  total,
		PageNumber:      pageNumber,
		PageSize:        req.PageSize,
		TotalPages:      totalPages,
		HasPreviousPage: pageNumber > 1,
		HasNextPage:     pageNumber < totalPages,
	}, nil
}

// itemComparator orders by field in the requested direction, then by id ascending
func itemComparator(field SortField, descending bool) func(a, b models.Item) int {
	return func(a, b models.Item) int {
		var c int
		switch field {
		case SortByPriority:
			c = cmp.Compare(a.Priority, b.Priority)
		case SortByStatus:
			c = cmp.Compare(a.Status, b.Status)
		default:
			c = cmp.Compare(a.ID, b.ID)
		}
		if descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}
}
