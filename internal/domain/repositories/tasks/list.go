package tasks

import (
	"context"

	models "tasklist/internal/domain/models/tasks"
)

// ListRepository defines owner-scoped data access for lists.
// Every lookup filters by ownerID; a list owned by someone else is
// reported exactly like a missing one.
type ListRepository interface {
	// ListByOwner returns all lists owned by ownerID with their items loaded.
	// Returns an empty slice (never nil) when the owner has no lists.
	ListByOwner(ctx context.Context, ownerID string) ([]models.List, error)

	// GetByID returns the list with its items, or domain.ErrNotFound
	GetByID(ctx context.Context, id int64, ownerID string) (*models.List, error)

	// Create inserts the list and sets its ID and CreatedAt
	Create(ctx context.Context, list *models.List) error

	// Update overwrites Title and Description of the list matching
	// (list.ID, list.OwnerID). Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, list *models.List) error

	// Delete removes the list and all of its items atomically.
	// Returns false if no list matches (id, ownerID).
	Delete(ctx context.Context, id int64, ownerID string) (bool, error)
}
