package tasks

import (
	"context"

	models "tasklist/internal/domain/models/tasks"
)

// ItemRepository defines data access for items. Items have no owner column;
// ownership is resolved through the parent list on every call.
type ItemRepository interface {
	// ListByOwner returns every item in every list owned by ownerID
	ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error)

	// ListByList returns the items of one list, empty if the list is not owned
	ListByList(ctx context.Context, listID int64, ownerID string) ([]models.Item, error)

	// GetByID returns the item with ListTitle populated, or domain.ErrNotFound
	GetByID(ctx context.Context, id int64, ownerID string) (*models.Item, error)

	// GetByIDForUpdate is GetByID that also locks the row until the
	// surrounding transaction ends
	GetByIDForUpdate(ctx context.Context, id int64, ownerID string) (*models.Item, error)

	// Create inserts the item and sets its ID. The caller has already checked
	// that item.ListID belongs to the acting owner.
	Create(ctx context.Context, item *models.Item) error

	// Update overwrites Title, Description, Type, Status, Priority and
	// CompletedAt of the item matching (item.ID, ownerID). ListID and
	// CreatedAt are never written. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, item *models.Item, ownerID string) error

	// Delete removes one item. Returns false if no item matches.
	Delete(ctx context.Context, id int64, ownerID string) (bool, error)

	// ListBelongsToOwner reports whether listID is owned by ownerID
	ListBelongsToOwner(ctx context.Context, listID int64, ownerID string) (bool, error)
}
