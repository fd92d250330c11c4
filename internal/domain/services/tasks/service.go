package tasks

import "context"

// ListService defines owner-scoped operations on lists
type ListService interface {
	// ListLists retrieves all lists of an owner with their items
	ListLists(ctx context.Context, ownerID string) ([]ListResponse, error)

	// GetList retrieves a list. Missing and foreign lists both yield domain.ErrNotFound.
	GetList(ctx context.Context, id int64, ownerID string) (*ListResponse, error)

	// GetListPage retrieves a list with one sorted page of its items
	GetListPage(ctx context.Context, id int64, ownerID string, req *PageRequest) (*PaginatedListResponse, error)

	// CreateList creates a list owned by ownerID
	CreateList(ctx context.Context, ownerID string, req *CreateListRequest) (*ListResponse, error)

	// UpdateList replaces a list's title and description
	UpdateList(ctx context.Context, id int64, ownerID string, req *UpdateListRequest) (*ListResponse, error)

	// DeleteList deletes a list and all of its items. Returns false if not found.
	DeleteList(ctx context.Context, id int64, ownerID string) (bool, error)
}

// ItemService defines owner-scoped operations on items
type ItemService interface {
	// ListItems retrieves every item of an owner across lists
	ListItems(ctx context.Context, ownerID string) ([]ItemResponse, error)

	// ListItemsByList retrieves the items of one owned list
	ListItemsByList(ctx context.Context, listID int64, ownerID string) ([]ItemResponse, error)

	// GetItem retrieves an item
	GetItem(ctx context.Context, id int64, ownerID string) (*ItemResponse, error)

	// CreateItem creates an item in an owned list.
	// Returns *domain.OwnershipViolationError if the list is not the owner's.
	CreateItem(ctx context.Context, ownerID string, req *CreateItemRequest) (*ItemResponse, error)

	// UpdateItem replaces an item's mutable fields
	UpdateItem(ctx context.Context, id int64, ownerID string, req *UpdateItemRequest) (*ItemResponse, error)

	// UpdateItemStatus changes only the status (and the completion time it implies)
	UpdateItemStatus(ctx context.Context, id int64, ownerID string, status int) (*ItemResponse, error)

	// UpdateItemPriority changes only the priority
	UpdateItemPriority(ctx context.Context, id int64, ownerID string, priority int) (*ItemResponse, error)

	// DeleteItem deletes an item. Returns false if not found.
	DeleteItem(ctx context.Context, id int64, ownerID string) (bool, error)
}

// DashboardService summarizes an owner's lists and items
type DashboardService interface {
	GetDashboard(ctx context.Context, ownerID string) (*DashboardResult, error)
}
