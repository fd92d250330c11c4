package tasks

// CreateListRequest represents a request to create a list
type CreateListRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateListRequest represents a request to replace a list's title and description
type UpdateListRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateItemRequest represents a request to create an item.
// Status and Priority are wire codes; unknown codes default to NotStarted and Low.
type CreateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      int    `json:"status"`
	Priority    int    `json:"priority"`
	ListID      int64  `json:"list_id"`
}

// UpdateItemRequest represents a full replacement of an item's mutable fields.
// ListID must name the list the item already belongs to.
type UpdateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      int    `json:"status"`
	Priority    int    `json:"priority"`
	ListID      int64  `json:"list_id"`
}

// PageRequest selects one page of a list's items.
// PageNumber is 1-based; values below 1 are treated as 1.
// SortBy is "priority", "status", or anything else for id order.
// The zero value sorts ascending.
type PageRequest struct {
	PageNumber int    `json:"page_number"`
	PageSize   int    `json:"page_size"`
	SortBy     string `json:"sort_by"`
	Descending bool   `json:"descending"`
}
