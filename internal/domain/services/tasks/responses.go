package tasks

import (
	"time"

	models "tasklist/internal/domain/models/tasks"
)

// ItemSummary is the compact item shape embedded in list responses
type ItemSummary struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Status      models.Status   `json:"status"`
	Priority    models.Priority `json:"priority"`
	Description string          `json:"description"`
}

// ListResponse is a list with all of its items summarized
type ListResponse struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	OwnerID     string        `json:"owner_id"`
	ItemCount   int           `json:"item_count"`
	Items       []ItemSummary `json:"items"`
}

// ItemResponse is the full item shape
type ItemResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Status      models.Status   `json:"status"`
	Priority    models.Priority `json:"priority"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at"`
	ListID      int64           `json:"list_id"`
	ListTitle   string          `json:"list_title"`
}

// PaginatedListResponse is a list with one page of its items
type PaginatedListResponse struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	OwnerID         string        `json:"owner_id"`
	TotalItemCount  int           `json:"total_item_count"`
	PageNumber      int           `json:"page_number"`
	PageSize        int           `json:"page_size"`
	TotalPages      int           `json:"total_pages"`
	HasPreviousPage bool          `json:"has_previous_page"`
	HasNextPage     bool          `json:"has_next_page"`
	Items           []ItemSummary `json:"items"`
}

// DashboardResponse summarizes every item an owner has.
// The status counts and the priority counts each sum to TotalItemCount.
type DashboardResponse struct {
	ListCount           int `json:"list_count"`
	TotalItemCount      int `json:"total_item_count"`
	NotStartedCount     int `json:"not_started_count"`
	InProgressCount     int `json:"in_progress_count"`
	DoneCount           int `json:"done_count"`
	LowPriorityCount    int `json:"low_priority_count"`
	MediumPriorityCount int `json:"medium_priority_count"`
	HighPriorityCount   int `json:"high_priority_count"`
}

// DashboardResult distinguishes "no items at all" from a populated summary.
// When HasData is false, Summary is nil.
type DashboardResult struct {
	HasData bool               `json:"has_data"`
	Summary *DashboardResponse `json:"summary,omitempty"`
}
