package tasks

import "time"

// Item is a single task inside a List.
// CompletedAt is non-nil exactly when Status is StatusDone.
type Item struct {
	ID          int64      `json:"id" db:"id"`
	ListID      int64      `json:"list_id" db:"list_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Type        string     `json:"type" db:"type"`
	Status      Status     `json:"status" db:"status"`
	Priority    Priority   `json:"priority" db:"priority"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`

	// ListTitle is populated on reads that join the parent list
	ListTitle string `json:"list_title,omitempty" db:"-"`
}

// IsDone reports whether the item is completed
func (i *Item) IsDone() bool {
	return i.Status == StatusDone
}
