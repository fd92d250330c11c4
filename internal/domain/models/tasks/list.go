package tasks

import "time"

// List is an owner's named collection of items.
// OwnerID is fixed at creation; Update never changes it.
type List struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Items       []Item    `json:"items" db:"-"`
}
