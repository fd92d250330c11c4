package tasks

import "time"

// ResolveCompletedAt returns the completion timestamp an item must carry after
// moving to status next.
//
//   - next is Done and the item was not completed: now
//   - next is Done and the item was already completed: existing, unchanged
//   - next is anything else: nil
//
// It is applied on every create and update path, not only on status updates.
func ResolveCompletedAt(existing *time.Time, next Status, now time.Time) *time.Time {
	if next != StatusDone {
		return nil
	}
	if existing != nil {
		t := *existing
		return &t
	}
	t := now
	return &t
}

// ApplyStatus sets the item's status and keeps CompletedAt consistent with it
func (i *Item) ApplyStatus(next Status, now time.Time) {
	i.CompletedAt = ResolveCompletedAt(i.CompletedAt, next, now)
	i.Status = next
}
