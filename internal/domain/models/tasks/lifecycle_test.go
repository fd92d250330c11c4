package tasks

import (
	"testing"
	"time"
)

func TestResolveCompletedAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	tests := []struct {
		name     string
		existing *time.Time
		next     Status
		want     *time.Time
	}{
		{
			name:     "becoming done stamps now",
			existing: nil,
			next:     StatusDone,
			want:     &now,
		},
		{
			name:     "re-completing keeps the original stamp",
			existing: &earlier,
			next:     StatusDone,
			want:     &earlier,
		},
		{
			name:     "leaving done clears the stamp",
			existing: &earlier,
			next:     StatusInProgress,
			want:     nil,
		},
		{
			name:     "not started stays cleared",
			existing: nil,
			next:     StatusNotStarted,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCompletedAt(tt.existing, tt.next, now)

			if tt.want == nil {
				if got != nil {
					t.Errorf("ResolveCompletedAt() = %v, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ResolveCompletedAt() = nil, want %v", *tt.want)
			}
			if !got.Equal(*tt.want) {
				t.Errorf("ResolveCompletedAt() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestResolveCompletedAt_DoesNotAliasInput(t *testing.T) {
	existing := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := ResolveCompletedAt(&existing, StatusDone, time.Now())
	if got == &existing {
		t.Fatal("ResolveCompletedAt returned the caller's pointer")
	}
}

func TestItem_ApplyStatus(t *testing.T) {
	first := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	item := &Item{Status: StatusNotStarted}

	item.ApplyStatus(StatusDone, first)
	if item.CompletedAt == nil || !item.CompletedAt.Equal(first) {
		t.Fatalf("CompletedAt = %v, want %v", item.CompletedAt, first)
	}

	item.ApplyStatus(StatusDone, second)
	if !item.CompletedAt.Equal(first) {
		t.Errorf("repeated Done moved CompletedAt to %v", *item.CompletedAt)
	}

	item.ApplyStatus(StatusInProgress, second)
	if item.CompletedAt != nil {
		t.Errorf("CompletedAt = %v after leaving Done, want nil", *item.CompletedAt)
	}
	if item.Status != StatusInProgress {
		t.Errorf("Status = %v, want %v", item.Status, StatusInProgress)
	}
}
