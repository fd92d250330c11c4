package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
)

func seedList(t *testing.T, s *Store, ownerID, title string, itemCount int) models.List {
	t.Helper()
	ctx := context.Background()

	list := models.List{OwnerID: ownerID, Title: title}
	if err := s.Lists().Create(ctx, &list); err != nil {
		t.Fatalf("create list: %v", err)
	}
	for i := 0; i < itemCount; i++ {
		item := models.Item{ListID: list.ID, Title: "task", CreatedAt: time.Now()}
		if err := s.Items().Create(ctx, &item); err != nil {
			t.Fatalf("create item: %v", err)
		}
	}
	return list
}

func TestListRepository_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	alice := seedList(t, s, "alice", "groceries", 2)
	seedList(t, s, "bob", "chores", 1)

	lists, err := s.Lists().ListByOwner(ctx, "bob")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(lists) != 1 || lists[0].Title != "chores" {
		t.Fatalf("bob sees %+v, want only chores", lists)
	}

	_, foreignErr := s.Lists().GetByID(ctx, alice.ID, "bob")
	_, missingErr := s.Lists().GetByID(ctx, 9999, "bob")
	if !errors.Is(foreignErr, domain.ErrNotFound) || !errors.Is(missingErr, domain.ErrNotFound) {
		t.Fatalf("errors = %v / %v, want ErrNotFound for both", foreignErr, missingErr)
	}

	items, err := s.Items().ListByList(ctx, alice.ID, "bob")
	if err != nil {
		t.Fatalf("ListByList: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("bob read %d of alice's items", len(items))
	}
}

func TestListRepository_UpdateKeepsOwner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	list := seedList(t, s, "alice", "old", 1)

	err := s.Lists().Update(ctx, &models.List{ID: list.ID, OwnerID: "mallory", Title: "hijacked"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update by another owner: err = %v, want ErrNotFound", err)
	}

	if err := s.Lists().Update(ctx, &models.List{ID: list.ID, OwnerID: "alice", Title: "new", Description: "d"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.Lists().GetByID(ctx, list.ID, "alice")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "new" || got.Description != "d" || got.OwnerID != "alice" {
		t.Errorf("list = %+v", got)
	}
	if len(got.Items) != 1 {
		t.Errorf("Update changed items: got %d, want 1", len(got.Items))
	}
}

func TestListRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	doomed := seedList(t, s, "alice", "doomed", 3)
	kept := seedList(t, s, "alice", "kept", 2)

	deleted, err := s.Lists().Delete(ctx, doomed.ID, "bob")
	if err != nil || deleted {
		t.Fatalf("Delete by another owner = (%v, %v), want (false, nil)", deleted, err)
	}

	deleted, err = s.Lists().Delete(ctx, doomed.ID, "alice")
	if err != nil || !deleted {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", deleted, err)
	}

	items, err := s.Items().ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("alice has %d items after delete, want 2", len(items))
	}
	for _, item := range items {
		if item.ListID != kept.ID {
			t.Errorf("orphan item %d still references list %d", item.ID, item.ListID)
		}
	}

	deleted, err = s.Lists().Delete(ctx, doomed.ID, "alice")
	if err != nil || deleted {
		t.Errorf("second Delete = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestItemRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	list := seedList(t, s, "alice", "l", 0)

	done := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	item := models.Item{ListID: list.ID, Title: "t", Status: models.StatusDone, CompletedAt: &done}
	if err := s.Items().Create(ctx, &item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Items().GetByID(ctx, item.ID, "alice")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.Title = "mutated"
	*got.CompletedAt = time.Time{}

	again, _ := s.Items().GetByID(ctx, item.ID, "alice")
	if again.Title != "t" || !again.CompletedAt.Equal(done) {
		t.Errorf("stored item was mutated through a returned copy: %+v", again)
	}
	if again.ListTitle != "l" {
		t.Errorf("ListTitle = %q, want %q", again.ListTitle, "l")
	}
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	list := seedList(t, s, "alice", "l", 1)

	boom := errors.New("boom")
	err := s.TransactionManager().ExecTx(ctx, func(ctx context.Context) error {
		if _, err := s.Lists().Delete(ctx, list.ID, "alice"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("ExecTx err = %v, want boom", err)
	}

	got, err := s.Lists().GetByID(ctx, list.ID, "alice")
	if err != nil {
		t.Fatalf("list missing after rollback: %v", err)
	}
	if len(got.Items) != 1 {
		t.Errorf("items after rollback = %d, want 1", len(got.Items))
	}
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	s := NewStore()
	list := seedList(t, s, "alice", "l", 2)

	ctx, cancel := context.WithCancel(context.Background())
	err := s.TransactionManager().ExecTx(ctx, func(txCtx context.Context) error {
		if _, err := s.Lists().Delete(txCtx, list.ID, "alice"); err != nil {
			return err
		}
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ExecTx err = %v, want context.Canceled", err)
	}

	if _, err := s.Lists().GetByID(context.Background(), list.ID, "alice"); err != nil {
		t.Errorf("cancelled delete was kept: %v", err)
	}
}

func TestTransactionManager_RollbackKeepsConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	started := make(chan struct{})
	done := make(chan error, 1)
	boom := errors.New("boom")

	err := s.TransactionManager().ExecTx(ctx, func(txCtx context.Context) error {
		alice := models.List{OwnerID: "alice", Title: "rolled back"}
		if err := s.Lists().Create(txCtx, &alice); err != nil {
			return err
		}

		go func() {
			close(started)
			bob := models.List{OwnerID: "bob", Title: "kept"}
			done <- s.Lists().Create(ctx, &bob)
		}()
		<-started
		time.Sleep(20 * time.Millisecond)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("ExecTx err = %v, want boom", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("concurrent create: %v", err)
	}

	bobLists, err := s.Lists().ListByOwner(ctx, "bob")
	if err != nil {
		t.Fatalf("ListByOwner(bob): %v", err)
	}
	if len(bobLists) != 1 {
		t.Errorf("bob has %d lists after alice's rollback, want 1", len(bobLists))
	}

	aliceLists, err := s.Lists().ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByOwner(alice): %v", err)
	}
	if len(aliceLists) != 0 {
		t.Errorf("alice has %d lists, want the create rolled back", len(aliceLists))
	}
}
