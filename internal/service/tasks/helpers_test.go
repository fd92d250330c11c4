package tasks

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tasksSvc "tasklist/internal/domain/services/tasks"
	"tasklist/internal/repository/memory"
	"tasklist/internal/service/auth"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store     *memory.Store
	lists     tasksSvc.ListService
	items     tasksSvc.ItemService
	dashboard tasksSvc.DashboardService
	clock     *testClock
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	clock := &testClock{now: fixedNow}

	return &fixture{
		store:     store,
		lists:     NewListService(store.Lists(), store.TransactionManager(), nil, logger),
		items:     NewItemService(store.Items(), store.TransactionManager(), auth.NewOwnerBasedAuthorizer(store.Items(), logger), clock.Now, logger),
		dashboard: NewDashboardService(store.Lists(), logger),
		clock:     clock,
	}
}

func (f *fixture) createList(t *testing.T, ownerID, title string) *tasksSvc.ListResponse {
	t.Helper()
	list, err := f.lists.CreateList(context.Background(), ownerID, &tasksSvc.CreateListRequest{Title: title})
	if err != nil {
		t.Fatalf("CreateList(%q): %v", title, err)
	}
	return list
}

func (f *fixture) createItem(t *testing.T, ownerID string, req tasksSvc.CreateItemRequest) *tasksSvc.ItemResponse {
	t.Helper()
	item, err := f.items.CreateItem(context.Background(), ownerID, &req)
	if err != nil {
		t.Fatalf("CreateItem(%q): %v", req.Title, err)
	}
	return item
}
