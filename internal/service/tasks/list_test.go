package tasks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tasklist/internal/config"
	"tasklist/internal/domain"
	tasksSvc "tasklist/internal/domain/services/tasks"
)

func TestListService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     tasksSvc.CreateListRequest
		wantErr bool
	}{
		{"valid", tasksSvc.CreateListRequest{Title: "Groceries"}, false},
		{"empty title", tasksSvc.CreateListRequest{Title: ""}, true},
		{"whitespace title", tasksSvc.CreateListRequest{Title: "   "}, true},
		{"title too long", tasksSvc.CreateListRequest{Title: strings.Repeat("a", config.MaxListTitleLength+1)}, true},
		{"title at limit", tasksSvc.CreateListRequest{Title: strings.Repeat("a", config.MaxListTitleLength)}, false},
		{"description too long", tasksSvc.CreateListRequest{Title: "x", Description: strings.Repeat("d", config.MaxListDescriptionLength+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.lists.CreateList(ctx, "alice", &tt.req)
			if tt.wantErr && !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestListService_CreateTrimsAndOwns(t *testing.T) {
	f := newFixture(t)

	list, err := f.lists.CreateList(context.Background(), "alice", &tasksSvc.CreateListRequest{
		Title:       "  Groceries  ",
		Description: " weekly ",
	})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if list.Title != "Groceries" || list.Description != "weekly" {
		t.Errorf("got %q/%q, want trimmed values", list.Title, list.Description)
	}
	if list.OwnerID != "alice" {
		t.Errorf("OwnerID = %q, want alice", list.OwnerID)
	}
	if list.ItemCount != 0 || list.Items == nil {
		t.Errorf("new list should have an empty, non-nil item slice")
	}
}

func TestListService_OwnerIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	aliceList := f.createList(t, "alice", "Alice's")
	f.createItem(t, "alice", tasksSvc.CreateItemRequest{Title: "a1", ListID: aliceList.ID})
	f.createList(t, "bob", "Bob's")

	bobLists, err := f.lists.ListLists(ctx, "bob")
	if err != nil {
		t.Fatalf("ListLists: %v", err)
	}
	if len(bobLists) != 1 || bobLists[0].Title != "Bob's" {
		t.Fatalf("bob sees %+v", bobLists)
	}

	_, foreignErr := f.lists.GetList(ctx, aliceList.ID, "bob")
	_, missingErr := f.lists.GetList(ctx, 424242, "bob")
	if !errors.Is(foreignErr, domain.ErrNotFound) || !errors.Is(missingErr, domain.ErrNotFound) {
		t.Fatalf("errors = %v / %v, want ErrNotFound for both", foreignErr, missingErr)
	}

	_, err = f.lists.UpdateList(ctx, aliceList.ID, "bob", &tasksSvc.UpdateListRequest{Title: "hijacked"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign update err = %v, want ErrNotFound", err)
	}

	deleted, err := f.lists.DeleteList(ctx, aliceList.ID, "bob")
	if err != nil || deleted {
		t.Fatalf("foreign delete = %v, %v; want false, nil", deleted, err)
	}

	got, err := f.lists.GetList(ctx, aliceList.ID, "alice")
	if err != nil {
		t.Fatalf("alice GetList: %v", err)
	}
	if got.Title != "Alice's" || got.ItemCount != 1 {
		t.Errorf("alice's list changed: %+v", got)
	}
}

func TestListService_UpdateList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list := f.createList(t, "alice", "Old")
	f.createItem(t, "alice", tasksSvc.CreateItemRequest{Title: "kept", ListID: list.ID})

	updated, err := f.lists.UpdateList(ctx, list.ID, "alice", &tasksSvc.UpdateListRequest{Title: " New ", Description: "desc"})
	if err != nil {
		t.Fatalf("UpdateList: %v", err)
	}
	if updated.Title != "New" || updated.Description != "desc" || updated.OwnerID != "alice" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.ItemCount != 1 {
		t.Errorf("ItemCount = %d, want 1", updated.ItemCount)
	}

	_, err = f.lists.UpdateList(ctx, list.ID, "alice", &tasksSvc.UpdateListRequest{Title: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty title err = %v, want ErrValidation", err)
	}
}

func TestListService_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list := f.createList(t, "alice", "Doomed")
	other := f.createList(t, "alice", "Survivor")
	for _, title := range []string{"a", "b", "c"} {
		f.createItem(t, "alice", tasksSvc.CreateItemRequest{Title: title, ListID: list.ID})
	}
	survivor := f.createItem(t, "alice", tasksSvc.CreateItemRequest{Title: "stays", ListID: other.ID})

	deleted, err := f.lists.DeleteList(ctx, list.ID, "alice")
	if err != nil || !deleted {
		t.Fatalf("DeleteList = %v, %v; want true, nil", deleted, err)
	}

	items, err := f.items.ListItems(ctx, "alice")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 || items[0].ID != survivor.ID {
		t.Fatalf("remaining items = %+v, want only the survivor", items)
	}

	deleted, err = f.lists.DeleteList(ctx, list.ID, "alice")
	if err != nil || deleted {
		t.Fatalf("second delete = %v, %v; want false, nil", deleted, err)
	}
}

func TestListService_GetListPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list := f.createList(t, "alice", "Big")
	for i := 0; i < 23; i++ {
		f.createItem(t, "alice", tasksSvc.CreateItemRequest{Title: "task", ListID: list.ID, Priority: i % 3})
	}

	page, err := f.lists.GetListPage(ctx, list.ID, "alice", &tasksSvc.PageRequest{PageNumber: 99, PageSize: 10})
	if err != nil {
		t.Fatalf("GetListPage: %v", err)
	}
	if page.TotalPages != 3 || page.PageNumber != 3 || len(page.Items) != 3 {
		t.Errorf("page = %d/%d with %d items, want 3/3 with 3", page.PageNumber, page.TotalPages, len(page.Items))
	}
	if page.TotalItemCount != 23 || page.HasNextPage || !page.HasPreviousPage {
		t.Errorf("page flags = %+v", page)
	}

	page, err = f.lists.GetListPage(ctx, list.ID, "alice", nil)
	if err != nil {
		t.Fatalf("GetListPage(nil): %v", err)
	}
	if page.PageSize != config.DefaultPageSize || page.PageNumber != 1 {
		t.Errorf("default page = size %d number %d", page.PageSize, page.PageNumber)
	}

	for _, size := range []int{-1, config.MaxPageSize + 1} {
		_, err = f.lists.GetListPage(ctx, list.ID, "alice", &tasksSvc.PageRequest{PageNumber: 1, PageSize: size})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("size %d err = %v, want ErrValidation", size, err)
		}
	}

	_, err = f.lists.GetListPage(ctx, list.ID, "bob", &tasksSvc.PageRequest{PageNumber: 1, PageSize: 10})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("foreign page err = %v, want ErrNotFound", err)
	}
}

func TestListService_EmptyListPage(t *testing.T) {
	f := newFixture(t)

	list := f.createList(t, "alice", "Empty")
	page, err := f.lists.GetListPage(context.Background(), list.ID, "alice", &tasksSvc.PageRequest{PageNumber: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("GetListPage: %v", err)
	}
	if page.TotalItemCount != 0 || page.TotalPages != 0 || page.PageNumber != 1 {
		t.Errorf("page = %+v", page)
	}
	if page.HasNextPage || page.HasPreviousPage || len(page.Items) != 0 {
		t.Errorf("empty page should have no items and no neighbours")
	}
}

func TestListService_RejectsBadIdentifiers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.lists.GetList(ctx, 0, "alice"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("id 0 err = %v, want ErrValidation", err)
	}
	if _, err := f.lists.ListLists(ctx, ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("empty owner err = %v, want ErrUnauthorized", err)
	}
}

func TestListService_DefaultPageSortsAscending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list := f.createList(t, "alice", "Ordered")
	for _, title := range []string{"a", "b", "c"} {
		f.createItem(t, "alice", tasksSvc.CreateItemRequest{Title: title, ListID: list.ID})
	}

	tests := []struct {
		name string
		req  *tasksSvc.PageRequest
	}{
		{"nil request", nil},
		{"zero value request", &tasksSvc.PageRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.lists.GetListPage(ctx, list.ID, "alice", tt.req)
			if err != nil {
				t.Fatalf("GetListPage: %v", err)
			}
			if len(page.Items) != 3 {
				t.Fatalf("got %d items, want 3", len(page.Items))
			}
			for i := 1; i < len(page.Items); i++ {
				if page.Items[i-1].ID >= page.Items[i].ID {
					t.Fatalf("items not in ascending id order: %+v", page.Items)
				}
			}
		})
	}

	page, err := f.lists.GetListPage(ctx, list.ID, "alice", &tasksSvc.PageRequest{Descending: true})
	if err != nil {
		t.Fatalf("GetListPage(descending): %v", err)
	}
	if page.Items[0].Title != "c" || page.Items[2].Title != "a" {
		t.Errorf("descending page = %+v, want c b a", page.Items)
	}
}
