// Package memory is an in-process Entity Store. It implements the same
// repository and transaction contracts as the PostgreSQL backend and is used
// by unit tests and by STORE=memory runs.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	models "tasklist/internal/domain/models/tasks"
	"tasklist/internal/domain/repositories"
	tasksRepo "tasklist/internal/domain/repositories/tasks"
)

// Store holds lists and items keyed by id. Stored values are never handed
// out directly; reads return copies.
type Store struct {
	mu         sync.RWMutex
	lists      map[int64]models.List
	items      map[int64]models.Item
	nextListID int64
	nextItemID int64

	// txMu is held by a running ExecTx and by every repository call made
	// outside one, so a rollback never discards another caller's write
	txMu sync.Mutex
	now  func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		lists: make(map[int64]models.List),
		items: make(map[int64]models.Item),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Lists returns a ListRepository backed by the store
func (s *Store) Lists() tasksRepo.ListRepository {
	return &listRepository{store: s}
}

// Items returns an ItemRepository backed by the store
func (s *Store) Items() tasksRepo.ItemRepository {
	return &itemRepository{store: s}
}

// TransactionManager returns a TransactionManager backed by the store
func (s *Store) TransactionManager() repositories.TransactionManager {
	return &transactionManager{store: s}
}

// exclusive waits for a running transaction to finish unless ctx belongs to
// one, and returns the matching release.
func (s *Store) exclusive(ctx context.Context) func() {
	if ctx.Value(memoryTxKey{}) != nil {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

// itemsOfLocked returns copies of a list's items ordered by id. Caller holds mu.
func (s *Store) itemsOfLocked(listID int64) []models.Item {
	list := s.lists[listID]
	items := []models.Item{}
	for _, item := range s.items {
		if item.ListID == listID {
			item = copyItem(item)
			item.ListTitle = list.Title
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b models.Item) int { return cmp.Compare(a.ID, b.ID) })
	return items
}

// ownedItemLocked finds an item whose parent list belongs to ownerID. Caller holds mu.
func (s *Store) ownedItemLocked(id int64, ownerID string) (models.Item, bool) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, false
	}
	list, ok := s.lists[item.ListID]
	if !ok || list.OwnerID != ownerID {
		return models.Item{}, false
	}
	item = copyItem(item)
	item.ListTitle = list.Title
	return item, true
}

type snapshot struct {
	lists      map[int64]models.List
	items      map[int64]models.Item
	nextListID int64
	nextItemID int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		lists:      make(map[int64]models.List, len(s.lists)),
		items:      make(map[int64]models.Item, len(s.items)),
		nextListID: s.nextListID,
		nextItemID: s.nextItemID,
	}
	for id, list := range s.lists {
		snap.lists[id] = list
	}
	for id, item := range s.items {
		snap.items[id] = copyItem(item)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists = snap.lists
	s.items = snap.items
	s.nextListID = snap.nextListID
	s.nextItemID = snap.nextItemID
}

func copyItem(item models.Item) models.Item {
	if item.CompletedAt != nil {
		t := *item.CompletedAt
		item.CompletedAt = &t
	}
	return item
}
