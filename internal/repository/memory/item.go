package memory

import (
	"cmp"
	"context"
	"slices"

	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
)

type itemRepository struct {
	store *Store
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.Item{}
	for id := range s.items {
		if item, ok := s.ownedItemLocked(id, ownerID); ok {
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b models.Item) int { return cmp.Compare(a.ID, b.ID) })
	return items, nil
}

func (r *itemRepository) ListByList(ctx context.Context, listID int64, ownerID string) ([]models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.lists[listID]
	if !ok || list.OwnerID != ownerID {
		return []models.Item{}, nil
	}
	return s.itemsOfLocked(listID), nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64, ownerID string) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.ownedItemLocked(id, ownerID)
	if !ok {
		return nil, domain.NewNotFound("item", id)
	}
	return &item, nil
}

// GetByIDForUpdate relies on ExecTx serialization instead of row locks
func (r *itemRepository) GetByIDForUpdate(ctx context.Context, id int64, ownerID string) (*models.Item, error) {
	return r.GetByID(ctx, id, ownerID)
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[item.ListID]
	if !ok {
		return domain.NewNotFound("list", item.ListID)
	}

	s.nextItemID++
	item.ID = s.nextItemID
	item.ListTitle = list.Title
	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.now()
	}

	stored := copyItem(*item)
	stored.ListTitle = ""
	s.items[item.ID] = stored
	return nil
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.ownedItemLocked(item.ID, ownerID)
	if !ok {
		return domain.NewNotFound("item", item.ID)
	}

	existing.Title = item.Title
	existing.Description = item.Description
	existing.Type = item.Type
	existing.Status = item.Status
	existing.Priority = item.Priority
	existing.CompletedAt = item.CompletedAt

	stored := copyItem(existing)
	stored.ListTitle = ""
	s.items[item.ID] = stored
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64, ownerID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ownedItemLocked(id, ownerID); !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (r *itemRepository) ListBelongsToOwner(ctx context.Context, listID int64, ownerID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.lists[listID]
	return ok && list.OwnerID == ownerID, nil
}
