package memory

import (
	"cmp"
	"context"
	"slices"

	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
)

type listRepository struct {
	store *Store
}

func (r *listRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists := []models.List{}
	for _, list := range s.lists {
		if list.OwnerID != ownerID {
			continue
		}
		list.Items = s.itemsOfLocked(list.ID)
		lists = append(lists, list)
	}
	slices.SortFunc(lists, func(a, b models.List) int { return cmp.Compare(a.ID, b.ID) })
	return lists, nil
}

func (r *listRepository) GetByID(ctx context.Context, id int64, ownerID string) (*models.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.lists[id]
	if !ok || list.OwnerID != ownerID {
		return nil, domain.NewNotFound("list", id)
	}
	list.Items = s.itemsOfLocked(id)
	return &list, nil
}

func (r *listRepository) Create(ctx context.Context, list *models.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextListID++
	list.ID = s.nextListID
	if list.CreatedAt.IsZero() {
		list.CreatedAt = s.now()
	}
	list.Items = []models.Item{}

	stored := *list
	stored.Items = nil
	s.lists[list.ID] = stored
	return nil
}

func (r *listRepository) Update(ctx context.Context, list *models.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.lists[list.ID]
	if !ok || existing.OwnerID != list.OwnerID {
		return domain.NewNotFound("list", list.ID)
	}
	existing.Title = list.Title
	existing.Description = list.Description
	s.lists[list.ID] = existing

	list.CreatedAt = existing.CreatedAt
	return nil
}

// Delete removes the list and its items under a single lock
func (r *listRepository) Delete(ctx context.Context, id int64, ownerID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s := r.store
	defer s.exclusive(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[id]
	if !ok || list.OwnerID != ownerID {
		return false, nil
	}
	for itemID, item := range s.items {
		if item.ListID == id {
			delete(s.items, itemID)
		}
	}
	delete(s.lists, id)
	return true, nil
}
