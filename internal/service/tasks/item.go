package tasks

import (
	"context"
	"log/slog"

	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
	"tasklist/internal/domain/repositories"
	tasksRepo "tasklist/internal/domain/repositories/tasks"
	"tasklist/internal/domain/services"
	tasksSvc "tasklist/internal/domain/services/tasks"
)

// itemService implements the ItemService interface
type itemService struct {
	itemRepo   tasksRepo.ItemRepository
	txManager  repositories.TransactionManager
	authorizer services.ListAuthorizer
	now        Clock
	logger     *slog.Logger
}

// NewItemService creates a new item service. A nil clock uses UTC wall time.
func NewItemService(
	itemRepo tasksRepo.ItemRepository,
	txManager repositories.TransactionManager,
	authorizer services.ListAuthorizer,
	clock Clock,
	logger *slog.Logger,
) tasksSvc.ItemService {
	return &itemService{
		itemRepo:   itemRepo,
		txManager:  txManager,
		authorizer: authorizer,
		now:        clockOrDefault(clock),
		logger:     logger,
	}
}

// ListItems retrieves every item an owner has
func (s *itemService) ListItems(ctx context.Context, ownerID string) ([]tasksSvc.ItemResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// ListItemsByList retrieves the items of one list
func (s *itemService) ListItemsByList(ctx context.Context, listID int64, ownerID string) ([]tasksSvc.ItemResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("list", listID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByList(ctx, listID, ownerID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// GetItem retrieves an item by ID
func (s *itemService) GetItem(ctx context.Context, id int64, ownerID string) (*tasksSvc.ItemResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("item", id); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// CreateItem creates an item in one of the owner's lists
func (s *itemService) CreateItem(ctx context.Context, ownerID string, req *tasksSvc.CreateItemRequest) (*tasksSvc.ItemResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}

	in := normalizeItem(req.Title, req.Description, req.Type, req.Status, req.Priority, req.ListID)
	if err := validateItemInput(&in); err != nil {
		return nil, err
	}

	var created *models.Item
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.authorizer.CanWriteToList(ctx, ownerID, in.ListID); err != nil {
			return err
		}

		now := s.now()
		item := &models.Item{
			ListID:      in.ListID,
			Title:       in.Title,
			Description: in.Description,
			Type:        in.Type,
			Priority:    in.Priority,
			CreatedAt:   now,
		}
		item.ApplyStatus(in.Status, now)

		if err := s.itemRepo.Create(ctx, item); err != nil {
			return err
		}

		var err error
		created, err = s.itemRepo.GetByID(ctx, item.ID, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		"id", created.ID,
		"list_id", created.ListID,
		"status", created.Status.String(),
		"owner_id", ownerID,
	)

	return toItemResponse(created), nil
}

// UpdateItem replaces an item's mutable fields. The request must name the
// list the item already lives in.
func (s *itemService) UpdateItem(ctx context.Context, id int64, ownerID string, req *tasksSvc.UpdateItemRequest) (*tasksSvc.ItemResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("item", id); err != nil {
		return nil, err
	}

	in := normalizeItem(req.Title, req.Description, req.Type, req.Status, req.Priority, req.ListID)
	if err := validateItemInput(&in); err != nil {
		return nil, err
	}

	updated, err := s.mutate(ctx, id, ownerID, func(ctx context.Context, item *models.Item) error {
		if err := s.authorizer.CanWriteToList(ctx, ownerID, in.ListID); err != nil {
			return err
		}
		if item.ListID != in.ListID {
			return &domain.ValidationError{Message: "items cannot move between lists"}
		}

		item.Title = in.Title
		item.Description = in.Description
		item.Type = in.Type
		item.Priority = in.Priority
		item.ApplyStatus(in.Status, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item updated",
		"id", id,
		"status", updated.Status.String(),
		"owner_id", ownerID,
	)

	return toItemResponse(updated), nil
}

// UpdateItemStatus changes an item's status and its completion time
func (s *itemService) UpdateItemStatus(ctx context.Context, id int64, ownerID string, code int) (*tasksSvc.ItemResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("item", id); err != nil {
		return nil, err
	}
	status, err := validateStatusCode(code)
	if err != nil {
		return nil, err
	}

	updated, err := s.mutate(ctx, id, ownerID, func(_ context.Context, item *models.Item) error {
		item.ApplyStatus(status, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item status updated",
		"id", id,
		"status", status.String(),
		"owner_id", ownerID,
	)

	return toItemResponse(updated), nil
}

// UpdateItemPriority changes an item's priority
func (s *itemService) UpdateItemPriority(ctx context.Context, id int64, ownerID string, code int) (*tasksSvc.ItemResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("item", id); err != nil {
		return nil, err
	}
	priority, err := validatePriorityCode(code)
	if err != nil {
		return nil, err
	}

	updated, err := s.mutate(ctx, id, ownerID, func(_ context.Context, item *models.Item) error {
		item.Priority = priority
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item priority updated",
		"id", id,
		"priority", priority.String(),
		"owner_id", ownerID,
	)

	return toItemResponse(updated), nil
}

// DeleteItem deletes an item
func (s *itemService) DeleteItem(ctx context.Context, id int64, ownerID string) (bool, error) {
	if err := validateOwner(ownerID); err != nil {
		return false, err
	}
	if err := validateID("item", id); err != nil {
		return false, err
	}

	deleted, err := s.itemRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("item deleted",
			"id", id,
			"owner_id", ownerID,
		)
	}
	return deleted, nil
}

// mutate loads the item under a row lock, applies change and writes it back
// in one transaction
func (s *itemService) mutate(
	ctx context.Context,
	id int64,
	ownerID string,
	change func(ctx context.Context, item *models.Item) error,
) (*models.Item, error) {
	var updated *models.Item
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.GetByIDForUpdate(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if err := change(ctx, item); err != nil {
			return err
		}
		if err := s.itemRepo.Update(ctx, item, ownerID); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
