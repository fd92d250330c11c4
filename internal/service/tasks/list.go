package tasks

import (
	"context"
	"log/slog"

	"tasklist/internal/config"
	models "tasklist/internal/domain/models/tasks"
	"tasklist/internal/domain/repositories"
	tasksRepo "tasklist/internal/domain/repositories/tasks"
	tasksSvc "tasklist/internal/domain/services/tasks"
)

// listService implements the ListService interface
type listService struct {
	listRepo        tasksRepo.ListRepository
	txManager       repositories.TransactionManager
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// NewListService creates a new list service. Page size defaults come from cfg;
// a nil cfg uses the package limits.
func NewListService(
	listRepo tasksRepo.ListRepository,
	txManager repositories.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) tasksSvc.ListService {
	s := &listService{
		listRepo:        listRepo,
		txManager:       txManager,
		defaultPageSize: config.DefaultPageSize,
		maxPageSize:     config.MaxPageSize,
		logger:          logger,
	}
	if cfg != nil {
		if cfg.DefaultPageSize > 0 {
			s.defaultPageSize = cfg.DefaultPageSize
		}
		if cfg.MaxPageSize > 0 {
			s.maxPageSize = cfg.MaxPageSize
		}
	}
	return s
}

// ListLists retrieves all lists for an owner
func (s *listService) ListLists(ctx context.Context, ownerID string) ([]tasksSvc.ListResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}

	lists, err := s.listRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]tasksSvc.ListResponse, 0, len(lists))
	for i := range lists {
		responses = append(responses, *toListResponse(&lists[i]))
	}
	return responses, nil
}

// GetList retrieves a list by ID
func (s *listService) GetList(ctx context.Context, id int64, ownerID string) (*tasksSvc.ListResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("list", id); err != nil {
		return nil, err
	}

	list, err := s.listRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return toListResponse(list), nil
}

// GetListPage retrieves a list with one page of its items
func (s *listService) GetListPage(ctx context.Context, id int64, ownerID string, req *tasksSvc.PageRequest) (*tasksSvc.PaginatedListResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("list", id); err != nil {
		return nil, err
	}
	pageReq, err := validatePageRequest(req, s.defaultPageSize, s.maxPageSize)
	if err != nil {
		return nil, err
	}

	list, err := s.listRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	page, err := Paginate(list.Items, pageReq)
	if err != nil {
		return nil, err
	}
	return toPaginatedListResponse(list, page), nil
}

// CreateList creates a new list
func (s *listService) CreateList(ctx context.Context, ownerID string, req *tasksSvc.CreateListRequest) (*tasksSvc.ListResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}

	in := normalizeList(req.Title, req.Description)
	if err := validateListInput(&in); err != nil {
		return nil, err
	}

	list := &models.List{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("list created",
		"id", list.ID,
		"title", list.Title,
		"owner_id", ownerID,
	)

	return toListResponse(list), nil
}

// UpdateList replaces a list's title and description
func (s *listService) UpdateList(ctx context.Context, id int64, ownerID string, req *tasksSvc.UpdateListRequest) (*tasksSvc.ListResponse, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}
	if err := validateID("list", id); err != nil {
		return nil, err
	}

	in := normalizeList(req.Title, req.Description)
	if err := validateListInput(&in); err != nil {
		return nil, err
	}

	var updated *models.List
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		list := &models.List{
			ID:          id,
			OwnerID:     ownerID,
			Title:       in.Title,
			Description: in.Description,
		}
		if err := s.listRepo.Update(ctx, list); err != nil {
			return err
		}

		var err error
		updated, err = s.listRepo.GetByID(ctx, id, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("list updated",
		"id", id,
		"title", updated.Title,
		"owner_id", ownerID,
	)

	return toListResponse(updated), nil
}

// DeleteList deletes a list and its items
func (s *listService) DeleteList(ctx context.Context, id int64, ownerID string) (bool, error) {
	if err := validateOwner(ownerID); err != nil {
		return false, err
	}
	if err := validateID("list", id); err != nil {
		return false, err
	}

	deleted, err := s.listRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("list deleted",
			"id", id,
			"owner_id", ownerID,
		)
	}
	return deleted, nil
}
