package auth

import (
	"context"
	"fmt"
	"log/slog"

	"tasklist/internal/domain"
	tasksRepo "tasklist/internal/domain/repositories/tasks"
	"tasklist/internal/domain/services"
)

// OwnerBasedAuthorizer implements ListAuthorizer using ownership checks.
// An owner can write to a list if and only if they own it.
type OwnerBasedAuthorizer struct {
	itemRepo tasksRepo.ItemRepository
	logger   *slog.Logger
}

var _ services.ListAuthorizer = (*OwnerBasedAuthorizer)(nil)

// NewOwnerBasedAuthorizer creates a new ownership-based authorizer
func NewOwnerBasedAuthorizer(itemRepo tasksRepo.ItemRepository, logger *slog.Logger) *OwnerBasedAuthorizer {
	return &OwnerBasedAuthorizer{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// CanWriteToList checks that ownerID owns listID
func (a *OwnerBasedAuthorizer) CanWriteToList(ctx context.Context, ownerID string, listID int64) error {
	owned, err := a.itemRepo.ListBelongsToOwner(ctx, listID, ownerID)
	if err != nil {
		return fmt.Errorf("check list ownership: %w", err)
	}
	if !owned {
		a.logger.Warn("ownership violation",
			"list_id", listID,
			"owner_id", ownerID,
		)
		return &domain.OwnershipViolationError{ListID: listID, OwnerID: ownerID}
	}
	return nil
}
