package tasks

import (
	"fmt"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
	tasksSvc "tasklist/internal/domain/services/tasks"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// listInput is a create/update list request after trimming
type listInput struct {
	Title       string
	Description string
}

// itemInput is a create/update item request after trimming and enum defaulting
type itemInput struct {
	Title       string
	Description string
	Type        string
	Status      models.Status
	Priority    models.Priority
	ListID      int64
}

func normalizeList(title, description string) listInput {
	return listInput{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
}

func normalizeItem(title, description, itemType string, status, priority int, listID int64) itemInput {
	return itemInput{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Type:        strings.TrimSpace(itemType),
		Status:      models.StatusFromCode(status),
		Priority:    models.PriorityFromCode(priority),
		ListID:      listID,
	}
}

func validateListInput(in *listInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title cannot be empty"),
			validation.RuneLength(1, config.MaxListTitleLength),
		),
		validation.Field(&in.Description,
			validation.RuneLength(0, config.MaxListDescriptionLength),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

func validateItemInput(in *itemInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title cannot be empty"),
			validation.RuneLength(1, config.MaxItemTitleLength),
		),
		validation.Field(&in.Description,
			validation.RuneLength(0, config.MaxItemDescriptionLength),
		),
		validation.Field(&in.Type,
			validation.RuneLength(0, config.MaxItemTypeLength),
		),
		validation.Field(&in.ListID,
			validation.Required.Error("list id is required"),
			validation.Min(int64(1)),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// validateID rejects non-positive identifiers before they reach a store
func validateID(resource string, id int64) error {
	if id < 1 {
		return &domain.ValidationError{
			Message: fmt.Sprintf("%s id must be positive, got %d", resource, id),
		}
	}
	return nil
}

// validateOwner rejects calls without an acting owner
func validateOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: owner id is required", domain.ErrUnauthorized)
	}
	return nil
}

// validatePageRequest fills defaults and bounds the page size.
// A zero page size means "use the configured default".
func validatePageRequest(req *tasksSvc.PageRequest, defaultSize, maxSize int) (tasksSvc.PageRequest, error) {
	page := tasksSvc.PageRequest{PageNumber: 1, PageSize: defaultSize}
	if req != nil {
		page = *req
		if page.PageSize == 0 {
			page.PageSize = defaultSize
		}
	}

	err := validation.ValidateStruct(&page,
		validation.Field(&page.PageSize,
			validation.Min(1),
			validation.Max(maxSize),
		),
	)
	if err != nil {
		return page, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return page, nil
}

// validateStatusCode rejects codes outside the Status range.
// Narrow status updates are explicit, so unknown codes are not defaulted.
func validateStatusCode(code int) (models.Status, error) {
	s := models.Status(code)
	if !s.Valid() {
		return 0, &domain.ValidationError{Message: fmt.Sprintf("invalid status code %d", code)}
	}
	return s, nil
}

// validatePriorityCode rejects codes outside the Priority range
func validatePriorityCode(code int) (models.Priority, error) {
	p := models.Priority(code)
	if !p.Valid() {
		return 0, &domain.ValidationError{Message: fmt.Sprintf("invalid priority code %d", code)}
	}
	return p, nil
}
