package tasks

import (
	models "tasklist/internal/domain/models/tasks"
	tasksSvc "tasklist/internal/domain/services/tasks"
)

func toItemSummary(item *models.Item) tasksSvc.ItemSummary {
	return tasksSvc.ItemSummary{
		ID:          item.ID,
		Title:       item.Title,
		Status:      item.Status,
		Priority:    item.Priority,
		Description: item.Description,
	}
}

func toItemSummaries(items []models.Item) []tasksSvc.ItemSummary {
	summaries := make([]tasksSvc.ItemSummary, 0, len(items))
	for i := range items {
		summaries = append(summaries, toItemSummary(&items[i]))
	}
	return summaries
}

func toListResponse(list *models.List) *tasksSvc.ListResponse {
	return &tasksSvc.ListResponse{
		ID:          list.ID,
		Title:       list.Title,
		Description: list.Description,
		OwnerID:     list.OwnerID,
		ItemCount:   len(list.Items),
		Items:       toItemSummaries(list.Items),
	}
}

func toItemResponse(item *models.Item) *tasksSvc.ItemResponse {
	resp := &tasksSvc.ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Type:        item.Type,
		Status:      item.Status,
		Priority:    item.Priority,
		CreatedAt:   item.CreatedAt,
		ListID:      item.ListID,
		ListTitle:   item.ListTitle,
	}
	if item.CompletedAt != nil {
		t := *item.CompletedAt
		resp.CompletedAt = &t
	}
	return resp
}

func toItemResponses(items []models.Item) []tasksSvc.ItemResponse {
	responses := make([]tasksSvc.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toItemResponse(&items[i]))
	}
	return responses
}

func toPaginatedListResponse(list *models.List, page Page) *tasksSvc.PaginatedListResponse {
	return &tasksSvc.PaginatedListResponse{
		ID:              list.ID,
		Title:           list.Title,
		Description:     list.Description,
		OwnerID:         list.OwnerID,
		TotalItemCount:  page.TotalItemCount,
		PageNumber:      page.PageNumber,
		PageSize:        page.PageSize,
		TotalPages:      page.TotalPages,
		HasPreviousPage: page.HasPreviousPage,
		HasNextPage:     page.HasNextPage,
		Items:           toItemSummaries(page.Items),
	}
}
