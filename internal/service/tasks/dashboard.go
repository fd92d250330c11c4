package tasks

import (
	"context"
	"log/slog"

	models "tasklist/internal/domain/models/tasks"
	tasksRepo "tasklist/internal/domain/repositories/tasks"
	tasksSvc "tasklist/internal/domain/services/tasks"
)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	listRepo tasksRepo.ListRepository
	logger   *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(listRepo tasksRepo.ListRepository, logger *slog.Logger) tasksSvc.DashboardService {
	return &dashboardService{
		listRepo: listRepo,
		logger:   logger,
	}
}

// GetDashboard counts an owner's items by status and by priority
func (s *dashboardService) GetDashboard(ctx context.Context, ownerID string) (*tasksSvc.DashboardResult, error) {
	if err := validateOwner(ownerID); err != nil {
		return nil, err
	}

	lists, err := s.listRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(lists)
	if summary.TotalItemCount == 0 {
		s.logger.Debug("dashboard has no data", "owner_id", ownerID, "list_count", len(lists))
		return &tasksSvc.DashboardResult{HasData: false}, nil
	}

	return &tasksSvc.DashboardResult{HasData: true, Summary: summary}, nil
}

// Summarize tallies the items of lists. Items with out-of-range enum values
// are counted under the default bucket so both breakdowns still add up.
func Summarize(lists []models.List) *tasksSvc.DashboardResponse {
	summary := &tasksSvc.DashboardResponse{ListCount: len(lists)}

	for _, list := range lists {
		for _, item := range list.Items {
			summary.TotalItemCount++

			switch item.Status {
			case models.StatusInProgress:
				summary.InProgressCount++
			case models.StatusDone:
				summary.DoneCount++
			default:
				summary.NotStartedCount++
			}

			switch item.Priority {
			case models.PriorityMedium:
				summary.MediumPriorityCount++
			case models.PriorityHigh:
				summary.HighPriorityCount++
			default:
				summary.LowPriorityCount++
			}
		}
	}

	return summary
}
