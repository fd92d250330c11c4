// Package seed loads demo lists and items for an owner.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	models "tasklist/internal/domain/models/tasks"
	"tasklist/internal/domain/repositories"
	tasksRepo "tasklist/internal/domain/repositories/tasks"

	"github.com/google/uuid"
)

// Result reports what a Seed call did
type Result struct {
	OwnerID string `json:"owner_id"`
	Skipped bool   `json:"skipped"`
	Lists   int    `json:"lists"`
	Items   int    `json:"items"`
}

// Seeder writes fixture data through the repositories
type Seeder struct {
	listRepo  tasksRepo.ListRepository
	itemRepo  tasksRepo.ItemRepository
	txManager repositories.TransactionManager
	fixture   *Fixture
	now       func() time.Time
	logger    *slog.Logger
}

// NewSeeder creates a seeder for the embedded demo fixture
func NewSeeder(
	listRepo tasksRepo.ListRepository,
	itemRepo tasksRepo.ItemRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) (*Seeder, error) {
	fixture, err := DemoFixture()
	if err != nil {
		return nil, err
	}
	return &Seeder{
		listRepo:  listRepo,
		itemRepo:  itemRepo,
		txManager: txManager,
		fixture:   fixture,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}, nil
}

// WithFixture replaces the fixture the seeder writes
func (s *Seeder) WithFixture(f *Fixture) *Seeder {
	s.fixture = f
	return s
}

// WithClock replaces the time source used to resolve day offsets
func (s *Seeder) WithClock(now func() time.Time) *Seeder {
	s.now = now
	return s
}

// NewOwnerID generates an owner identifier for a fresh demo account
func NewOwnerID() string {
	return uuid.NewString()
}

// Seed creates the fixture's lists and items for ownerID in one transaction.
// An owner who already has any list is left untouched.
func (s *Seeder) Seed(ctx context.Context, ownerID string) (*Result, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("seed: owner id is required")
	}

	result := &Result{OwnerID: ownerID}
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		existing, err := s.listRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to check existing lists: %w", err)
		}
		if len(existing) > 0 {
			result.Skipped = true
			return nil
		}

		now := s.now()
		for _, fl := range s.fixture.Lists {
			list := &models.List{
				OwnerID:     ownerID,
				Title:       fl.Title,
				Description: fl.Description,
			}
			if err := s.listRepo.Create(ctx, list); err != nil {
				return fmt.Errorf("failed to create list %q: %w", fl.Title, err)
			}
			result.Lists++

			for _, fi := range fl.Items {
				item := fi.toItem(list.ID, now)
				if err := s.itemRepo.Create(ctx, &item); err != nil {
					return fmt.Errorf("failed to create item %q: %w", fi.Title, err)
				}
				result.Items++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Skipped {
		s.logger.Info("owner already has lists, skipping seed", "owner_id", ownerID)
	} else {
		s.logger.Info("seeded demo data",
			"owner_id", ownerID,
			"lists", result.Lists,
			"items", result.Items,
		)
	}
	return result, nil
}
