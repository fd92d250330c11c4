package tasks

import (
	"context"
	"fmt"
	"time"

	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
	"tasklist/internal/domain/repositories"
	tasksRepo "tasklist/internal/domain/repositories/tasks"
	"tasklist/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresListRepository implements tasksRepo.ListRepository
type PostgresListRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	tx     repositories.TransactionManager
}

// NewListRepository creates a new list repository
func NewListRepository(config *postgres.RepositoryConfig) tasksRepo.ListRepository {
	return &PostgresListRepository{
		pool:   config.Pool,
		tables: config.Tables,
		tx:     postgres.NewTransactionManager(config.Pool, config.Logger),
	}
}

// ListByOwner retrieves all lists for an owner with their items, ordered by id
func (r *PostgresListRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.List, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, description, created_at
		FROM %s
		WHERE owner_id = $1
		ORDER BY id
	`, r.tables.Lists)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	lists := []models.List{}
	index := make(map[int64]int)
	for rows.Next() {
		var list models.List
		if err := rows.Scan(&list.ID, &list.OwnerID, &list.Title, &list.Description, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		list.Items = []models.Item{}
		index[list.ID] = len(lists)
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}

	if len(lists) == 0 {
		return lists, nil
	}

	itemQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s i
		JOIN %s l ON l.id = i.list_id
		WHERE l.owner_id = $1
		ORDER BY i.id
	`, itemColumns, r.tables.Items, r.tables.Lists)

	itemRows, err := executor.Query(ctx, itemQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items for owner: %w", err)
	}
	items, err := collectItems(itemRows)
	if err != nil {
		return nil, err
	}

	// A list created between the two queries is absent from index; its
	// items are dropped rather than attached to the wrong list
	for _, item := range items {
		if pos, ok := index[item.ListID]; ok {
			lists[pos].Items = append(lists[pos].Items, item)
		}
	}

	return lists, nil
}

// GetByID retrieves a list and its items, scoped to ownerID
func (r *PostgresListRepository) GetByID(ctx context.Context, id int64, ownerID string) (*models.List, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, title, description, created_at
		FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Lists)

	var list models.List
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, ownerID).Scan(
		&list.ID,
		&list.OwnerID,
		&list.Title,
		&list.Description,
		&list.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("list", id)
		}
		return nil, fmt.Errorf("get list: %w", err)
	}

	itemQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s i
		JOIN %s l ON l.id = i.list_id
		WHERE i.list_id = $1
		ORDER BY i.id
	`, itemColumns, r.tables.Items, r.tables.Lists)

	rows, err := executor.Query(ctx, itemQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get list items: %w", err)
	}
	list.Items, err = collectItems(rows)
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// Create inserts a new list
func (r *PostgresListRepository) Create(ctx context.Context, list *models.List) error {
	if list.CreatedAt.IsZero() {
		list.CreatedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, title, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.tables.Lists)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		list.OwnerID,
		list.Title,
		list.Description,
		list.CreatedAt,
	).Scan(&list.ID, &list.CreatedAt)
	if err != nil {
		return fmt.Errorf("create list: %w", err)
	}

	if list.Items == nil {
		list.Items = []models.Item{}
	}
	return nil
}

// Update overwrites title and description. owner_id is only used as a filter.
func (r *PostgresListRepository) Update(ctx context.Context, list *models.List) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2
		WHERE id = $3 AND owner_id = $4
		RETURNING created_at
	`, r.tables.Lists)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		list.Title,
		list.Description,
		list.ID,
		list.OwnerID,
	).Scan(&list.CreatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return domain.NewNotFound("list", list.ID)
		}
		return fmt.Errorf("update list: %w", err)
	}

	return nil
}

// Delete removes the list and its items in one transaction (children first)
func (r *PostgresListRepository) Delete(ctx context.Context, id int64, ownerID string) (bool, error) {
	deleted := false

	err := r.tx.ExecTx(ctx, func(ctx context.Context) error {
		executor := postgres.GetExecutor(ctx, r.pool)

		lockQuery := fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 AND owner_id = $2 FOR UPDATE`, r.tables.Lists)
		var lockedID int64
		if err := executor.QueryRow(ctx, lockQuery, id, ownerID).Scan(&lockedID); err != nil {
			if postgres.IsPgNoRowsError(err) {
				return nil
			}
			return fmt.Errorf("lock list: %w", err)
		}

		if _, err := executor.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE list_id = $1`, r.tables.Items), id); err != nil {
			return fmt.Errorf("delete list items: %w", err)
		}

		result, err := executor.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND owner_id = $2`, r.tables.Lists), id, ownerID)
		if err != nil {
			return fmt.Errorf("delete list: %w", err)
		}

		deleted = result.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}
