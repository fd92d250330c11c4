package tasks

import (
	"context"
	"fmt"

	"tasklist/internal/domain"
	models "tasklist/internal/domain/models/tasks"
	tasksRepo "tasklist/internal/domain/repositories/tasks"
	"tasklist/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresItemRepository implements tasksRepo.ItemRepository.
// Every statement joins the parent list and filters on its owner_id.
type PostgresItemRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewItemRepository creates a new item repository
func NewItemRepository(config *postgres.RepositoryConfig) tasksRepo.ItemRepository {
	return &PostgresItemRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByOwner retrieves all of an owner's items across lists
func (r *PostgresItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s i
		JOIN %s l ON l.id = i.list_id
		WHERE l.owner_id = $1
		ORDER BY i.id
	`, itemColumns, r.tables.Items, r.tables.Lists)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return collectItems(rows)
}

// ListByList retrieves the items of one owned list
func (r *PostgresItemRepository) ListByList(ctx context.Context, listID int64, ownerID string) ([]models.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s i
		JOIN %s l ON l.id = i.list_id
		WHERE i.list_id = $1 AND l.owner_id = $2
		ORDER BY i.id
	`, itemColumns, r.tables.Items, r.tables.Lists)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, listID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items by list: %w", err)
	}
	return collectItems(rows)
}

// GetByID retrieves an item through its owned parent list
func (r *PostgresItemRepository) GetByID(ctx context.Context, id int64, ownerID string) (*models.Item, error) {
	return r.get(ctx, id, ownerID, "")
}

// GetByIDForUpdate retrieves an item and locks its row for the rest of the transaction
func (r *PostgresItemRepository) GetByIDForUpdate(ctx context.Context, id int64, ownerID string) (*models.Item, error) {
	return r.get(ctx, id, ownerID, "FOR UPDATE OF i")
}

func (r *PostgresItemRepository) get(ctx context.Context, id int64, ownerID, lock string) (*models.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s i
		JOIN %s l ON l.id = i.list_id
		WHERE i.id = $1 AND l.owner_id = $2
		%s
	`, itemColumns, r.tables.Items, r.tables.Lists, lock)

	executor := postgres.GetExecutor(ctx, r.pool)
	item, err := scanItem(executor.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("item", id)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}

// Create inserts a new item
func (r *PostgresItemRepository) Create(ctx context.Context, item *models.Item) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (list_id, title, description, type, status, priority, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, r.tables.Items)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		item.ListID,
		item.Title,
		item.Description,
		item.Type,
		int16(item.Status),
		int16(item.Priority),
		item.CreatedAt,
		item.CompletedAt,
	).Scan(&item.ID)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return domain.NewNotFound("list", item.ListID)
		}
		return fmt.Errorf("create item: %w", err)
	}

	return nil
}

// Update overwrites the mutable fields of an item. list_id and created_at are not written.
func (r *PostgresItemRepository) Update(ctx context.Context, item *models.Item, ownerID string) error {
	query := fmt.Sprintf(`
		UPDATE %s i
		SET title = $1, description = $2, type = $3, status = $4, priority = $5, completed_at = $6
		FROM %s l
		WHERE i.id = $7 AND l.id = i.list_id AND l.owner_id = $8
	`, r.tables.Items, r.tables.Lists)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		item.Title,
		item.Description,
		item.Type,
		int16(item.Status),
		int16(item.Priority),
		item.CompletedAt,
		item.ID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("item", item.ID)
	}

	return nil
}

// Delete removes one item owned through its list
func (r *PostgresItemRepository) Delete(ctx context.Context, id int64, ownerID string) (bool, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s i
		USING %s l
		WHERE i.id = $1 AND l.id = i.list_id AND l.owner_id = $2
	`, r.tables.Items, r.tables.Lists)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

// ListBelongsToOwner reports whether listID is owned by ownerID
func (r *PostgresItemRepository) ListBelongsToOwner(ctx context.Context, listID int64, ownerID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1 AND owner_id = $2)`, r.tables.Lists)

	var belongs bool
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, listID, ownerID).Scan(&belongs); err != nil {
		return false, fmt.Errorf("check list ownership: %w", err)
	}
	return belongs, nil
}
