package tasks

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	models "tasklist/internal/domain/models/tasks"
)

// itemColumns is the select list understood by scanItem
const itemColumns = `i.id, i.list_id, i.title, i.description, i.type, i.status, i.priority, i.created_at, i.completed_at, l.title`

func scanItem(row pgx.Row) (models.Item, error) {
	var (
		item     models.Item
		status   int16
		priority int16
	)
	err := row.Scan(
		&item.ID,
		&item.ListID,
		&item.Title,
		&item.Description,
		&item.Type,
		&status,
		&priority,
		&item.CreatedAt,
		&item.CompletedAt,
		&item.ListTitle,
	)
	if err != nil {
		return models.Item{}, err
	}
	item.Status = models.Status(status)
	item.Priority = models.Priority(priority)
	return item, nil
}

func collectItems(rows pgx.Rows) ([]models.Item, error) {
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
