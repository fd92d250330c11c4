package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the list and item tables if they don't exist.
//
// The items foreign key has no ON DELETE CASCADE: list deletion removes
// children explicitly inside its own transaction, and the FK rejects any
// path that would leave an orphan.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				owner_id TEXT NOT NULL,
				title TEXT NOT NULL CHECK (length(btrim(title)) > 0),
				description TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Lists),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				list_id BIGINT NOT NULL REFERENCES %s(id),
				title TEXT NOT NULL CHECK (length(btrim(title)) > 0),
				description TEXT NOT NULL DEFAULT '',
				type TEXT NOT NULL DEFAULT '',
				status SMALLINT NOT NULL CHECK (status BETWEEN 0 AND 2),
				priority SMALLINT NOT NULL CHECK (priority BETWEEN 0 AND 2),
				created_at TIMESTAMPTZ NOT NULL,
				completed_at TIMESTAMPTZ,
				CHECK ((status = 2) = (completed_at IS NOT NULL))
			)`, tables.Items, tables.Lists),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_owner ON %s(owner_id)`, tables.Lists, tables.Lists),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_list ON %s(list_id)`, tables.Items, tables.Items),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DropSchema drops the item and list tables (children first)
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range []string{tables.Items, tables.Lists} {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

// ClearData deletes every item and list while keeping the tables
func ClearData(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range []string{tables.Items, tables.Lists} {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
