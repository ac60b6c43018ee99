package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

// RowDeleter deletes by id from any of the admin tables.
type RowDeleter struct {
	DB *sql.DB
}

func NewRowDeleter(db *sql.DB) *RowDeleter {
	return &RowDeleter{DB: db}
}

func (d *RowDeleter) DeleteRow(ctx context.Context, table entity.Table, id string) error {
	if _, err := entity.ParseTable(string(table)); err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pq.QuoteIdentifier(string(table)))
	res, err := d.DB.ExecContext(ctx, query, id)
	if isInvalidID(err) {
		return table.NotFound()
	}
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return table.NotFound()
	}
	return nil
}
