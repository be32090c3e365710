package postgres

import (
	"context"
	"fmt"

	"github.com/farabi1038/lang-portal/internal/store"
)

// syncSerialSequence advances a table's id sequence to the current maximum
// id. Inserting rows with explicit IDs bypasses the sequence, so without
// this a later serial insert would collide with a seeded row.
func syncSerialSequence(ctx context.Context, db store.DBTX, table string) error {
	query := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
		table, table,
	)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to sync %s id sequence: %w", table, err)
	}
	return nil
}
