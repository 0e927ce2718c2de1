package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent cannot
// express. The poller's due-automation query relies on the polling index:
// SELECT ... WHERE active AND trigger_type='polling' AND (next_poll_at IS
// NULL OR next_poll_at <= now).
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS automations_polling_due
		ON automations (next_poll_at)
		WHERE active AND trigger_type = 'polling'`)
	if err != nil {
		return fmt.Errorf("failed to create polling due index: %w", err)
	}

	return nil
}
