package postgres

import (
	"context"
	"fmt"
)

const schema = `
	CREATE TABLE IF NOT EXISTS tutorial_flags (
		user_id    BIGINT      NOT NULL,
		flag       TEXT        NOT NULL,
		value      BOOLEAN     NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, flag)
	)
`

// EnsureSchema creates the tables used by the bot if they do not exist yet.
func EnsureSchema(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
