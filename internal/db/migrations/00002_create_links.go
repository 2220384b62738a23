package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateLinks, downCreateLinks)
}

func upCreateLinks(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE links (
    id          VARCHAR(36) PRIMARY KEY,
    url         TEXT        NOT NULL,
    description TEXT        NOT NULL,
    posted_by   VARCHAR(36) NOT NULL,
    created_at  TIMESTAMP   NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("create links table: %w", err)
	}
	_, err = tx.ExecContext(ctx, `CREATE INDEX links_posted_by_idx ON links (posted_by)`)
	return err
}

func downCreateLinks(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE links`)
	return err
}
