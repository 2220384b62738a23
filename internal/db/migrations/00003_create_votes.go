package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateVotes, downCreateVotes)
}

func upCreateVotes(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE votes (
    id         VARCHAR(36) PRIMARY KEY,
    user_id    VARCHAR(36) NOT NULL,
    link_id    VARCHAR(36) NOT NULL,
    created_at TIMESTAMP   NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("create votes table: %w", err)
	}
	// The unique index is the authority on one-vote-per-user-per-link.
	// Handlers run an existence pre-check first, but two concurrent votes
	// can both pass it; the index closes that window.
	_, err = tx.ExecContext(ctx, `CREATE UNIQUE INDEX votes_user_link_idx ON votes (user_id, link_id)`)
	return err
}

func downCreateVotes(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE votes`)
	return err
}
