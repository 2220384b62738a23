// Package migrations contains the goose Go migrations for the linkfeed schema.
// DDL is kept to the portable subset that SQLite, MySQL, and PostgreSQL all
// accept, so no per-dialect branching is needed.
package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsers, downCreateUsers)
}

func upCreateUsers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE users (
    id            VARCHAR(36)  PRIMARY KEY,
    email         VARCHAR(255) NOT NULL,
    name          VARCHAR(255) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    created_at    TIMESTAMP    NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	_, err = tx.ExecContext(ctx, `CREATE UNIQUE INDEX users_email_idx ON users (email)`)
	return err
}

func downCreateUsers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE users`)
	return err
}
