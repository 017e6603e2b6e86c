package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// schemaVersion is stored in PRAGMA user_version. Bump it together with a new entry in migrations.
const schemaVersion = 1

// migrations upgrade the schema from version index to index+1.
//
//nolint:gochecknoglobals // static migration list.
var migrations = []string{
	schemaDefinition,
}

// migrate brings the schema up to schemaVersion inside a single transaction.
func (db *Database) migrate(ctx context.Context) error {
	start := time.Now()

	var tx *sql.Tx
	tx, err := db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer db.rollback(ctx, tx)()

	var version int
	if err = tx.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}
	if version == schemaVersion {
		return nil
	}

	for i := version; i < schemaVersion; i++ {
		if _, err = tx.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("apply migration %d: %w", i+1, err)
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("write user_version: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	db.logger.LogAttrs(ctx, slog.LevelInfo, "migrated database",
		slog.Int("from", version), slog.Int("to", schemaVersion), slog.Duration("duration", time.Since(start)))
	return nil
}

// rollback returns a function that rolls back tx unless it was already committed.
func (db *Database) rollback(ctx context.Context, tx *sql.Tx) func() {
	return func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone { //nolint:errorlint // sentinel from database/sql.
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to rollback transaction", slog.Any("error", err))
		}
	}
}
