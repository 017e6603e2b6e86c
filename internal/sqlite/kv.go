package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitevolve/fitevolve/internal/store"
)

// Load implements [store.KeyValue].
func (db *Database) Load(ctx context.Context, userID string, name store.Name) ([]byte, error) {
	var record string
	err := db.ReadOnly.QueryRowContext(ctx,
		`SELECT record FROM kv_stores WHERE user_id = ? AND name = ?`, userID, string(name)).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrAbsent
	}
	if err != nil {
		return nil, fmt.Errorf("select record: %w", err)
	}
	return []byte(record), nil
}

// Save implements [store.KeyValue].
func (db *Database) Save(ctx context.Context, userID string, name store.Name, record []byte) error {
	if _, err := db.ReadWrite.ExecContext(ctx, upsertRecordSQL,
		userID, string(name), string(record), db.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

const upsertRecordSQL = `
INSERT INTO kv_stores (user_id, name, record, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (user_id, name) DO UPDATE SET record     = excluded.record,
                                          updated_at = excluded.updated_at`

// Update implements [store.KeyValue]. The read and the write share one immediate transaction on the read-write
// connection so concurrent updates are serialised.
func (db *Database) Update(
	ctx context.Context, userID string, name store.Name, updateFn func(record []byte) ([]byte, error),
) error {
	tx, err := db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer db.rollback(ctx, tx)()

	var (
		current sql.NullString
		record  []byte
	)
	err = tx.QueryRowContext(ctx,
		`SELECT record FROM kv_stores WHERE user_id = ? AND name = ?`, userID, string(name)).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("select record: %w", err)
	}
	if current.Valid {
		record = []byte(current.String)
	}

	updated, err := updateFn(record)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, upsertRecordSQL,
		userID, string(name), string(updated), db.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	db.logger.LogAttrs(ctx, slog.LevelDebug, "updated record",
		slog.String("user_id", userID), slog.String("name", string(name)), slog.Int("bytes", len(updated)))
	return nil
}

// Delete implements [store.KeyValue].
func (db *Database) Delete(ctx context.Context, userID string, name store.Name) error {
	if _, err := db.ReadWrite.ExecContext(ctx,
		`DELETE FROM kv_stores WHERE user_id = ? AND name = ?`, userID, string(name)); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
