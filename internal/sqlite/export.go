package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

//nolint:gochecknoglobals // compiled once.
var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ExportUser copies every record of userID into a standalone SQLite database file under basePath and returns
// its path. The export has the same kv_stores schema so it can be opened with [NewDatabase].
func (db *Database) ExportUser(ctx context.Context, userID string, basePath string) (_ string, err error) {
	exportPath := filepath.Join(basePath,
		fmt.Sprintf("fitevolve-%s.sqlite3", unsafeFileChars.ReplaceAllString(userID, "_")))
	if err = os.Remove(exportPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove previous export: %w", err)
	}
	exportDsn := fmt.Sprintf("file:%s?mode=rwc", exportPath)

	conn, err := db.ReadWrite.Conn(ctx)
	if err != nil {
		return "", fmt.Errorf("get db connection: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close db connection: %w", closeErr)
		}
	}()

	// ATTACH is not allowed inside a transaction.
	if _, err = conn.ExecContext(ctx, `ATTACH DATABASE ? AS export`, exportDsn); err != nil {
		return "", fmt.Errorf("attach export database: %w", err)
	}
	defer func() {
		if _, detachErr := conn.ExecContext(ctx, `DETACH DATABASE export`); detachErr != nil && err == nil {
			err = fmt.Errorf("detach export database: %w", detachErr)
		}
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer db.rollback(ctx, tx)()

	if _, err = tx.ExecContext(ctx, `CREATE TABLE export.kv_stores
(
    user_id    TEXT NOT NULL,
    name       TEXT NOT NULL,
    record     TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (user_id, name)
) WITHOUT ROWID, STRICT`); err != nil {
		return "", fmt.Errorf("create export table: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO export.kv_stores (user_id, name, record, updated_at)
SELECT user_id, name, record, updated_at FROM main.kv_stores WHERE user_id = ?`, userID); err != nil {
		return "", fmt.Errorf("copy records: %w", err)
	}
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA export.user_version = %d", schemaVersion)); err != nil {
		return "", fmt.Errorf("write export user_version: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit export: %w", err)
	}
	return exportPath, nil
}
