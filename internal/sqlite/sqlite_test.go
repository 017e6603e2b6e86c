package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/sqlite"
	"github.com/fitevolve/fitevolve/internal/store"
	"github.com/fitevolve/fitevolve/internal/testhelpers"
	"github.com/google/go-cmp/cmp"
)

func newTestDatabase(t *testing.T, url string) *sqlite.Database {
	t.Helper()
	ctx, cancel := context.WithCancel(t.Context())
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, url, logger)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	t.Cleanup(func() {
		cancel()
		if err = db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestDatabase_loadAbsent(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t, ":memory:")
	if _, err := db.Load(t.Context(), "local", store.Nutrition); !errors.Is(err, store.ErrAbsent) {
		t.Errorf("Load() error = %v, want ErrAbsent", err)
	}
}

func TestDatabase_saveLoadDelete(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t, ":memory:")
	ctx := t.Context()

	if err := db.Save(ctx, "local", store.User, []byte(`{"isOnboarded":true}`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := db.Save(ctx, "local", store.User, []byte(`{"isOnboarded":false}`)); err != nil {
		t.Fatalf("Save() overwrite error = %v", err)
	}
	got, err := db.Load(ctx, "local", store.User)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(`{"isOnboarded":false}`, string(got)); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if err = db.Delete(ctx, "local", store.User); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err = db.Load(ctx, "local", store.User); !errors.Is(err, store.ErrAbsent) {
		t.Errorf("Load() after Delete() error = %v, want ErrAbsent", err)
	}
}

func TestDatabase_rejectsInvalidRecords(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t, ":memory:")
	tests := []struct {
		name       string
		storeName  store.Name
		record     string
		wantStored bool
	}{
		{name: "valid", storeName: store.Workout, record: `{}`, wantStored: true},
		{name: "malformed json", storeName: store.Workout, record: `{`, wantStored: false},
		{name: "unknown store", storeName: store.Name("settings"), record: `{}`, wantStored: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := db.Save(t.Context(), tt.name, tt.storeName, []byte(tt.record))
			if (err == nil) != tt.wantStored {
				t.Errorf("Save() error = %v, wantStored %v", err, tt.wantStored)
			}
		})
	}
}

type counter struct {
	Count int `json:"count"`
}

func TestDatabase_concurrentMutationsAreSerialised(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t, ":memory:")
	ctx := t.Context()

	const workers = 20
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			err := store.Mutate(ctx, db, "local", store.Workout, func(c *counter) error {
				c.Count++
				return nil
			})
			if err != nil {
				t.Errorf("Mutate() error = %v", err)
			}
		})
	}
	wg.Wait()

	got, err := store.Get[counter](ctx, db, "local", store.Workout)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Count != workers {
		t.Errorf("Count = %d, want %d", got.Count, workers)
	}
}

func TestDatabase_failedUpdateIsRolledBack(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t, ":memory:")
	ctx := t.Context()
	if err := store.Put(ctx, db, "local", store.Nutrition, counter{Count: 1}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	errBoom := errors.New("boom")
	err := store.Mutate(ctx, db, "local", store.Nutrition, func(c *counter) error {
		c.Count = 42
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("Mutate() error = %v, want %v", err, errBoom)
	}
	got, err := store.Get[counter](ctx, db, "local", store.Nutrition)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Count != 1 {
		t.Errorf("Count = %d, want 1", got.Count)
	}
}

func TestDatabase_reopenKeepsRecords(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "fitevolve.sqlite3")
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	for i := range 2 {
		ctx, cancel := context.WithCancel(t.Context())
		db, err := sqlite.NewDatabase(ctx, path, logger)
		if err != nil {
			t.Fatalf("NewDatabase() run %d error = %v", i, err)
		}
		err = store.Mutate(ctx, db, "local", store.User, func(c *counter) error {
			c.Count++
			return nil
		})
		if err != nil {
			t.Fatalf("Mutate() run %d error = %v", i, err)
		}
		cancel()
		if err = db.Close(); err != nil {
			t.Fatalf("Close() run %d error = %v", i, err)
		}
	}

	db := newTestDatabase(t, path)
	got, err := store.Get[counter](t.Context(), db, "local", store.User)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
}

func TestDatabase_ExportUser(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t, ":memory:")
	ctx := t.Context()
	for _, userID := range []string{"alice", "bob"} {
		for _, name := range []store.Name{store.User, store.Nutrition} {
			record := fmt.Sprintf(`{"owner":%q}`, userID)
			if err := db.Save(ctx, userID, name, []byte(record)); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
		}
	}

	exportPath, err := db.ExportUser(ctx, "alice", t.TempDir())
	if err != nil {
		t.Fatalf("ExportUser() error = %v", err)
	}

	exported, err := sql.Open("sqlite3", "file:"+exportPath+"?mode=ro")
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer exported.Close()

	rows, err := exported.QueryContext(ctx, `SELECT user_id, name FROM kv_stores ORDER BY name`)
	if err != nil {
		t.Fatalf("query export: %v", err)
	}
	defer rows.Close()
	var got []string
	for rows.Next() {
		var userID, name string
		if err = rows.Scan(&userID, &name); err != nil {
			t.Fatalf("scan export: %v", err)
		}
		got = append(got, userID+"/"+name)
	}
	if err = rows.Err(); err != nil {
		t.Fatalf("iterate export: %v", err)
	}
	if diff := cmp.Diff([]string{"alice/nutrition", "alice/user"}, got); diff != "" {
		t.Errorf("exported records mismatch (-want +got):\n%s", diff)
	}
}
