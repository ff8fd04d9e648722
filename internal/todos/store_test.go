package todos

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"todo-backend/internal/config"
)

// setupTestStore opens an in-memory sqlite database and creates the schema.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store, err := NewStore(db, config.DriverSQLite)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return store
}

func TestInitIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("second init: %v", err)
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		created, err := store.Create(ctx, "item", false)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == 0 {
			t.Fatal("expected a generated id")
		}
		if seen[created.ID] {
			t.Fatalf("id %d assigned twice", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestListEmpty(t *testing.T) {
	store := setupTestStore(t)

	items, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestListReturnsAllRowsInIDOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	titles := []string{"one", "two", "three"}
	for _, title := range titles {
		if _, err := store.Create(ctx, title, false); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != len(titles) {
		t.Fatalf("expected %d items, got %d", len(titles), len(items))
	}
	for i, item := range items {
		if item.Title != titles[i] {
			t.Fatalf("item %d: expected title %q, got %q", i, titles[i], item.Title)
		}
		if i > 0 && items[i-1].ID >= item.ID {
			t.Fatalf("ids not ascending: %d then %d", items[i-1].ID, item.ID)
		}
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "to be deleted", true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list after delete, got %d items", len(items))
	}
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.Delete(context.Background(), 999999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTwiceSecondIsNotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "once", false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestNewStoreRejectsUnknownDriver(t *testing.T) {
	if _, err := NewStore(nil, "oracle"); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}
