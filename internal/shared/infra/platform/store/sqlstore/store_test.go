package sqlstore

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewStore(db, SQLite)
	require.NoError(t, store.InitSchema(context.Background()))
	return store
}

func TestSQLiteStore_InsertFindCount(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	// Arrange
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Insert(ctx, "cfe_requests", sharedDomain.Document{
			"id":        fmt.Sprintf("id-%d", i),
			"name":      "Ana",
			"timestamp": "2025-01-01T00:00:00Z",
			"nested":    map[string]interface{}{"a": 1},
		}))
	}
	require.NoError(t, store.Insert(ctx, "contact_messages", sharedDomain.Document{"id": "x"}))

	// Act
	docs, err := store.Find(ctx, "cfe_requests", 1000)
	require.NoError(t, err)
	count, err := store.Count(ctx, "cfe_requests")
	require.NoError(t, err)

	// Assert
	require.Len(t, docs, 3)
	assert.Equal(t, "id-0", docs[0]["id"])
	assert.Equal(t, "id-2", docs[2]["id"])
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, docs[0]["nested"])
	assert.Equal(t, int64(3), count)
}

func TestSQLiteStore_Limit(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		require.NoError(t, store.Insert(ctx, "c", sharedDomain.Document{"id": fmt.Sprint(i)}))
	}

	docs, err := store.Find(ctx, "c", 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestSQLiteStore_Update(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, "certificate_requests", sharedDomain.Document{
		"id": "a", "status": "pending", "donation_amount": 10.0,
	}))

	matched, err := store.Update(ctx, "certificate_requests", "a", sharedDomain.Document{"status": "verified"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	docs, err := store.Find(ctx, "certificate_requests", 10)
	require.NoError(t, err)
	assert.Equal(t, "verified", docs[0]["status"])
	assert.Equal(t, 10.0, docs[0]["donation_amount"])

	matched, err = store.Update(ctx, "certificate_requests", "missing", sharedDomain.Document{"status": "verified"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestSQLiteStore_InsertWithoutID(t *testing.T) {
	store := newSQLiteStore(t)
	err := store.Insert(context.Background(), "c", sharedDomain.Document{"name": "x"})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: Postgres}
	assert.Equal(t, "SELECT $1, $2", pg.rebind("SELECT ?, ?"))

	lite := &Store{dialect: SQLite}
	assert.Equal(t, "SELECT ?, ?", lite.rebind("SELECT ?, ?"))
}

// Necesita DATABASE_URL apuntando a un PostgreSQL; si no, se salta.
func TestPostgresStore_RoundTrip(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping PostgreSQL integration test")
	}
	ctx := context.Background()

	db, err := Open(Postgres, dsn)
	require.NoError(t, err)
	defer db.Close()
	store := NewStore(db, Postgres)
	require.NoError(t, store.InitSchema(ctx))
	_, err = db.ExecContext(ctx, `DELETE FROM records WHERE collection = 'pg_test'`)
	require.NoError(t, err)

	require.NoError(t, store.Insert(ctx, "pg_test", sharedDomain.Document{"id": "a", "status": "pending"}))
	matched, err := store.Update(ctx, "pg_test", "a", sharedDomain.Document{"status": "verified"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	docs, err := store.Find(ctx, "pg_test", 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "verified", docs[0]["status"])
}
