package store

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homekeep/api/internal/config"
	"github.com/homekeep/api/internal/database"
)

func TestTable_KnownCollections(t *testing.T) {
	for _, collection := range database.Collections {
		tbl, err := table(collection)
		assert.NoError(t, err)
		assert.Equal(t, collection, tbl)
	}
}

func TestTable_UnknownCollection(t *testing.T) {
	_, err := table("users; DROP TABLE houses")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestNewDocumentID_Unique(t *testing.T) {
	a := NewDocumentID()
	b := NewDocumentID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestCountQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, args := countQuery("systems", nil)
		assert.Equal(t, "SELECT count(*) FROM systems", query)
		assert.Empty(t, args)
	})

	t.Run("single filter", func(t *testing.T) {
		query, args := countQuery("systems", map[string]string{"houseId": "AIGUAVIVA"})
		assert.Equal(t, "SELECT count(*) FROM systems WHERE doc->>$1 = $2", query)
		assert.Equal(t, []interface{}{"houseId", "AIGUAVIVA"}, args)
	})

	t.Run("two filters", func(t *testing.T) {
		query, args := countQuery("systems", map[string]string{
			"houseId": "AIGUAVIVA",
			"type":    "electrical",
		})
		assert.Contains(t, query, " WHERE ")
		assert.Contains(t, query, " AND ")
		assert.Len(t, args, 4)
	})
}

// Integration tests below need a reachable PostgreSQL instance.

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := config.DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		Name:     getEnvOrDefault("DB_NAME", "homekeep"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		PoolMin:  2,
		PoolMax:  5,
	}

	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.InitSchema(ctx))
	t.Cleanup(db.Close)

	return New(db)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestStore_InsertGetDelete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id := NewDocumentID()
	doc := json.RawMessage(`{"name":"Test House","address":"Carrer Major 1"}`)

	require.NoError(t, s.Insert(ctx, "houses", id, doc))
	t.Cleanup(func() { _ = s.Delete(ctx, "houses", id) })

	got, err := s.GetByID(ctx, "houses", id)
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))

	require.NoError(t, s.Delete(ctx, "houses", id))

	_, err = s.GetByID(ctx, "houses", id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "houses", id), ErrNotFound)
}

func TestStore_PatchMergesFields(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id := NewDocumentID()
	require.NoError(t, s.Insert(ctx, "houses", id,
		json.RawMessage(`{"name":"Old Name","notes":"keep me"}`)))
	t.Cleanup(func() { _ = s.Delete(ctx, "houses", id) })

	require.NoError(t, s.Patch(ctx, "houses", id, map[string]interface{}{"name": "New Name"}))

	got, err := s.GetByID(ctx, "houses", id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"New Name","notes":"keep me"}`, string(got))

	assert.ErrorIs(t, s.Patch(ctx, "houses", "missing", map[string]interface{}{"name": "x"}), ErrNotFound)
}

func TestStore_PatchWhere(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	houseID := NewDocumentID()
	a := NewDocumentID()
	b := NewDocumentID()
	unrelated := NewDocumentID()

	require.NoError(t, s.Insert(ctx, "systems", a,
		json.RawMessage(`{"houseId":"`+houseID+`","houseName":"Old"}`)))
	require.NoError(t, s.Insert(ctx, "systems", b,
		json.RawMessage(`{"houseId":"`+houseID+`","houseName":"Old"}`)))
	require.NoError(t, s.Insert(ctx, "systems", unrelated,
		json.RawMessage(`{"houseId":"elsewhere","houseName":"Keep"}`)))
	t.Cleanup(func() {
		_ = s.Delete(ctx, "systems", a)
		_ = s.Delete(ctx, "systems", b)
		_ = s.Delete(ctx, "systems", unrelated)
	})

	changed, err := s.PatchWhere(ctx, "systems", "houseId", houseID,
		map[string]interface{}{"houseName": "New"})
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	got, err := s.GetByID(ctx, "systems", unrelated)
	require.NoError(t, err)
	assert.JSONEq(t, `{"houseId":"elsewhere","houseName":"Keep"}`, string(got))
}

func TestStore_ListWhere(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	houseID := NewDocumentID()
	matching := NewDocumentID()
	other := NewDocumentID()
	blank := NewDocumentID()

	require.NoError(t, s.Insert(ctx, "systems", matching,
		json.RawMessage(`{"houseId":"`+houseID+`","code":"X-EL-01"}`)))
	require.NoError(t, s.Insert(ctx, "systems", other,
		json.RawMessage(`{"houseId":"somewhere-else","code":"Y-EL-01"}`)))
	require.NoError(t, s.Insert(ctx, "systems", blank,
		json.RawMessage(`{"code":"orphan"}`)))
	t.Cleanup(func() {
		_ = s.Delete(ctx, "systems", matching)
		_ = s.Delete(ctx, "systems", other)
		_ = s.Delete(ctx, "systems", blank)
	})

	docs, err := s.ListWhere(ctx, "systems", "houseId", houseID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, matching, docs[0].ID)

	// Zero matches is an empty slice, not an error
	docs, err = s.ListWhere(ctx, "systems", "houseId", "no-such-house")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestStore_ListWhereContains(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id := NewDocumentID()
	require.NoError(t, s.Insert(ctx, "contacts", id,
		json.RawMessage(`{"name":"Lampista","houseIds":["A","B"]}`)))
	t.Cleanup(func() { _ = s.Delete(ctx, "contacts", id) })

	for _, house := range []string{"A", "B"} {
		docs, err := s.ListWhereContains(ctx, "contacts", "houseIds", house)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, id, docs[0].ID)
	}

	docs, err := s.ListWhereContains(ctx, "contacts", "houseIds", "C")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestStore_CreateWithSequence(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	houseID := NewDocumentID()
	filters := map[string]string{"houseId": houseID}

	var ids []string
	t.Cleanup(func() {
		for _, id := range ids {
			_ = s.Delete(ctx, "systems", id)
		}
	})

	for want := 0; want < 3; want++ {
		id := NewDocumentID()
		ids = append(ids, id)
		err := s.CreateWithSequence(ctx, "systems", houseID, id, filters, func(count int) (json.RawMessage, error) {
			assert.Equal(t, want, count)
			return json.RawMessage(`{"houseId":"` + houseID + `"}`), nil
		})
		require.NoError(t, err)
	}
}
