package store

import (
	"context"
	"testing"

	"interviewmate/internal/models"
	"interviewmate/internal/testhelpers"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func backends(t *testing.T) map[string]Store {
	t.Helper()

	gormStore, err := NewGormStore(testhelpers.SetupTestDB(t))
	require.NoError(t, err)

	_, rdb := setupTestRedis(t)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"gorm":   gormStore,
		"redis":  NewRedisStore(rdb, "test:"),
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, KeyTheme)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, KeyTheme, []byte(`"dark"`)))
			v, ok, err := s.Get(ctx, KeyTheme)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `"dark"`, string(v))

			// overwrite
			require.NoError(t, s.Set(ctx, KeyTheme, []byte(`"light"`)))
			v, _, _ = s.Get(ctx, KeyTheme)
			assert.Equal(t, `"light"`, string(v))

			require.NoError(t, s.Remove(ctx, KeyTheme))
			_, ok, _ = s.Get(ctx, KeyTheme)
			assert.False(t, ok)

			// removing a missing key is fine
			require.NoError(t, s.Remove(ctx, KeyTheme))

			require.NoError(t, s.Set(ctx, KeyStreak, []byte(`3`)))
			require.NoError(t, s.Set(ctx, KeyChecklist, []byte(`[]`)))
			require.NoError(t, s.Clear(ctx))
			for _, key := range Keys() {
				_, ok, err := s.Get(ctx, key)
				require.NoError(t, err)
				assert.False(t, ok, key)
			}
		})
	}
}

func TestRedisStoreClearKeepsForeignKeys(t *testing.T) {
	ctx := context.Background()
	mr, rdb := setupTestRedis(t)
	s := NewRedisStore(rdb, "interviewmate:")

	require.NoError(t, mr.Set("other:key", "keep"))
	require.NoError(t, s.Set(ctx, KeyStreak, []byte("1")))
	assert.True(t, mr.Exists("interviewmate:streak"))

	require.NoError(t, s.Clear(ctx))

	assert.False(t, mr.Exists("interviewmate:streak"))
	assert.True(t, mr.Exists("other:key"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
	got[1] = 'y'

	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
	assert.Equal(t, 1, s.Len())
}

func TestGormStoreReadErrorIsReported(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	s, err := NewGormStore(db)
	require.NoError(t, err)

	testhelpers.DropKVTable(t, db)

	_, _, err = s.Get(context.Background(), KeyInterviews)
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	logger := zap.NewNop()

	t.Run("missing key keeps defaults", func(t *testing.T) {
		items := []models.ChecklistItem{{ID: 1, Text: "default"}}
		assert.False(t, LoadJSON(ctx, s, KeyChecklist, &items, logger))
		assert.Len(t, items, 1)
	})

	t.Run("malformed value keeps defaults", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyChecklist, []byte(`[{"id": "not-a-number"`)))
		items := []models.ChecklistItem{{ID: 1, Text: "default"}}
		assert.False(t, LoadJSON(ctx, s, KeyChecklist, &items, logger))
		assert.Equal(t, "default", items[0].Text)
	})

	t.Run("type mismatch keeps defaults", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyStreak, []byte(`"seven"`)))
		streak := 2
		assert.False(t, LoadJSON(ctx, s, KeyStreak, &streak, logger))
		assert.Equal(t, 2, streak)
	})

	t.Run("round trip", func(t *testing.T) {
		want := []models.ChecklistItem{{ID: 9, Text: "Bring water", Checked: true}}
		require.NoError(t, SaveJSON(ctx, s, KeyChecklist, want))

		var got []models.ChecklistItem
		assert.True(t, LoadJSON(ctx, s, KeyChecklist, &got, logger))
		assert.Equal(t, want, got)
	})

	t.Run("read error keeps defaults", func(t *testing.T) {
		db := testhelpers.SetupTestDB(t)
		gs, err := NewGormStore(db)
		require.NoError(t, err)
		testhelpers.DropKVTable(t, db)

		theme := "light"
		assert.False(t, LoadJSON(ctx, gs, KeyTheme, &theme, nil))
		assert.Equal(t, "light", theme)
	})
}
