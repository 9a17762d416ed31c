package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/wikifeed/pkg/domain"
	"github.com/umputun/wikifeed/pkg/favorites/mocks"
	"github.com/umputun/wikifeed/pkg/repository"
)

// memStore returns a mock keeping blobs in a map
func memStore() (*mocks.StoreMock, map[string]string) {
	data := map[string]string{}
	return &mocks.StoreMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			return data[key], nil
		},
		SetSettingFunc: func(ctx context.Context, key, value string) error {
			data[key] = value
			return nil
		},
	}, data
}

func newTestManager(store Store) *Manager {
	m := NewManager(store)
	seq := 0
	m.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	m.now = func() time.Time { return time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC) }
	return m
}

func decodeSaved(t *testing.T, data map[string]string) []domain.Favorite {
	t.Helper()
	var res []domain.Favorite
	require.NoError(t, json.Unmarshal([]byte(data[StorageKey]), &res))
	return res
}

func TestManager_Load(t *testing.T) {
	t.Run("nothing saved", func(t *testing.T) {
		store, _ := memStore()
		m := NewManager(store)
		require.NoError(t, m.Load(context.Background()))
		assert.Empty(t, m.List())
		require.Len(t, store.GetSettingCalls(), 1)
		assert.Equal(t, "SavedFavorites", store.GetSettingCalls()[0].Key)
	})

	t.Run("saved list", func(t *testing.T) {
		store, data := memStore()
		data[StorageKey] = `[{"id":"a","title":"Rome","extract":"city"},{"id":"b","title":"Petra","extract":"ruins","thumbnail_url":"https://example.com/p.jpg"}]`
		m := NewManager(store)
		require.NoError(t, m.Load(context.Background()))

		list := m.List()
		require.Len(t, list, 2)
		assert.Equal(t, "Rome", list[0].Title)
		assert.Equal(t, "https://example.com/p.jpg", list[1].ThumbnailURL)
		assert.True(t, m.Contains("Petra"))
	})

	t.Run("corrupted blob", func(t *testing.T) {
		store, data := memStore()
		data[StorageKey] = `{not json`
		m := NewManager(store)
		err := m.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode favorites")
	})

	t.Run("store error", func(t *testing.T) {
		store := &mocks.StoreMock{GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			return "", errors.New("disk gone")
		}}
		m := NewManager(store)
		err := m.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")
	})
}

func TestManager_Add(t *testing.T) {
	t.Run("add and dedupe by title", func(t *testing.T) {
		store, data := memStore()
		m := newTestManager(store)

		fav, added, err := m.Add(context.Background(), domain.Article{Title: "Rome", Extract: "city", Description: "capital",
			ThumbnailURL: "https://example.com/rome.jpg"})
		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, domain.Favorite{ID: "id-1", Title: "Rome", Extract: "city", ThumbnailURL: "https://example.com/rome.jpg",
			CreatedAt: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)}, fav)

		dup, added, err := m.Add(context.Background(), domain.Article{Title: "Rome", Extract: "another extract"})
		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, "id-1", dup.ID)
		assert.Equal(t, "city", dup.Extract)

		_, added, err = m.Add(context.Background(), domain.Article{Title: "Petra", Extract: "ruins"})
		require.NoError(t, err)
		assert.True(t, added)

		assert.Len(t, m.List(), 2)
		assert.Len(t, store.SetSettingCalls(), 2, "duplicate doesn't persist")

		saved := decodeSaved(t, data)
		require.Len(t, saved, 2)
		assert.Equal(t, "Rome", saved[0].Title)
		assert.Equal(t, "Petra", saved[1].Title)
		assert.Equal(t, "id-2", saved[1].ID)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		store, _ := memStore()
		m := newTestManager(store)
		_, _, err := m.Add(context.Background(), domain.Article{Title: "  "})
		require.ErrorIs(t, err, ErrEmptyTitle)
		assert.Empty(t, store.SetSettingCalls())
	})

	t.Run("failed save rolls back", func(t *testing.T) {
		store := &mocks.StoreMock{SetSettingFunc: func(ctx context.Context, key, value string) error {
			return errors.New("database is locked")
		}}
		m := newTestManager(store)
		_, added, err := m.Add(context.Background(), domain.Article{Title: "Rome"})
		require.Error(t, err)
		assert.False(t, added)
		assert.Empty(t, m.List())
		assert.False(t, m.Contains("Rome"))
	})
}

func TestManager_Remove(t *testing.T) {
	store, data := memStore()
	m := newTestManager(store)
	_, _, err := m.Add(context.Background(), domain.Article{Title: "Rome"})
	require.NoError(t, err)
	_, _, err = m.Add(context.Background(), domain.Article{Title: "Petra"})
	require.NoError(t, err)

	found, err := m.Remove(context.Background(), "id-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, m.Contains("Rome"))
	saved := decodeSaved(t, data)
	require.Len(t, saved, 1)
	assert.Equal(t, "Petra", saved[0].Title)

	found, err = m.Remove(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, store.SetSettingCalls(), 4, "every remove rewrites the list")

	// removed title can be added again
	_, added, err := m.Add(context.Background(), domain.Article{Title: "Rome"})
	require.NoError(t, err)
	assert.True(t, added)
}

func TestManager_ListIsCopy(t *testing.T) {
	store, _ := memStore()
	m := newTestManager(store)
	_, _, err := m.Add(context.Background(), domain.Article{Title: "Rome"})
	require.NoError(t, err)

	list := m.List()
	list[0].Title = "changed"
	assert.True(t, m.Contains("Rome"))
}

func TestManager_WithRepository(t *testing.T) {
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	m := NewManager(repos.Setting)
	require.NoError(t, m.Load(context.Background()))
	fav, added, err := m.Add(context.Background(), domain.Article{Title: "Mount Everest", Extract: "highest mountain"})
	require.NoError(t, err)
	require.True(t, added)
	assert.NotEmpty(t, fav.ID)

	// a fresh manager sees the same list after load
	m2 := NewManager(repos.Setting)
	require.NoError(t, m2.Load(context.Background()))
	list := m2.List()
	require.Len(t, list, 1)
	assert.Equal(t, fav.ID, list[0].ID)
	assert.Equal(t, "Mount Everest", list[0].Title)
	assert.True(t, fav.CreatedAt.Equal(list[0].CreatedAt))
}
