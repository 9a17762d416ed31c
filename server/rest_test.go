package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/wikifeed/pkg/domain"
	"github.com/umputun/wikifeed/pkg/favorites"
	"github.com/umputun/wikifeed/pkg/feed"
	"github.com/umputun/wikifeed/pkg/wiki"
	"github.com/umputun/wikifeed/server/mocks"
)

type articlesResult struct {
	Articles []struct {
		Title    string  `json:"title"`
		Extract  string  `json:"extract"`
		Score    float64 `json:"score"`
		ShareURL string  `json:"share_url"`
		Favorite bool    `json:"favorite"`
	} `json:"articles"`
	Count int `json:"count"`
}

func sampleArticles() []domain.Article {
	return []domain.Article{
		{Title: "The Great Wall of China fortifications", Extract: strings.Repeat("w", 450),
			Description: "fortification", ThumbnailURL: "https://example.com/wall.jpg"},
		{Title: "Rome", Extract: strings.Repeat("r", 250)},
	}
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_articlesHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		loader := &mocks.ArticleLoaderMock{RefreshFunc: func(ctx context.Context, count int) feed.State {
			return feed.State{Status: feed.StatusSuccess, Articles: sampleArticles()}
		}}
		favs := emptyFavorites()
		favs.ContainsFunc = func(title string) bool { return title == "Rome" }
		srv := New(testConfig(":8080"), loader, favs, "1.0.0", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/articles?count=2", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		var res articlesResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Equal(t, 2, res.Count)
		assert.Equal(t, "The Great Wall of China fortifications", res.Articles[0].Title)
		assert.InDelta(t, 100.0, res.Articles[0].Score, 0.001)
		assert.Equal(t, "https://en.wikipedia.org/wiki/The%20Great%20Wall%20of%20China%20fortifications", res.Articles[0].ShareURL)
		assert.False(t, res.Articles[0].Favorite)
		assert.InDelta(t, 25.0, res.Articles[1].Score, 0.001)
		assert.True(t, res.Articles[1].Favorite)

		require.Len(t, loader.RefreshCalls(), 1)
		assert.Equal(t, 2, loader.RefreshCalls()[0].Count)
	})

	t.Run("default count", func(t *testing.T) {
		loader := &mocks.ArticleLoaderMock{RefreshFunc: func(ctx context.Context, count int) feed.State {
			return feed.State{Status: feed.StatusSuccess, Articles: []domain.Article{}}
		}}
		srv := New(testConfig(":8080"), loader, emptyFavorites(), "1.0.0", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/articles", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"articles":[],"count":0}`, w.Body.String())
		assert.Equal(t, 0, loader.RefreshCalls()[0].Count, "zero means loader default")
	})

	t.Run("failure", func(t *testing.T) {
		loader := &mocks.ArticleLoaderMock{RefreshFunc: func(ctx context.Context, count int) feed.State {
			return feed.State{Status: feed.StatusFailure, Articles: sampleArticles(), Err: wiki.ErrBatchFailed,
				Message: feed.FailureMessage}
		}}
		srv := New(testConfig(":8080"), loader, emptyFavorites(), "1.0.0", false)

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/articles?count=3", http.NoBody))
		assert.Equal(t, http.StatusBadGateway, w.Code)
		var res map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, feed.FailureMessage, res["error"])
	})

	t.Run("invalid count", func(t *testing.T) {
		loader := &mocks.ArticleLoaderMock{}
		srv := New(testConfig(":8080"), loader, emptyFavorites(), "1.0.0", false)

		for _, c := range []string{"abc", "0", "-3", "51"} {
			w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/articles?count="+c, http.NoBody))
			assert.Equal(t, http.StatusBadRequest, w.Code, c)
		}
		assert.Empty(t, loader.RefreshCalls())
	})
}

func TestServer_currentArticlesHandler(t *testing.T) {
	loader := &mocks.ArticleLoaderMock{CurrentFunc: func() []domain.Article { return sampleArticles()[:1] }}
	srv := New(testConfig(":8080"), loader, emptyFavorites(), "1.0.0", false)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/articles/current", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	var res articlesResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "The Great Wall of China fortifications", res.Articles[0].Title)
	assert.Len(t, loader.CurrentCalls(), 1)
}

func TestServer_listFavoritesHandler(t *testing.T) {
	created := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	favs := emptyFavorites()
	favs.ListFunc = func() []domain.Favorite {
		return []domain.Favorite{{ID: "id-1", Title: "Mount Everest", Extract: "mountain", CreatedAt: created}}
	}
	srv := New(testConfig(":8080"), &mocks.ArticleLoaderMock{}, favs, "1.0.0", false)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/favorites", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1,"favorites":[{"id":"id-1","title":"Mount Everest","extract":"mountain",
		"created_at":"2025-03-05T12:00:00Z","share_url":"https://en.wikipedia.org/wiki/Mount%20Everest"}]}`, w.Body.String())
}

func TestServer_addFavoriteHandler(t *testing.T) {
	fav := domain.Favorite{ID: "id-1", Title: "Rome", Extract: "city"}

	t.Run("created", func(t *testing.T) {
		favs := emptyFavorites()
		favs.AddFunc = func(ctx context.Context, article domain.Article) (domain.Favorite, bool, error) {
			return fav, true, nil
		}
		srv := New(testConfig(":8080"), &mocks.ArticleLoaderMock{}, favs, "1.0.0", false)

		body := `{"title":"Rome","extract":"city","description":"capital","thumbnail_url":"https://example.com/r.jpg"}`
		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(body)))
		assert.Equal(t, http.StatusCreated, w.Code)

		require.Len(t, favs.AddCalls(), 1)
		assert.Equal(t, domain.Article{Title: "Rome", Extract: "city", Description: "capital",
			ThumbnailURL: "https://example.com/r.jpg"}, favs.AddCalls()[0].Article)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "id-1", res["id"])
		assert.Equal(t, "https://en.wikipedia.org/wiki/Rome", res["share_url"])
	})

	t.Run("already saved", func(t *testing.T) {
		favs := emptyFavorites()
		favs.AddFunc = func(ctx context.Context, article domain.Article) (domain.Favorite, bool, error) {
			return fav, false, nil
		}
		srv := New(testConfig(":8080"), &mocks.ArticleLoaderMock{}, favs, "1.0.0", false)

		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"title":"Rome"}`)))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad json", func(t *testing.T) {
		favs := emptyFavorites()
		srv := New(testConfig(":8080"), &mocks.ArticleLoaderMock{}, favs, "1.0.0", false)

		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{bad`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, favs.AddCalls())
	})

	t.Run("empty title", func(t *testing.T) {
		favs := emptyFavorites()
		favs.AddFunc = func(ctx context.Context, article domain.Article) (domain.Favorite, bool, error) {
			return domain.Favorite{}, false, favorites.ErrEmptyTitle
		}
		srv := New(testConfig(":8080"), &mocks.ArticleLoaderMock{}, favs, "1.0.0", false)

		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"extract":"x"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		favs := emptyFavorites()
		favs.AddFunc = func(ctx context.Context, article domain.Article) (domain.Favorite, bool, error) {
			return domain.Favorite{}, false, errors.New("database is locked")
		}
		srv := New(testConfig(":8080"), &mocks.ArticleLoaderMock{}, favs, "1.0.0", false)

		w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"title":"Rome"}`)))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "database is locked")
	})
}

func TestServer_deleteFavoriteHandler(t *testing.T) {
	tests := []struct {
		name   string
		found  bool
		err    error
		status int
	}{
		{name: "removed", found: true, status: http.StatusNoContent},
		{name: "unknown", found: false, status: http.StatusNotFound},
		{name: "store failure", err: errors.New("disk full"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			favs := emptyFavorites()
			favs.RemoveFunc = func(ctx context.Context, id string) (bool, error) { return tt.found, tt.err }
			srv := New(testConfig(":8080"), &mocks.ArticleLoaderMock{}, favs, "1.0.0", false)

			w := serve(srv, httptest.NewRequest(http.MethodDelete, "/api/v1/favorites/id-42", http.NoBody))
			assert.Equal(t, tt.status, w.Code)
			require.Len(t, favs.RemoveCalls(), 1)
			assert.Equal(t, "id-42", favs.RemoveCalls()[0].ID)
		})
	}
}
