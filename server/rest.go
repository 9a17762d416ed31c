package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/wikifeed/pkg/domain"
	"github.com/umputun/wikifeed/pkg/favorites"
	"github.com/umputun/wikifeed/pkg/feed"
)

// maxArticlesCount limits a single load, each article costs three wiki lookups
const maxArticlesCount = 50

// articleResponse is an article with derived fields for API clients
type articleResponse struct {
	domain.Article
	Score    float64 `json:"score"`
	ShareURL string  `json:"share_url"`
	Favorite bool    `json:"favorite"`
}

type favoriteResponse struct {
	domain.Favorite
	ShareURL string `json:"share_url"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"favorites": len(s.favorites.List()),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// articlesHandler runs one load and returns ranked articles
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	count := 0 // loader default
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		c, err := strconv.Atoi(countStr)
		if err != nil || c < 1 || c > maxArticlesCount {
			renderError(w, r, fmt.Errorf("count must be between 1 and %d", maxArticlesCount), http.StatusBadRequest)
			return
		}
		count = c
	}

	state := s.loader.Refresh(r.Context(), count)
	if state.Status == feed.StatusFailure {
		log.Printf("[WARN] articles load failed: %v", state.Err)
		renderJSON(w, r, http.StatusBadGateway, map[string]string{"error": state.Message})
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"articles": s.toArticleResponses(state.Articles),
		"count":    len(state.Articles),
	})
}

// currentArticlesHandler returns the last successfully loaded articles
func (s *Server) currentArticlesHandler(w http.ResponseWriter, r *http.Request) {
	articles := s.loader.Current()
	renderJSON(w, r, http.StatusOK, map[string]any{
		"articles": s.toArticleResponses(articles),
		"count":    len(articles),
	})
}

// listFavoritesHandler returns all saved favorites
func (s *Server) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	favs := s.favorites.List()
	res := make([]favoriteResponse, 0, len(favs))
	for _, f := range favs {
		res = append(res, favoriteResponse{Favorite: f, ShareURL: f.ShareURL()})
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"favorites": res, "count": len(res)})
}

// addFavoriteHandler saves an article, existing title is not duplicated
func (s *Server) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		renderError(w, r, fmt.Errorf("invalid article: %w", err), http.StatusBadRequest)
		return
	}

	fav, added, err := s.favorites.Add(r.Context(), article)
	if err != nil {
		if errors.Is(err, favorites.ErrEmptyTitle) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to add favorite %q: %v", article.Title, err)
		renderError(w, r, errors.New("failed to save favorite"), http.StatusInternalServerError)
		return
	}

	code := http.StatusOK
	if added {
		code = http.StatusCreated
		log.Printf("[INFO] added favorite %q", fav.Title)
	}
	renderJSON(w, r, code, favoriteResponse{Favorite: fav, ShareURL: fav.ShareURL()})
}

// deleteFavoriteHandler removes a favorite by id
func (s *Server) deleteFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.favorites.Remove(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to remove favorite %s: %v", id, err)
		renderError(w, r, errors.New("failed to remove favorite"), http.StatusInternalServerError)
		return
	}
	if !found {
		renderError(w, r, fmt.Errorf("favorite %s not found", id), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toArticleResponses(articles []domain.Article) []articleResponse {
	res := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, articleResponse{
			Article:  a,
			Score:    a.QualityScore(),
			ShareURL: a.ShareURL(),
			Favorite: s.favorites.Contains(a.Title),
		})
	}
	return res
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
