package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/wikifeed/pkg/domain"
	"github.com/umputun/wikifeed/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/article_loader.go -pkg mocks -skip-ensure -fmt goimports . ArticleLoader
//go:generate moq -out mocks/favorites_manager.go -pkg mocks -skip-ensure -fmt goimports . FavoritesManager

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	loader    ArticleLoader
	favorites FavoritesManager
	generator *feed.Generator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetWriteTimeout() time.Duration
	GetBaseURL() string
}

// ArticleLoader runs article loads and keeps the last successful result
type ArticleLoader interface {
	Refresh(ctx context.Context, count int) feed.State
	Current() []domain.Article
}

// FavoritesManager keeps saved articles
type FavoritesManager interface {
	List() []domain.Favorite
	Contains(title string) bool
	Add(ctx context.Context, article domain.Article) (domain.Favorite, bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, loader ArticleLoader, favorites FavoritesManager, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		loader:    loader,
		favorites: favorites,
		generator: feed.NewGenerator(cfg.GetBaseURL()),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      s.config.GetWriteTimeout(),
		IdleTimeout:       timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("wikifeed", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, favorites payloads are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("GET /articles/current", s.currentArticlesHandler)
		r.HandleFunc("GET /favorites", s.listFavoritesHandler)
		r.HandleFunc("POST /favorites", s.addFavoriteHandler)
		r.HandleFunc("DELETE /favorites/{id}", s.deleteFavoriteHandler)
	})

	s.router.HandleFunc("GET /rss/favorites", s.rssFavoritesHandler)
}
