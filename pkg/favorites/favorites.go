// Package favorites keeps the user's saved articles. The whole list is loaded once
// and written back as a single JSON blob after every change.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/wikifeed/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// StorageKey is the blob key holding the serialized favorites list
const StorageKey = "SavedFavorites"

// ErrEmptyTitle returned when adding an article without title
var ErrEmptyTitle = errors.New("empty title")

// Store keeps string blobs by key
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Manager holds favorites in memory and persists them to the Store.
// Titles are unique, adding an article with a known title does nothing.
type Manager struct {
	store Store
	now   func() time.Time
	newID func() string

	mu        sync.RWMutex
	favorites []domain.Favorite
}

// NewManager makes favorites manager, call Load to read saved favorites
func NewManager(store Store) *Manager {
	return &Manager{
		store:     store,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
		favorites: []domain.Favorite{},
	}
}

// Load reads saved favorites, replacing anything in memory
func (m *Manager) Load(ctx context.Context) error {
	data, err := m.store.GetSetting(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}

	favorites := []domain.Favorite{}
	if strings.TrimSpace(data) != "" {
		if err := json.Unmarshal([]byte(data), &favorites); err != nil {
			return fmt.Errorf("decode favorites: %w", err)
		}
	}

	m.mu.Lock()
	m.favorites = favorites
	m.mu.Unlock()

	lgr.Printf("[INFO] loaded %d favorites", len(favorites))
	return nil
}

// Add saves article as a favorite. Returns the stored favorite and true if it was added,
// or the existing one and false if a favorite with the same title is already saved.
func (m *Manager) Add(ctx context.Context, article domain.Article) (domain.Favorite, bool, error) {
	if strings.TrimSpace(article.Title) == "" {
		return domain.Favorite{}, false, ErrEmptyTitle
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if idx := m.indexByTitle(article.Title); idx >= 0 {
		return m.favorites[idx], false, nil
	}

	fav := article.AsFavorite()
	fav.ID = m.newID()
	fav.CreatedAt = m.now().UTC()

	prev := m.favorites
	m.favorites = append(slices.Clip(m.favorites), fav)
	if err := m.save(ctx); err != nil {
		m.favorites = prev
		return domain.Favorite{}, false, err
	}

	lgr.Printf("[DEBUG] added favorite %q", fav.Title)
	return fav, true, nil
}

// Remove deletes favorite by id and persists the list. Returns false if id is unknown.
func (m *Manager) Remove(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.favorites
	m.favorites = slices.DeleteFunc(slices.Clone(m.favorites), func(f domain.Favorite) bool { return f.ID == id })
	found := len(m.favorites) != len(prev)

	if err := m.save(ctx); err != nil {
		m.favorites = prev
		return false, err
	}

	if found {
		lgr.Printf("[DEBUG] removed favorite %s", id)
	}
	return found, nil
}

// List returns a copy of favorites in the order they were added
func (m *Manager) List() []domain.Favorite {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.favorites)
}

// Contains checks if a favorite with the given title exists
func (m *Manager) Contains(title string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexByTitle(title) >= 0
}

// indexByTitle returns index of favorite with title or -1, must be called under lock
func (m *Manager) indexByTitle(title string) int {
	return slices.IndexFunc(m.favorites, func(f domain.Favorite) bool { return f.Title == title })
}

// save writes the full list to the store, must be called under lock
func (m *Manager) save(ctx context.Context) error {
	data, err := json.Marshal(m.favorites)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := m.store.SetSetting(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
