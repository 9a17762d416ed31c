package feed

import (
	"context"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/wikifeed/pkg/domain"
)

//go:generate moq -out mocks/article_fetcher.go -pkg mocks -skip-ensure -fmt goimports . ArticleFetcher

// FailureMessage is the user facing text for any failed load
const FailureMessage = "Failed to load articles. Please check your internet connection and try again."

// DefaultCount is the number of articles loaded when the caller doesn't ask for a specific count
const DefaultCount = 10

// Status of a load
type Status string

// load statuses
const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// State is published by Loader for each step of a load.
// On failure Articles holds the previous successful list.
type State struct {
	Status   Status
	Articles []domain.Article
	Err      error
	Message  string
}

// ArticleFetcher returns a ranked batch of articles
type ArticleFetcher interface {
	FetchArticles(ctx context.Context, count int) ([]domain.Article, error)
}

// Loader runs article loads and keeps the last successful result
type Loader struct {
	fetcher      ArticleFetcher
	defaultCount int

	mu       sync.RWMutex
	articles []domain.Article
	started  uint64 // generation of the last started refresh
	applied  uint64 // generation whose result is in articles
}

// NewLoader makes loader, defaultCount <= 0 means DefaultCount
func NewLoader(fetcher ArticleFetcher, defaultCount int) *Loader {
	if defaultCount <= 0 {
		defaultCount = DefaultCount
	}
	return &Loader{fetcher: fetcher, defaultCount: defaultCount, articles: []domain.Article{}}
}

// Load starts a load in background. The returned channel gets StatusLoading first,
// then exactly one of StatusSuccess or StatusFailure, and is closed after that.
// The channel is buffered, a caller may stop reading without leaking the goroutine.
func (l *Loader) Load(ctx context.Context, count int) <-chan State {
	ch := make(chan State, 2)
	ch <- State{Status: StatusLoading, Articles: l.Current()}
	go func() {
		defer close(ch)
		ch <- l.Refresh(ctx, count)
	}()
	return ch
}

// Refresh loads articles synchronously and returns the final state.
// Failed load keeps the current articles untouched. With overlapping refreshes the most recently
// started one wins, a result finishing after a newer one was applied is returned but not kept.
func (l *Loader) Refresh(ctx context.Context, count int) State {
	if count <= 0 {
		count = l.defaultCount
	}

	l.mu.Lock()
	l.started++
	gen := l.started
	l.mu.Unlock()

	articles, err := l.fetcher.FetchArticles(ctx, count)
	if err != nil {
		lgr.Printf("[WARN] failed to load %d articles: %v", count, err)
		return State{Status: StatusFailure, Articles: l.Current(), Err: err, Message: FailureMessage}
	}

	l.mu.Lock()
	stale := gen < l.applied
	if !stale {
		l.articles = articles
		l.applied = gen
	}
	l.mu.Unlock()

	if stale {
		lgr.Printf("[DEBUG] loaded %d articles, newer load already applied", len(articles))
		return State{Status: StatusSuccess, Articles: articles}
	}
	lgr.Printf("[INFO] loaded %d articles", len(articles))
	return State{Status: StatusSuccess, Articles: articles}
}

// Current returns a copy of the last successfully loaded articles
func (l *Loader) Current() []domain.Article {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res := make([]domain.Article, len(l.articles))
	copy(res, l.articles)
	return res
}
