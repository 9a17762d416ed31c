package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/wikifeed/pkg/feed"
)

//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher

// Scheduler keeps current articles fresh by reloading them periodically
type Scheduler struct {
	refresher       Refresher
	refreshInterval time.Duration
	count           int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Refresher loads a batch of articles
type Refresher interface {
	Refresh(ctx context.Context, count int) feed.State
}

// Params for scheduler
type Params struct {
	Refresher       Refresher
	RefreshInterval time.Duration // zero means a single load on start
	Count           int           // articles per load, zero for loader default
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	return &Scheduler{
		refresher:       params.Refresher,
		refreshInterval: params.RefreshInterval,
		count:           params.Count,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	if s.refreshInterval > 0 {
		lgr.Printf("[INFO] scheduler started with refresh interval %v", s.refreshInterval)
		return
	}
	lgr.Printf("[INFO] scheduler started, periodic refresh disabled")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// refreshWorker loads articles on start and then on every tick
func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	// run immediately on start
	s.refresh(ctx)

	if s.refreshInterval <= 0 {
		return
	}

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	st := s.refresher.Refresh(ctx, s.count)
	if st.Status != feed.StatusSuccess {
		if ctx.Err() == nil {
			lgr.Printf("[WARN] scheduled refresh failed, keeping %d articles", len(st.Articles))
		}
		return
	}
	lgr.Printf("[DEBUG] scheduled refresh loaded %d articles", len(st.Articles))
}
