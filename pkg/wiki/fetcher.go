package wiki

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/wikifeed/pkg/domain"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API

const (
	overFetchFactor = 3    // candidates fetched per requested article
	minExtractLen   = 100  // extract must be longer than this, in runes
	minQualityScore = 30.0 // score must be above this
)

// API is the wiki endpoints used by Fetcher
type API interface {
	Search(ctx context.Context, query string) ([]domain.Page, error)
	Summary(ctx context.Context, title string) (domain.Article, error)
}

// Fetcher builds a batch of interesting articles. It over-fetches random search
// hits concurrently, drops low quality ones and returns the best by QualityScore.
// Fetcher has no state between calls and is safe for concurrent use.
type Fetcher struct {
	api     API
	random  Random
	queries []string
}

// FetcherParams holds parameters for the fetcher
type FetcherParams struct {
	API     API
	Random  Random   // optional, process-wide random by default
	Queries []string // optional, DefaultQueries if empty
}

// NewFetcher makes article fetcher
func NewFetcher(params FetcherParams) *Fetcher {
	res := &Fetcher{api: params.API, random: params.Random, queries: params.Queries}
	if res.random == nil {
		res.random = globalRandom{}
	}
	if len(res.queries) == 0 {
		res.queries = DefaultQueries
	}
	return res
}

// FetchArticles returns up to count articles ranked by quality score.
// It issues count*3 search+summary chains at once with no concurrency limit and waits
// for all of them. Any failed chain fails the whole batch with ErrBatchFailed, nothing
// partial is returned. If fewer than count candidates pass the quality filter, fewer are returned.
func (f *Fetcher) FetchArticles(ctx context.Context, count int) ([]domain.Article, error) {
	if count <= 0 {
		return []domain.Article{}, nil
	}

	total := count * overFetchFactor
	candidates := make([]domain.Article, total) // indexed by chain, keeps arrival order deterministic

	g, gctx := errgroup.WithContext(ctx)
	for i := range total {
		g.Go(func() error {
			article, err := f.fetchRandomArticle(gctx)
			if err != nil {
				return err
			}
			candidates[i] = article
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lgr.Printf("[WARN] article batch of %d failed: %v", total, err)
		return nil, fmt.Errorf("%w: %w", ErrBatchFailed, err)
	}

	res := Rank(candidates, count)
	lgr.Printf("[DEBUG] fetched %d candidates, returning %d", total, len(res))
	return res, nil
}

// fetchRandomArticle runs one chain: random query, random search hit, its summary
func (f *Fetcher) fetchRandomArticle(ctx context.Context) (domain.Article, error) {
	query := f.queries[f.random.IntN(len(f.queries))]

	pages, err := f.api.Search(ctx, query)
	if err != nil {
		return domain.Article{}, err
	}
	if len(pages) == 0 {
		return domain.Article{}, fmt.Errorf("search %q: %w", query, ErrNoResults)
	}

	page := pages[f.random.IntN(len(pages))]
	lgr.Printf("[DEBUG] query %q picked %q out of %d", query, page.Title, len(pages))

	article, err := f.api.Summary(ctx, page.Title)
	if err != nil {
		return domain.Article{}, err
	}
	return article, nil
}

// Rank keeps articles with extract longer than 100 runes and quality score above 30,
// sorts them by score descending keeping the original order on ties and truncates to limit.
func Rank(articles []domain.Article, limit int) []domain.Article {
	type scored struct {
		article domain.Article
		score   float64
	}

	filtered := make([]scored, 0, len(articles))
	for _, a := range articles {
		if a.ExtractLen() <= minExtractLen {
			continue
		}
		score := a.QualityScore()
		if score <= minQualityScore {
			continue
		}
		filtered = append(filtered, scored{article: a, score: score})
	}

	slices.SortStableFunc(filtered, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	if limit < 0 {
		limit = 0
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	res := make([]domain.Article, len(filtered))
	for i, s := range filtered {
		res[i] = s.article
	}
	return res
}
