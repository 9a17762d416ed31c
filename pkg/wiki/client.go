package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/wikifeed/pkg/domain"
)

// DefaultAPIURL is the wikipedia host serving both action and REST APIs
const DefaultAPIURL = "https://en.wikipedia.org"

// searchLimit is the number of candidate pages requested per search
const searchLimit = 5

// Client talks to wikipedia search and page summary endpoints
type Client struct {
	apiURL    string
	userAgent string
	client    *http.Client
}

// ClientParams holds parameters for the wiki client
type ClientParams struct {
	APIURL    string        // scheme and host, e.g. https://en.wikipedia.org
	UserAgent string        // sent as User-Agent and Api-User-Agent
	Timeout   time.Duration // http client timeout, zero means no timeout
}

// searchResponse is the subset of action=query&generator=search response we need
type searchResponse struct {
	Query *struct {
		Pages map[string]domain.Page `json:"pages"`
	} `json:"query"`
}

// summaryResponse is the subset of rest_v1 page summary response we need
type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	Description string `json:"description"`
	Thumbnail   *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs *struct {
		Desktop *struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// NewClient makes wiki API client
func NewClient(params ClientParams) *Client {
	apiURL := params.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL:    strings.TrimRight(apiURL, "/"),
		userAgent: params.UserAgent,
		client:    &http.Client{Timeout: params.Timeout},
	}
}

// Search returns up to 5 pages matching the query, ordered by page id.
// Returns ErrNoResults if nothing matched.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Page, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("generator", "search")
	params.Set("gsrsearch", query)
	params.Set("gsrlimit", strconv.Itoa(searchLimit))
	params.Set("prop", "pageimages|extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exsentences", "3")
	params.Set("piprop", "thumbnail")
	params.Set("pithumbsize", "500")

	var resp searchResponse
	if err := c.getJSON(ctx, c.apiURL+"/w/api.php?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if resp.Query == nil || len(resp.Query.Pages) == 0 {
		return nil, fmt.Errorf("search %q: %w", query, ErrNoResults)
	}

	pages := make([]domain.Page, 0, len(resp.Query.Pages))
	for key, p := range resp.Query.Pages {
		if p.Title == "" {
			continue
		}
		if p.ID == 0 {
			// page id is also the map key
			if id, err := strconv.ParseInt(key, 10, 64); err == nil {
				p.ID = id
			}
		}
		pages = append(pages, p)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("search %q: %w", query, ErrNoResults)
	}

	// map order is random, keep it stable so the caller's random source decides alone
	sort.Slice(pages, func(i, j int) bool {
		if pages[i].ID != pages[j].ID {
			return pages[i].ID < pages[j].ID
		}
		return pages[i].Title < pages[j].Title
	})
	return pages, nil
}

// Summary fetches the page summary for the given title
func (c *Client) Summary(ctx context.Context, title string) (domain.Article, error) {
	endpoint := c.apiURL + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	var resp summaryResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return domain.Article{}, fmt.Errorf("summary %q: %w", title, err)
	}

	res := domain.Article{
		Title:       strings.TrimSpace(resp.Title),
		Extract:     strings.TrimSpace(resp.Extract),
		Description: strings.TrimSpace(resp.Description),
	}
	if res.Title == "" {
		return domain.Article{}, fmt.Errorf("summary %q: %w: empty title", title, ErrDecode)
	}
	if resp.Thumbnail != nil {
		res.ThumbnailURL = strings.TrimSpace(resp.Thumbnail.Source)
	}
	if resp.ContentURLs != nil && resp.ContentURLs.Desktop != nil {
		res.PageURL = strings.TrimSpace(resp.ContentURLs.Desktop.Page)
	}
	return res, nil
}

// getJSON makes GET request and decodes json response into res
func (c *Client) getJSON(ctx context.Context, endpoint string, res any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrNetwork, err)
	}
	addRequestHeaders(req, c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status code %d", ErrNetwork, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
