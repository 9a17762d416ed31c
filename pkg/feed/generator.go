package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/wikifeed/pkg/domain"
)

// Generator creates RSS feeds from saved favorites
type Generator struct {
	baseURL   string
	sanitizer *bluemonday.Policy
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL:   strings.TrimRight(baseURL, "/"),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// GenerateRSS creates an RSS 2.0 feed from favorites, in the given order
func (g *Generator) GenerateRSS(favorites []domain.Favorite) (string, error) {
	rssItems := make([]*RSSItem, 0, len(favorites))
	lastBuild := time.Time{}
	for _, fav := range favorites {
		rssItems = append(rssItems, g.convertToRSSItem(fav))
		if fav.CreatedAt.After(lastBuild) {
			lastBuild = fav.CreatedAt
		}
	}
	if lastBuild.IsZero() {
		lastBuild = time.Now()
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Wikifeed - Favorites",
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Saved Wikipedia articles (%d)", len(favorites)),
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/favorites", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: lastBuild.UTC().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a favorite to an RSS item
func (g *Generator) convertToRSSItem(fav domain.Favorite) *RSSItem {
	res := &RSSItem{
		Title:       fav.Title,
		Link:        fav.ShareURL(),
		GUID:        &RSSGUID{Value: fav.ID},
		Description: g.itemDescription(fav),
	}
	if !fav.CreatedAt.IsZero() {
		res.PubDate = fav.CreatedAt.UTC().Format(time.RFC1123Z)
	}
	if isWebURL(fav.ThumbnailURL) {
		res.Enclosure = &RSSEnclosure{URL: fav.ThumbnailURL, Type: imageType(fav.ThumbnailURL)}
	}
	return res
}

// itemDescription renders the favorite as an HTML fragment. Extract and description are plain text,
// escaped here. The result goes through the sanitizer as saved favorites come from API clients.
func (g *Generator) itemDescription(fav domain.Favorite) string {
	var sb strings.Builder
	if fav.ThumbnailURL != "" {
		fmt.Fprintf(&sb, `<img src="%s" alt="%s">`, html.EscapeString(fav.ThumbnailURL), html.EscapeString(fav.Title))
	}
	if fav.Description != "" {
		fmt.Fprintf(&sb, "<p><i>%s</i></p>", html.EscapeString(fav.Description))
	}
	if fav.Extract != "" {
		fmt.Fprintf(&sb, "<p>%s</p>", html.EscapeString(fav.Extract))
	}
	return g.sanitizer.Sanitize(sb.String())
}

func isWebURL(link string) bool {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// imageType guesses mime type of thumbnail by extension, wikimedia thumbnails are mostly jpeg
func imageType(link string) string {
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(link))); strings.HasPrefix(t, "image/") {
		return t
	}
	return "image/jpeg"
}
