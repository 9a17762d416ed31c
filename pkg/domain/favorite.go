package domain

import (
	"net/url"
	"time"
)

// Favorite represents a user-pinned article, unique by title
type Favorite struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Extract      string    `json:"extract"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShareURL returns wikipedia link for the favorite
func (f Favorite) ShareURL() string {
	return wikiBaseURL + url.PathEscape(f.Title)
}
