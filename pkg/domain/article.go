package domain

import (
	"net/url"
	"unicode/utf8"
)

// wikiBaseURL is used to build share links for articles
const wikiBaseURL = "https://en.wikipedia.org/wiki/"

// Article represents a fetched Wikipedia page summary
type Article struct {
	Title        string `json:"title"`
	Extract      string `json:"extract"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	PageURL      string `json:"page_url,omitempty"`
}

// QualityScore rates the article from 0 to 100 by thumbnail presence, extract length,
// description presence and title length. Lengths are counted in runes.
func (a Article) QualityScore() float64 {
	score := 0.0

	if a.ThumbnailURL != "" {
		score += 30
	}

	switch extractLen := utf8.RuneCountInString(a.Extract); {
	case extractLen > 400:
		score += 40
	case extractLen > 200:
		score += 25
	case extractLen > 100:
		score += 10
	}

	if a.Description != "" {
		score += 15
	}

	switch titleLen := utf8.RuneCountInString(a.Title); {
	case titleLen > 30:
		score += 15
	case titleLen > 15:
		score += 10
	}

	return score
}

// ExtractLen returns extract length in runes
func (a Article) ExtractLen() int {
	return utf8.RuneCountInString(a.Extract)
}

// ShareURL returns a link suitable for sharing, canonical page URL if known
func (a Article) ShareURL() string {
	if a.PageURL != "" {
		return a.PageURL
	}
	return wikiBaseURL + url.PathEscape(a.Title)
}

// AsFavorite converts article to a favorite without ID, the caller assigns it
func (a Article) AsFavorite() Favorite {
	return Favorite{
		Title:        a.Title,
		Extract:      a.Extract,
		ThumbnailURL: a.ThumbnailURL,
	}
}

// Page is a single search hit returned by the wiki search endpoint
type Page struct {
	ID    int64  `json:"pageid"`
	Title string `json:"title"`
}
