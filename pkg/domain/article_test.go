package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticle_QualityScore(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		want    float64
	}{
		{name: "empty", article: Article{Title: "A"}, want: 0},
		{
			name: "full house",
			article: Article{Title: strings.Repeat("t", 31), Extract: strings.Repeat("e", 401),
				Description: "desc", ThumbnailURL: "https://example.com/a.jpg"},
			want: 100,
		},
		{
			name:    "thumbnail long extract description short title",
			article: Article{Title: strings.Repeat("t", 10), Extract: strings.Repeat("e", 500), Description: "d", ThumbnailURL: "x"},
			want:    85,
		},
		{name: "short extract no extras", article: Article{Title: "abcde", Extract: strings.Repeat("e", 150)}, want: 10},
		{name: "extract exactly 100", article: Article{Title: "a", Extract: strings.Repeat("e", 100)}, want: 0},
		{name: "extract exactly 200", article: Article{Title: "a", Extract: strings.Repeat("e", 200)}, want: 10},
		{name: "extract 201", article: Article{Title: "a", Extract: strings.Repeat("e", 201)}, want: 25},
		{name: "extract exactly 400", article: Article{Title: "a", Extract: strings.Repeat("e", 400)}, want: 25},
		{name: "title exactly 15", article: Article{Title: strings.Repeat("t", 15)}, want: 0},
		{name: "title 16", article: Article{Title: strings.Repeat("t", 16)}, want: 10},
		{name: "title exactly 30", article: Article{Title: strings.Repeat("t", 30)}, want: 10},
		{name: "multibyte counted as runes", article: Article{Title: strings.Repeat("ж", 16)}, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.article.QualityScore()
			assert.InDelta(t, tt.want, got, 0.0001)
			assert.InDelta(t, got, tt.article.QualityScore(), 0.0001, "score must be stable")
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestArticle_ShareURL(t *testing.T) {
	t.Run("built from title", func(t *testing.T) {
		a := Article{Title: "Mount Everest"}
		assert.Equal(t, "https://en.wikipedia.org/wiki/Mount%20Everest", a.ShareURL())
	})

	t.Run("page url preferred", func(t *testing.T) {
		a := Article{Title: "Mount Everest", PageURL: "https://en.wikipedia.org/wiki/Mount_Everest"}
		assert.Equal(t, "https://en.wikipedia.org/wiki/Mount_Everest", a.ShareURL())
	})

	t.Run("favorite", func(t *testing.T) {
		f := Favorite{Title: "AC/DC"}
		assert.Equal(t, "https://en.wikipedia.org/wiki/AC%2FDC", f.ShareURL())
	})
}

func TestArticle_AsFavorite(t *testing.T) {
	a := Article{Title: "Rome", Extract: "city", Description: "capital", ThumbnailURL: "https://example.com/rome.jpg"}
	f := a.AsFavorite()
	assert.Equal(t, Favorite{Title: "Rome", Extract: "city", ThumbnailURL: "https://example.com/rome.jpg"}, f)
	assert.Equal(t, 4, a.ExtractLen())
}
