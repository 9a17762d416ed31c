package server

import (
	"log"
	"net/http"
)

// rssFavoritesHandler serves saved favorites as RSS feed
func (s *Server) rssFavoritesHandler(w http.ResponseWriter, _ *http.Request) {
	rss, err := s.generator.GenerateRSS(s.favorites.List())
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
