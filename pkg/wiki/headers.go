package wiki

import (
	"net/http"
)

// defaultUserAgent is used when no user agent configured, wikimedia rejects anonymous clients
const defaultUserAgent = "wikifeed/1.0 (https://github.com/umputun/wikifeed)"

// addRequestHeaders sets headers expected by wikimedia APIs
func addRequestHeaders(req *http.Request, userAgent string) {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	// browsers can't override User-Agent, so wikimedia also accepts Api-User-Agent
	req.Header.Set("Api-User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}
