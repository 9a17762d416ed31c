package wiki

import "errors"

var (
	// ErrNetwork is returned for transport failures and non-2xx responses
	ErrNetwork = errors.New("network error")
	// ErrDecode is returned when a response body doesn't match the expected shape
	ErrDecode = errors.New("decode error")
	// ErrNoResults is returned when search yields no candidate pages
	ErrNoResults = errors.New("no search results")
	// ErrBatchFailed wraps the first chain failure of a batch, partial results are never returned
	ErrBatchFailed = errors.New("article batch failed")
)
