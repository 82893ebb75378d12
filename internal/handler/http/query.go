package http

import (
	"net/http"
	"strconv"
)

// queryInt reads an integer query parameter, zero when absent or malformed.
// Filters treat zero as "apply the default".
func queryInt(r *http.Request, key string) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// queryStringPtr reads a string query parameter, nil when absent.
func queryStringPtr(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}
