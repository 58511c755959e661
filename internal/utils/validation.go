package utils

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParseIntParam reads an integer query parameter, applying a default when the
// parameter is absent and enforcing a [1, max] range.
func ParseIntParam(r *http.Request, name string, defaultValue, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if value < 1 {
		return 0, fmt.Errorf("%s must be at least 1", name)
	}
	if value > max {
		return 0, fmt.Errorf("%s must be at most %d", name, max)
	}
	return value, nil
}

// ParseID parses a numeric row ID from a path parameter value
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return id, nil
}
