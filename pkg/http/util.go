package http

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildURL resolves an endpoint path against a base URL and attaches the
// optional query parameters. The base URL's own path prefix (e.g. "/api/")
// is preserved.
func BuildURL(baseURL, path string, queryParams map[string]string) (string, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}

	// Append the path to the base path
	parsedURL.Path = strings.TrimSuffix(parsedURL.Path, "/") + "/" + strings.TrimPrefix(path, "/")

	// Set query parameters dynamically
	q := url.Values{}
	for key, value := range queryParams {
		q.Set(key, value)
	}
	parsedURL.RawQuery = q.Encode()

	// Return the full URL as a string
	return parsedURL.String(), nil
}
