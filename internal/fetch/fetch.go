// Package fetch retrieves remote resources as byte slices in the browser
// and on the host.
package fetch

import (
	"context"
	"fmt"
)

// StatusError is returned for responses with a non-2xx status.
type StatusError struct {
	URL        string
	Status     int
	StatusText string
}

func (e *StatusError) Error() string {
	if e.StatusText == "" {
		return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("failed to fetch %s: %d %s", e.URL, e.Status, e.StatusText)
}

// Client fetches resources. The zero value sends credentials to same-origin
// URLs only.
type Client struct {
	// IncludeCredentials sends cookies with cross-origin requests.
	IncludeCredentials bool
}

// Fetch implements loader.Fetcher.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}
