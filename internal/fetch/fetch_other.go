//go:build !js

package fetch

import (
	"context"
	"io"
	"net/http"
)

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{
			URL:        url,
			Status:     res.StatusCode,
			StatusText: http.StatusText(res.StatusCode),
		}
	}
	return io.ReadAll(res.Body)
}
