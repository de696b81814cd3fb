package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Fetcher retrieves the bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// Decode reads a cloud of the given format.
func Decode(f Format, r io.Reader) (*Cloud, error) {
	switch f {
	case FormatPCD:
		return DecodePCD(r)
	case FormatPLY:
		return DecodePLY(r)
	}
	return nil, ErrUnsupportedFormat
}

// Load fetches and decodes a cloud. The format is detected from name, or
// from url when name is empty. Detection happens before fetching.
func Load(ctx context.Context, fetcher Fetcher, url, name string) (*Cloud, error) {
	if name == "" {
		name = url
	}
	f, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}
	b, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	c, err := Decode(f, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	slog.Debug("point cloud loaded", "name", name, "format", f, "points", c.Len())
	return c, nil
}
