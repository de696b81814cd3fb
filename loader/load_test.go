package loader

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	var pcd bytes.Buffer
	require.NoError(t, EncodePCD(&pcd, &Cloud{Positions: []float32{1, 2, 3}}))

	errNetwork := errors.New("network down")

	testCases := map[string]struct {
		url, name string
		data      []byte
		fetchErr  error
		err       error
		fetched   bool
		points    int
	}{
		"ByURL": {
			url:     "examples/a.pcd",
			data:    pcd.Bytes(),
			fetched: true,
			points:  1,
		},
		"ByNameHint": {
			url:     "data:application/octet-stream;base64,xxxx",
			name:    "Local.PCD",
			data:    pcd.Bytes(),
			fetched: true,
			points:  1,
		},
		"Unsupported": {
			url: "examples/a.xyz",
			err: ErrUnsupportedFormat,
		},
		"FetchError": {
			url:      "examples/a.ply",
			fetchErr: errNetwork,
			err:      errNetwork,
			fetched:  true,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			var fetched bool
			f := FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
				fetched = true
				assert.Equal(t, tt.url, url)
				return tt.data, tt.fetchErr
			})
			c, err := Load(context.Background(), f, tt.url, tt.name)
			assert.Equal(t, tt.fetched, fetched)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.points, c.Len())
		})
	}
}
