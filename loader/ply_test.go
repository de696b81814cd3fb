package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiPLY = `ply
format ascii 1.0
element vertex 2
property float x
property float y
property float z
end_header
0 0 0
1 2 3
`

func TestDecodePLY(t *testing.T) {
	c, err := DecodePLY(strings.NewReader(asciiPLY))
	require.NoError(t, err)
	assert.Equal(t, FormatPLY, c.Format)
	assert.Equal(t, 2, c.Len())
	assert.InDeltaSlice(t, []float32{0, 0, 0, 1, 2, 3}, c.Positions, 1e-6)
	assert.False(t, c.HasColors)
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1}, c.Colors)
}

func TestPLYRoundTrip(t *testing.T) {
	in := &Cloud{
		Positions: []float32{0.5, -1, 2, 3, 4, 5},
		Colors:    []float32{1, 0.5, 0.25, 0, 0, 1},
	}
	var buf bytes.Buffer
	require.NoError(t, EncodePLY(&buf, in))

	out, err := DecodePLY(&buf)
	require.NoError(t, err)
	assert.InDeltaSlice(t, in.Positions, out.Positions, 1e-5)
	require.True(t, out.HasColors)
	assert.InDeltaSlice(t, in.Colors, out.Colors, 0.01)
}

func TestDecodePLYError(t *testing.T) {
	_, err := DecodePLY(strings.NewReader("solid cube\nendsolid\n"))
	assert.Error(t, err)
}
