package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCDRoundTrip(t *testing.T) {
	in := &Cloud{
		Positions: []float32{0, 0, 0, 1, 2, 3, -1.5, 0.25, 8},
		Colors:    []float32{1, 0, 0, 0, 0.5, 1, 1, 1, 1},
	}
	var buf bytes.Buffer
	require.NoError(t, EncodePCD(&buf, in))

	out, err := DecodePCD(&buf)
	require.NoError(t, err)
	assert.Equal(t, FormatPCD, out.Format)
	assert.True(t, out.HasColors)
	assert.Equal(t, in.Positions, out.Positions)
	assert.InDeltaSlice(t, in.Colors, out.Colors, 0.01)
}

func TestDecodePCDWithoutColor(t *testing.T) {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   2,
			Height:  1,
		},
		Points: 2,
	}
	pp.Data = make([]byte, 2*pp.Stride())
	it, err := pp.Vec3Iterator()
	require.NoError(t, err)
	it.SetVec3(mat.Vec3{1, 2, 3})
	it.Incr()
	it.SetVec3(mat.Vec3{4, 5, 6})

	var buf bytes.Buffer
	require.NoError(t, pc.Marshal(pp, &buf))

	out, err := DecodePCD(&buf)
	require.NoError(t, err)
	assert.False(t, out.HasColors)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, out.Positions)
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1}, out.Colors)
}

func TestDecodePCDError(t *testing.T) {
	_, err := DecodePCD(strings.NewReader("not a pcd"))
	assert.Error(t, err)
}

func TestChannel(t *testing.T) {
	assert.Equal(t, uint32(0), channel(-1))
	assert.Equal(t, uint32(0), channel(0))
	assert.Equal(t, uint32(128), channel(0.5))
	assert.Equal(t, uint32(255), channel(1))
	assert.Equal(t, uint32(255), channel(2))
}
