package cloud

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected *Document
	}{
		"PointsOnly": {
			input: `{"points":[[1,2,3],[4,5,6]]}`,
			expected: &Document{
				Points: []Tuple{{1, 2, 3}, {4, 5, 6}},
			},
		},
		"NonNumericCoerced": {
			input: `{"points":[[1,"a",null],[true],{"x":1}]}`,
			expected: &Document{
				Points: []Tuple{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			},
		},
		"NullColorEntry": {
			input: `{"points":[[1,2,3],[4,5,6]],"colors":[null,[0,255,0]]}`,
			expected: &Document{
				Points: []Tuple{{1, 2, 3}, {4, 5, 6}},
				Colors: []*Tuple{nil, {0, 255, 0}},
			},
		},
		"Poses": {
			input: `{"points":[],"camera_poses":[[[1,0,0,1],[0,1,0,2],[0,0,1,3],[0,0,0,1]]]}`,
			expected: &Document{
				Points: []Tuple{},
				CameraPoses: []Pose{
					{{1, 0, 0, 1}, {0, 1, 0, 2}, {0, 0, 1, 3}, {0, 0, 0, 1}},
				},
			},
		},
		"Empty": {
			input:    `{}`,
			expected: &Document{},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			doc, err := ParseDocument(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc)
		})
	}
}

func TestParseDocument_Error(t *testing.T) {
	testCases := map[string]string{
		"Malformed":      `{"points":[[1,2,3]`,
		"PointsNotArray": `{"points":"abc"}`,
		"BadPoses":       `{"points":[],"camera_poses":"x"}`,
		"NotJSON":        `<html></html>`,
	}
	for name, input := range testCases {
		input := input
		t.Run(name, func(t *testing.T) {
			_, err := ParseDocument(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestWriteDocument_RoundTrip(t *testing.T) {
	doc := &Document{
		Points:      []Tuple{{1, 2, 3}},
		Colors:      []*Tuple{{255, 128, 0}},
		CameraPoses: []Pose{{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, doc))

	out, err := ParseDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, out)
}

func TestPose_Mat4(t *testing.T) {
	p := Pose{
		{1, 0, 0, 10},
		{0, 1, 0, 20},
		{0, 0, 1, 30},
		{0, 0, 0, 1},
	}
	m := p.Mat4()
	assert.Equal(t, float32(10), m[12])
	assert.Equal(t, float32(20), m[13])
	assert.Equal(t, float32(30), m[14])

	v := m.TransformAffine(mat.Vec3{1, 1, 1})
	assert.Equal(t, mat.Vec3{11, 21, 31}, v)
}
