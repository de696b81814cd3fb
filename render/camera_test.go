package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/seqsense/pcgol/mat"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func transform(m mat.Mat4, v [4]float32) [4]float32 {
	var out [4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r] += m[c*4+r] * v[c]
		}
	}
	return out
}

func TestCameraLookAt(t *testing.T) {
	testCases := map[string]struct {
		up, position  mat.Vec3
		right, upAxis mat.Vec3
	}{
		"YUp": {
			up:       mat.Vec3{0, 1, 0},
			position: mat.Vec3{0, 0, 3},
			right:    mat.Vec3{1, 0, 0},
			upAxis:   mat.Vec3{0, 1, 0},
		},
		"YDown": {
			up:       mat.Vec3{0, -1, 0},
			position: mat.Vec3{0, 0, 3},
			right:    mat.Vec3{-1, 0, 0},
			upAxis:   mat.Vec3{0, -1, 0},
		},
		"FromSide": {
			up:       mat.Vec3{0, 1, 0},
			position: mat.Vec3{5, 0, 0},
			right:    mat.Vec3{0, 0, -1},
			upAxis:   mat.Vec3{0, 1, 0},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := NewPerspectiveCamera(75, 1, 0.1, 1000)
			c.Up = tt.up
			c.Position = tt.position
			c.LookAt(mat.Vec3{})

			if diff := cmp.Diff([3]float32(tt.right), [3]float32(c.Right()), approx); diff != "" {
				t.Errorf("Right axis differs (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([3]float32(tt.upAxis), [3]float32(c.UpAxis()), approx); diff != "" {
				t.Errorf("Up axis differs (-want +got):\n%s", diff)
			}

			// Target must be straight ahead.
			v := transform(c.ViewMatrix(), [4]float32{0, 0, 0, 1})
			d := tt.position.Norm()
			if diff := cmp.Diff([4]float32{0, 0, -d, 1}, v, approx); diff != "" {
				t.Errorf("View transform differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCameraLookAtParallelUp(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 1000)
	c.Position = mat.Vec3{0, 4, 0}
	c.LookAt(mat.Vec3{})

	if n := c.Right().Norm(); n < 0.999 || 1.001 < n {
		t.Errorf("Right axis must be normalized, got %v", c.Right())
	}
}

func TestCameraProjection(t *testing.T) {
	c := NewPerspectiveCamera(90, 2, 0.1, 100)
	p := c.ProjectionMatrix()

	near := transform(p, [4]float32{0, 0, -0.1, 1})
	if diff := cmp.Diff(float32(-1), near[2]/near[3], approx); diff != "" {
		t.Errorf("Near plane depth differs (-want +got):\n%s", diff)
	}
	far := transform(p, [4]float32{0, 0, -100, 1})
	if diff := cmp.Diff(float32(1), far[2]/far[3], approx); diff != "" {
		t.Errorf("Far plane depth differs (-want +got):\n%s", diff)
	}

	// 90 degrees vertical fov maps y=z to the top edge, aspect halves x.
	edge := transform(p, [4]float32{1, 1, -1, 1})
	if diff := cmp.Diff([2]float32{0.5, 1}, [2]float32{edge[0] / edge[3], edge[1] / edge[3]}, approx); diff != "" {
		t.Errorf("Edge projection differs (-want +got):\n%s", diff)
	}
}
