package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
)

func newTestControls(up mat.Vec3) (*Camera, *OrbitControls) {
	c := NewPerspectiveCamera(75, 1, 0.1, 1000)
	c.Up = up
	c.Position = mat.Vec3{0, 0, 3}
	c.LookAt(mat.Vec3{})
	o := NewOrbitControls(c)
	o.SetViewportHeight(100)
	return c, o
}

func TestOrbitControlsIdle(t *testing.T) {
	for name, up := range map[string]mat.Vec3{
		"YUp":   {0, 1, 0},
		"YDown": {0, -1, 0},
		"ZUp":   {0, 0, 1},
	} {
		up := up
		t.Run(name, func(t *testing.T) {
			c, o := newTestControls(up)
			o.Update()
			if diff := cmp.Diff([3]float32{0, 0, 3}, [3]float32(c.Position), approx); diff != "" {
				t.Errorf("Position moved without input (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrbitControlsAutoRotate(t *testing.T) {
	c, o := newTestControls(mat.Vec3{0, -1, 0})
	o.AutoRotate = true
	o.AutoRotateSpeed = -1
	o.Update()

	a := 2 * math32.Pi / 3600
	expected := [3]float32{-3 * math32.Sin(a), 0, 3 * math32.Cos(a)}
	if diff := cmp.Diff(expected, [3]float32(c.Position), approx); diff != "" {
		t.Errorf("Position differs (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 3, c.Position.Norm(), 1e-4)
}

func TestOrbitControlsAutoRotatePausedWhileDragging(t *testing.T) {
	c, o := newTestControls(mat.Vec3{0, 1, 0})
	o.AutoRotate = true
	o.PointerDown(MouseButtonLeft, 10, 10)
	o.Update()
	assert.True(t, o.Interacting())
	if diff := cmp.Diff([3]float32{0, 0, 3}, [3]float32(c.Position), approx); diff != "" {
		t.Errorf("Position differs (-want +got):\n%s", diff)
	}
	o.PointerUp()
	assert.False(t, o.Interacting())
}

func TestOrbitControlsRotate(t *testing.T) {
	t.Run("Immediate", func(t *testing.T) {
		c, o := newTestControls(mat.Vec3{0, 1, 0})
		o.PointerDown(MouseButtonLeft, 0, 0)
		o.PointerMove(25, 0)
		o.PointerUp()
		o.Update()
		if diff := cmp.Diff([3]float32{-3, 0, 0}, [3]float32(c.Position), approx); diff != "" {
			t.Errorf("Position differs (-want +got):\n%s", diff)
		}
	})
	t.Run("Damped", func(t *testing.T) {
		c, o := newTestControls(mat.Vec3{0, 1, 0})
		o.EnableDamping = true
		o.DampingFactor = 0.5
		o.PointerDown(MouseButtonLeft, 0, 0)
		o.PointerMove(25, 0)
		o.PointerUp()

		o.Update()
		assert.Greater(t, c.Position[2], float32(0), "damped rotation must not finish in one frame")

		for i := 0; i < 60; i++ {
			o.Update()
		}
		if diff := cmp.Diff([3]float32{-3, 0, 0}, [3]float32(c.Position), approx); diff != "" {
			t.Errorf("Position differs (-want +got):\n%s", diff)
		}
	})
	t.Run("PolarClamp", func(t *testing.T) {
		c, o := newTestControls(mat.Vec3{0, 1, 0})
		o.PointerDown(MouseButtonLeft, 0, 0)
		o.PointerMove(0, 1000)
		o.Update()
		assert.InDelta(t, 3, c.Position[1], 1e-3)
		assert.InDelta(t, 3, c.Position.Norm(), 1e-4)
	})
}

func TestOrbitControlsZoom(t *testing.T) {
	testCases := map[string]struct {
		steps    []float32
		min, max float32
		expected float32
	}{
		"In": {
			steps:    []float32{-1},
			expected: 3 * 0.95,
		},
		"Out": {
			steps:    []float32{1},
			expected: 3 / 0.95,
		},
		"InTwoSteps": {
			steps:    []float32{-2},
			expected: 3 * 0.95 * 0.95,
		},
		"MinDistance": {
			steps:    []float32{-100},
			min:      1,
			expected: 1,
		},
		"MaxDistance": {
			steps:    []float32{100},
			max:      4,
			expected: 4,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, o := newTestControls(mat.Vec3{0, -1, 0})
			o.MinDistance = tt.min
			if tt.max > 0 {
				o.MaxDistance = tt.max
			}
			for _, s := range tt.steps {
				o.Wheel(s)
			}
			o.Update()
			assert.InDelta(t, tt.expected, c.Position.Norm(), 1e-4)
		})
	}
}

func TestOrbitControlsPinch(t *testing.T) {
	c, o := newTestControls(mat.Vec3{0, 1, 0})
	o.Pinch(0.5)
	o.Update()
	assert.InDelta(t, 1.5, c.Position.Norm(), 1e-4)
}

func TestOrbitControlsPan(t *testing.T) {
	c, o := newTestControls(mat.Vec3{0, 1, 0})
	o.PointerDown(MouseButtonRight, 0, 0)
	o.PointerMove(10, 0)
	o.PointerUp()
	o.Update()

	d := 2 * 10 * 3 * math32.Tan(75*math32.Pi/360) / 100
	if diff := cmp.Diff([3]float32{-d, 0, 0}, [3]float32(o.Target), approx); diff != "" {
		t.Errorf("Target differs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([3]float32{-d, 0, 3}, [3]float32(c.Position), approx); diff != "" {
		t.Errorf("Position differs (-want +got):\n%s", diff)
	}
}

func TestAlignRotation(t *testing.T) {
	for name, from := range map[string]mat.Vec3{
		"Same":     {0, 1, 0},
		"Opposite": {0, -1, 0},
		"ZUp":      {0, 0, 1},
		"Diagonal": {1, 1, 1},
	} {
		from := from
		t.Run(name, func(t *testing.T) {
			r := alignRotation(from, mat.Vec3{0, 1, 0})
			got := r.apply(from.Normalized())
			if diff := cmp.Diff([3]float32{0, 1, 0}, [3]float32(got), approx); diff != "" {
				t.Errorf("Rotated vector differs (-want +got):\n%s", diff)
			}
			back := r.transpose().apply(got)
			if diff := cmp.Diff([3]float32(from.Normalized()), [3]float32(back), approx); diff != "" {
				t.Errorf("Inverse rotation differs (-want +got):\n%s", diff)
			}
		})
	}
}
