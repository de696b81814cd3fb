package render

import (
	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

// Camera is a perspective camera. Fov is the vertical field of view in degrees.
type Camera struct {
	Fov, Aspect, Near, Far float32

	Position mat.Vec3
	Up       mat.Vec3

	right, up, back mat.Vec3
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mat.Vec3{0, 1, 0},
		right:  mat.Vec3{1, 0, 0},
		up:     mat.Vec3{0, 1, 0},
		back:   mat.Vec3{0, 0, 1},
	}
}

// LookAt orients the camera toward target, keeping Up as the vertical hint.
func (c *Camera) LookAt(target mat.Vec3) {
	z := c.Position.Sub(target)
	if z.NormSq() == 0 {
		z[2] = 1
	}
	z = z.Normalized()
	x := c.Up.Cross(z)
	if x.NormSq() == 0 {
		if math32.Abs(c.Up[2]) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalized()
		x = c.Up.Cross(z)
	}
	x = x.Normalized()
	c.right, c.up, c.back = x, z.Cross(x), z
}

// Right returns the camera x axis in world coordinates.
func (c *Camera) Right() mat.Vec3 { return c.right }

// UpAxis returns the camera y axis in world coordinates.
func (c *Camera) UpAxis() mat.Vec3 { return c.up }

// ViewMatrix returns the world to camera transform.
func (c *Camera) ViewMatrix() mat.Mat4 {
	x, y, z := c.right, c.up, c.back
	return mat.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(c.Position), -y.Dot(c.Position), -z.Dot(c.Position), 1,
	}
}

// ProjectionMatrix returns the OpenGL style perspective projection.
func (c *Camera) ProjectionMatrix() mat.Mat4 {
	f := 1 / math32.Tan(c.Fov*math32.Pi/360)
	nf := 1 / (c.Near - c.Far)
	return mat.Mat4{
		f / c.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (c.Far + c.Near) * nf, -1,
		0, 0, 2 * c.Far * c.Near * nf, 0,
	}
}
