package cloud

import (
	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

type box struct {
	min, max mat.Vec3
}

func emptyBox() box {
	return box{
		min: mat.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		max: mat.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

func (b *box) IsValid() bool {
	return !(b.min[0] > b.max[0] ||
		b.min[1] > b.max[1] ||
		b.min[2] > b.max[2])
}

func (b *box) extend(v mat.Vec3) {
	for i := range v {
		b.min[i] = math32.Min(b.min[i], v[i])
		b.max[i] = math32.Max(b.max[i], v[i])
	}
}

func (b *box) center() mat.Vec3 {
	return b.min.Add(b.max).Mul(0.5)
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center mat.Vec3
	Radius float32
}

// BoundingSphere returns the sphere centered on the axis-aligned bounds of
// the flat xyz positions, with the radius reaching the farthest point.
// Empty input gives a zero sphere.
func BoundingSphere(positions []float32) Sphere {
	b := emptyBox()
	for i := 0; i+2 < len(positions); i += 3 {
		b.extend(mat.Vec3{positions[i], positions[i+1], positions[i+2]})
	}
	if !b.IsValid() {
		return Sphere{}
	}
	c := b.center()
	var maxSq float32
	for i := 0; i+2 < len(positions); i += 3 {
		d := mat.Vec3{positions[i], positions[i+1], positions[i+2]}.Sub(c)
		maxSq = math32.Max(maxSq, d.NormSq())
	}
	return Sphere{Center: c, Radius: math32.Sqrt(maxSq)}
}
