package render

import (
	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

const (
	polarEpsilon = 0.000001

	// MouseButtonLeft and the following follow MouseEvent.button numbering.
	MouseButtonLeft   = 0
	MouseButtonMiddle = 1
	MouseButtonRight  = 2
)

type orbitState int

const (
	orbitNone orbitState = iota
	orbitRotate
	orbitDolly
	orbitPan
)

type spherical struct {
	radius, phi, theta float32
}

func sphericalFromVec3(v mat.Vec3) spherical {
	r := v.Norm()
	if r == 0 {
		return spherical{}
	}
	return spherical{
		radius: r,
		theta:  math32.Atan2(v[0], v[2]),
		phi:    math32.Acos(clamp(v[1]/r, -1, 1)),
	}
}

func (s spherical) vec3() mat.Vec3 {
	sinPhi := math32.Sin(s.phi) * s.radius
	return mat.Vec3{
		sinPhi * math32.Sin(s.theta),
		math32.Cos(s.phi) * s.radius,
		sinPhi * math32.Cos(s.theta),
	}
}

// OrbitControls rotates, zooms and pans a camera around Target.
type OrbitControls struct {
	camera *Camera
	Target mat.Vec3

	EnableDamping   bool
	DampingFactor   float32
	AutoRotate      bool
	AutoRotateSpeed float32
	RotateSpeed     float32
	ZoomSpeed       float32
	PanSpeed        float32
	MinDistance     float32
	MaxDistance     float32

	viewportHeight float32

	state          orbitState
	x0, y0         float32
	sphericalDelta spherical
	scale          float32
	panOffset      mat.Vec3
}

func NewOrbitControls(c *Camera) *OrbitControls {
	return &OrbitControls{
		camera:          c,
		DampingFactor:   0.05,
		AutoRotateSpeed: 2,
		RotateSpeed:     1,
		ZoomSpeed:       1,
		PanSpeed:        1,
		MaxDistance:     math32.Inf(1),
		viewportHeight:  1,
		scale:           1,
	}
}

// SetViewportHeight sets the height in pixels that drag distances are relative to.
func (o *OrbitControls) SetViewportHeight(h float32) {
	if h < 1 {
		h = 1
	}
	o.viewportHeight = h
}

// Interacting returns true while a pointer drag is in progress.
func (o *OrbitControls) Interacting() bool {
	return o.state != orbitNone
}

func (o *OrbitControls) rotateLeft(a float32) {
	o.sphericalDelta.theta -= a
}

func (o *OrbitControls) rotateUp(a float32) {
	o.sphericalDelta.phi -= a
}

func (o *OrbitControls) dollyIn(s float32) {
	o.scale *= s
}

func (o *OrbitControls) dollyOut(s float32) {
	o.scale /= s
}

func (o *OrbitControls) zoomScale(steps float32) float32 {
	return math32.Pow(0.95, o.ZoomSpeed*math32.Abs(steps))
}

func (o *OrbitControls) pan(dx, dy float32) {
	offset := o.camera.Position.Sub(o.Target)
	d := offset.Norm() * math32.Tan(o.camera.Fov*math32.Pi/360)
	left := 2 * dx * d / o.viewportHeight
	up := 2 * dy * d / o.viewportHeight
	o.panOffset = o.panOffset.
		Add(o.camera.Right().Mul(-left)).
		Add(o.camera.UpAxis().Mul(up))
}

// PointerDown starts a drag. Left button rotates, middle dollies, right pans.
func (o *OrbitControls) PointerDown(button int, x, y float32) {
	switch button {
	case MouseButtonLeft:
		o.state = orbitRotate
	case MouseButtonMiddle:
		o.state = orbitDolly
	case MouseButtonRight:
		o.state = orbitPan
	default:
		return
	}
	o.x0, o.y0 = x, y
}

func (o *OrbitControls) PointerMove(x, y float32) {
	dx, dy := x-o.x0, y-o.y0
	switch o.state {
	case orbitRotate:
		dx, dy = dx*o.RotateSpeed, dy*o.RotateSpeed
		o.rotateLeft(2 * math32.Pi * dx / o.viewportHeight)
		o.rotateUp(2 * math32.Pi * dy / o.viewportHeight)
	case orbitDolly:
		if dy > 0 {
			o.dollyOut(o.zoomScale(1))
		} else if dy < 0 {
			o.dollyIn(o.zoomScale(1))
		}
	case orbitPan:
		o.pan(dx*o.PanSpeed, dy*o.PanSpeed)
	default:
		return
	}
	o.x0, o.y0 = x, y
}

func (o *OrbitControls) PointerUp() {
	o.state = orbitNone
}

// Wheel zooms by a normalized number of wheel steps. Negative steps move closer.
func (o *OrbitControls) Wheel(steps float32) {
	if steps < 0 {
		o.dollyIn(o.zoomScale(steps))
	} else if steps > 0 {
		o.dollyOut(o.zoomScale(steps))
	}
}

// Pinch zooms by the ratio of the previous and current finger distance.
func (o *OrbitControls) Pinch(ratio float32) {
	if ratio > 0 {
		o.scale *= ratio
	}
}

// Update applies pending input, damping and auto-rotation to the camera.
// It must be called once per frame.
func (o *OrbitControls) Update() {
	align := alignRotation(o.camera.Up, mat.Vec3{0, 1, 0})

	offset := align.apply(o.camera.Position.Sub(o.Target))
	s := sphericalFromVec3(offset)

	if o.AutoRotate && o.state == orbitNone {
		o.rotateLeft(2 * math32.Pi / 60 / 60 * o.AutoRotateSpeed)
	}

	if o.EnableDamping {
		s.theta += o.sphericalDelta.theta * o.DampingFactor
		s.phi += o.sphericalDelta.phi * o.DampingFactor
		o.Target = o.Target.Add(o.panOffset.Mul(o.DampingFactor))
	} else {
		s.theta += o.sphericalDelta.theta
		s.phi += o.sphericalDelta.phi
		o.Target = o.Target.Add(o.panOffset)
	}
	s.phi = clamp(s.phi, polarEpsilon, math32.Pi-polarEpsilon)
	s.radius = clamp(s.radius*o.scale, o.MinDistance, o.MaxDistance)

	offset = align.transpose().apply(s.vec3())
	o.camera.Position = o.Target.Add(offset)
	o.camera.LookAt(o.Target)

	if o.EnableDamping {
		o.sphericalDelta.theta *= 1 - o.DampingFactor
		o.sphericalDelta.phi *= 1 - o.DampingFactor
		o.panOffset = o.panOffset.Mul(1 - o.DampingFactor)
	} else {
		o.sphericalDelta = spherical{}
		o.panOffset = mat.Vec3{}
	}
	o.scale = 1
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

type mat3 [3][3]float32

func (m mat3) apply(v mat.Vec3) mat.Vec3 {
	return mat.Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m mat3) transpose() mat3 {
	var out mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// alignRotation returns the rotation taking unit vector from onto unit vector to.
func alignRotation(from, to mat.Vec3) mat3 {
	from, to = from.Normalized(), to.Normalized()
	c := from.Dot(to)
	if c < -1+1e-6 {
		// Half turn around any axis perpendicular to from.
		var a mat.Vec3
		if math32.Abs(from[0]) > math32.Abs(from[2]) {
			a = mat.Vec3{-from[1], from[0], 0}
		} else {
			a = mat.Vec3{0, -from[2], from[1]}
		}
		a = a.Normalized()
		var m mat3
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				m[i][j] = 2 * a[i] * a[j]
			}
			m[i][i]--
		}
		return m
	}
	v := from.Cross(to)
	k := 1 / (1 + c)
	return mat3{
		{1 - k*(v[1]*v[1]+v[2]*v[2]), -v[2] + k*v[0]*v[1], v[1] + k*v[0]*v[2]},
		{v[2] + k*v[0]*v[1], 1 - k*(v[0]*v[0]+v[2]*v[2]), -v[0] + k*v[1]*v[2]},
		{-v[1] + k*v[0]*v[2], v[0] + k*v[1]*v[2], 1 - k*(v[0]*v[0]+v[1]*v[1])},
	}
}
