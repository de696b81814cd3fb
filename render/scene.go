package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ViewerPointScale is the pixel scale of point sprites drawn by the
// embeddable viewer. Sprite size in pixels is Size*Scale/depth.
const ViewerPointScale = 300

// PointsMaterial controls how a point cloud is drawn.
type PointsMaterial struct {
	Size        float32
	Opacity     float32
	Transparent bool
	// Round discards fragments outside the inscribed circle of the sprite.
	Round bool
	// Scale is the sprite scale in pixels. Zero means half of the viewport
	// height.
	Scale float32
}

// Points is a colored point cloud.
type Points struct {
	Material PointsMaterial

	positions []float32
	colors    []float32
	version   uint64
}

func NewPoints(positions, colors []float32, m PointsMaterial) *Points {
	p := &Points{Material: m}
	p.SetGeometry(positions, colors)
	return p
}

// SetGeometry replaces positions and colors. Both are flat xyz/rgb arrays
// of the same length.
func (p *Points) SetGeometry(positions, colors []float32) {
	p.positions = positions
	p.colors = colors
	p.version++
}

func (p *Points) Positions() []float32 { return p.positions }
func (p *Points) Colors() []float32    { return p.colors }

// Len returns the number of points.
func (p *Points) Len() int { return len(p.positions) / 3 }

// LineSegments draws a single-colored list of segments, two xyz endpoints
// per segment.
type LineSegments struct {
	Positions []float32
	Color     colorful.Color
}

// Len returns the number of vertices.
func (l *LineSegments) Len() int { return len(l.Positions) / 3 }

// Object is a drawable scene element; *Points or *LineSegments.
type Object interface {
	object()
}

func (*Points) object()       {}
func (*LineSegments) object() {}

// Scene is an ordered set of objects drawn over a background color.
type Scene struct {
	Background colorful.Color

	objects []Object
}

func NewScene() *Scene {
	return &Scene{Background: colorful.Color{R: 1, G: 1, B: 1}}
}

func (s *Scene) Add(o ...Object) {
	s.objects = append(s.objects, o...)
}

func (s *Scene) Remove(o Object) {
	for i, obj := range s.objects {
		if obj == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
}

// Clear removes all objects.
func (s *Scene) Clear() {
	s.objects = nil
}

func (s *Scene) Objects() []Object {
	return s.objects
}

// PointCount returns the total number of points in the scene.
func (s *Scene) PointCount() int {
	var n int
	for _, o := range s.objects {
		if p, ok := o.(*Points); ok {
			n += p.Len()
		}
	}
	return n
}
