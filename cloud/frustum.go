package cloud

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/seqsense/pcgol/mat"
)

const (
	// FrustumTranslationScale pushes frustums away from the normalized cloud.
	FrustumTranslationScale = 1.5

	frustumHalfSize = 0.1
	frustumFar      = 0.1
)

// frustumEdges lists the 4 apex edges followed by the far-plane rectangle.
var frustumEdges = [8][2]int{
	{0, 4}, {1, 4}, {2, 4}, {3, 4},
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
}

// FrustumSegments is the number of line segments of a frustum wireframe.
const FrustumSegments = len(frustumEdges)

// frustumCorners returns the far-plane corners followed by the apex.
func frustumCorners() [5]mat.Vec3 {
	s, f := float32(frustumHalfSize), float32(frustumFar)
	return [5]mat.Vec3{
		{-s, -s, f},
		{s, -s, f},
		{s, s, f},
		{-s, s, f},
		{0, 0, 0},
	}
}

// Frustum returns the wireframe of a camera pose as flat xyz line-segment
// endpoints (2 per segment). The pose translation is multiplied by
// FrustumTranslationScale.
func Frustum(p Pose) []float32 {
	m := p.Mat4()
	m[12] *= FrustumTranslationScale
	m[13] *= FrustumTranslationScale
	m[14] *= FrustumTranslationScale

	corners := frustumCorners()
	for i := range corners {
		corners[i] = m.TransformAffine(corners[i])
	}

	out := make([]float32, 0, FrustumSegments*2*3)
	for _, e := range frustumEdges {
		a, b := corners[e[0]], corners[e[1]]
		out = append(out, a[0], a[1], a[2], b[0], b[1], b[2])
	}
	return out
}

// Wireframe is a colored set of line segments.
type Wireframe struct {
	Positions []float32
	Color     colorful.Color
}

// Frustums returns one wireframe per camera pose of the document, colored
// by the pose index.
func Frustums(doc *Document) []Wireframe {
	out := make([]Wireframe, 0, len(doc.CameraPoses))
	for i, p := range doc.CameraPoses {
		out = append(out, Wireframe{
			Positions: Frustum(p),
			Color:     PaletteColor(i),
		})
	}
	return out
}
