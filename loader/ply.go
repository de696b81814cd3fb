package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"
	"github.com/EliCDavis/vector/vector3"

	"github.com/seqsense/pcviewer/cloud"
)

var errNoPositions = errors.New("ply has no vertex positions")

// DecodePLY reads vertices and optional vertex colors of a PLY file.
// Faces are ignored.
func DecodePLY(r io.Reader) (*Cloud, error) {
	mesh, err := ply.ReadMesh(r)
	if err != nil {
		return nil, fmt.Errorf("decoding ply: %w", err)
	}
	if !mesh.HasFloat3Attribute(modeling.PositionAttribute) {
		return nil, errNoPositions
	}

	pos := mesh.Float3Attribute(modeling.PositionAttribute)
	n := pos.Len()
	c := &Cloud{
		Format:    FormatPLY,
		Positions: make([]float32, 0, n*3),
	}
	for i := 0; i < n; i++ {
		v := pos.At(i)
		c.Positions = append(c.Positions, float32(v.X()), float32(v.Y()), float32(v.Z()))
	}

	if mesh.HasFloat3Attribute(modeling.ColorAttribute) {
		col := mesh.Float3Attribute(modeling.ColorAttribute)
		if col.Len() == n {
			c.Colors = make([]float32, 0, n*3)
			for i := 0; i < n; i++ {
				v := col.At(i)
				t := cloud.NormalizeColor(cloud.Tuple{v.X(), v.Y(), v.Z()})
				c.Colors = append(c.Colors, float32(t[0]), float32(t[1]), float32(t[2]))
			}
			c.HasColors = true
		}
	}
	if !c.HasColors {
		c.Colors = cloud.White(n)
	}
	return c, nil
}

// EncodePLY writes the cloud as a binary PLY point cloud.
func EncodePLY(w io.Writer, c *Cloud) error {
	n := c.Len()
	positions := make([]vector3.Float64, n)
	colors := make([]vector3.Float64, n)
	for i := 0; i < n; i++ {
		positions[i] = vector3.New(float64(c.Positions[i*3]), float64(c.Positions[i*3+1]), float64(c.Positions[i*3+2]))
		colors[i] = vector3.New[float64](1, 1, 1)
		if i*3+2 < len(c.Colors) {
			colors[i] = vector3.New(float64(c.Colors[i*3]), float64(c.Colors[i*3+1]), float64(c.Colors[i*3+2]))
		}
	}

	mesh := modeling.EmptyPointcloud().
		SetFloat3Attribute(modeling.PositionAttribute, positions).
		SetFloat3Attribute(modeling.ColorAttribute, colors)
	return ply.Write(w, mesh, ply.BinaryLittleEndian)
}
