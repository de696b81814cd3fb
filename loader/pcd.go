package loader

import (
	"fmt"
	"io"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/pcviewer/cloud"
)

var rgbFields = []string{"rgb", "rgba"}

// DecodePCD reads a PCD file. Packed rgb/rgba fields become vertex colors.
func DecodePCD(r io.Reader) (*Cloud, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, fmt.Errorf("decoding pcd: %w", err)
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("decoding pcd: %w", err)
	}

	n := it.Len()
	c := &Cloud{
		Format:    FormatPCD,
		Positions: make([]float32, 0, n*3),
	}
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		c.Positions = append(c.Positions, v[0], v[1], v[2])
	}

	for _, name := range rgbFields {
		if !hasField(pp, name) {
			continue
		}
		ic, err := pp.Uint32Iterator(name)
		if err != nil {
			continue
		}
		c.Colors = make([]float32, 0, n*3)
		for ; ic.IsValid(); ic.Incr() {
			v := ic.Uint32()
			c.Colors = append(c.Colors,
				float32((v>>16)&0xff)/255,
				float32((v>>8)&0xff)/255,
				float32(v&0xff)/255,
			)
		}
		c.HasColors = true
		break
	}
	if !c.HasColors {
		c.Colors = cloud.White(c.Len())
	}
	return c, nil
}

// EncodePCD writes the cloud as a binary PCD with x y z rgb fields.
func EncodePCD(w io.Writer, c *Cloud) error {
	n := c.Len()
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z", "rgb"},
			Size:      []int{4, 4, 4, 4},
			Type:      []string{"F", "F", "F", "U"},
			Count:     []int{1, 1, 1, 1},
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
			Width:     n,
			Height:    1,
		},
		Points: n,
	}
	pp.Data = make([]byte, n*pp.Stride())

	it, err := pp.Vec3Iterator()
	if err != nil {
		return err
	}
	ic, err := pp.Uint32Iterator("rgb")
	if err != nil {
		return err
	}
	for i := 0; it.IsValid(); i++ {
		it.SetVec3(mat.Vec3{c.Positions[i*3], c.Positions[i*3+1], c.Positions[i*3+2]})
		var rgb uint32
		if i*3+2 < len(c.Colors) {
			rgb = channel(c.Colors[i*3])<<16 | channel(c.Colors[i*3+1])<<8 | channel(c.Colors[i*3+2])
		}
		ic.SetUint32(rgb)
		it.Incr()
		ic.Incr()
	}
	return pc.Marshal(pp, w)
}

func hasField(pp *pc.PointCloud, name string) bool {
	for _, f := range pp.Fields {
		if f == name {
			return true
		}
	}
	return false
}

func channel(v float32) uint32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint32(v*255 + 0.5)
}
