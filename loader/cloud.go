package loader

// Cloud is a decoded point cloud ready for upload.
type Cloud struct {
	Format Format
	// Positions and Colors are flat xyz and rgb arrays. Colors is white
	// when the file has no color fields.
	Positions []float32
	Colors    []float32
	HasColors bool
}

func (c *Cloud) Len() int {
	return len(c.Positions) / 3
}
