package viewer

import (
	"math"
)

const (
	minSquareSize = 32
	// fallbackCanvasWidth is added to the panel width when the container
	// width cannot be measured.
	fallbackCanvasWidth = 300
	thumbnailBorder     = 10
	thumbnailBorderInit = 3
)

// Measure substitutes fallbacks for unmeasurable container sizes.
func Measure(width, height float64, panelWidth, defaultHeight int) (float64, float64) {
	if width <= 0 {
		width = float64(panelWidth + fallbackCanvasWidth)
	}
	if height <= 0 {
		height = float64(defaultHeight)
	}
	return width, height
}

// SquareSize returns the edge length of the square canvas that fits next
// to the image panel.
func SquareSize(width, height float64, panelWidth int) int {
	avail := math.Max(0, width-float64(panelWidth))
	return int(math.Max(minSquareSize, math.Floor(math.Min(height, avail))))
}

// ThumbnailMaxHeight splits the panel height evenly between n thumbnails.
func ThumbnailMaxHeight(panelHeight float64, n int) int {
	if n < 1 {
		n = 1
	}
	return int(math.Floor(math.Max(1, panelHeight) / float64(n)))
}

// ThumbnailBorder returns the CSS border of the i-th thumbnail.
func ThumbnailBorder(i int, resized bool) string {
	w := thumbnailBorderInit
	if resized {
		w = thumbnailBorder
	}
	return borderCSS(w, i)
}
