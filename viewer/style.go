package viewer

import (
	"fmt"

	"github.com/seqsense/pcviewer/cloud"
)

const (
	classContainer       = "pcv-container"
	classImagePanel      = "pcv-image-panel"
	classCanvasWrapper   = "pcv-canvas-wrapper"
	classCanvasContainer = "pcv-canvas-container"
)

// styleSheet returns the CSS of the two-pane layout.
func styleSheet(panelWidth int) string {
	return fmt.Sprintf(`
.%[1]s {
	display: flex;
	flex-direction: row;
	width: 100%%;
	height: 100%%;
	box-sizing: border-box;
	overflow: hidden;
}
.%[2]s {
	width: %[5]dpx;
	flex: 0 0 auto;
	background: #f5f5f5;
	padding: 0;
	margin: 0;
	display: flex;
	flex-direction: column;
	align-items: stretch;
	box-sizing: border-box;
	overflow: hidden;
}
.%[2]s img {
	width: 100%%;
	height: auto;
	display: block;
	margin: 0;
	padding: 0;
	object-fit: contain;
	box-sizing: border-box;
}
.%[3]s {
	flex: 1 1 auto;
	display: flex;
	align-items: center;
	justify-content: center;
	height: 100%%;
	box-sizing: border-box;
	overflow: hidden;
	padding: 0;
	margin: 0;
}
.%[4]s {
	box-sizing: border-box;
	display: block;
}
.%[4]s canvas {
	display: block;
}
`, classContainer, classImagePanel, classCanvasWrapper, classCanvasContainer, panelWidth)
}

func borderCSS(width, i int) string {
	return fmt.Sprintf("%dpx solid %s", width, cloud.PaletteColor(i).Hex())
}
