package cloud

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the fixed cycle used for image borders and frustum wireframes.
var Palette = [20]colorful.Color{
	{R: 0.000, G: 0.447, B: 0.741}, // blue
	{R: 0.850, G: 0.325, B: 0.098}, // orange
	{R: 0.929, G: 0.694, B: 0.125}, // yellow
	{R: 0.494, G: 0.184, B: 0.556}, // purple
	{R: 0.466, G: 0.674, B: 0.188}, // green
	{R: 0.301, G: 0.745, B: 0.933}, // cyan
	{R: 0.635, G: 0.078, B: 0.184}, // red
	{R: 0.500, G: 0.500, B: 0.500}, // gray
	{R: 0.666, G: 0.333, B: 0.000}, // brown
	{R: 0.333, G: 0.333, B: 0.000}, // olive
	{R: 0.000, G: 0.500, B: 0.500}, // teal
	{R: 0.600, G: 0.600, B: 0.000}, // mustard
	{R: 0.000, G: 0.000, B: 0.000}, // black
	{R: 1.000, G: 0.000, B: 1.000}, // magenta
	{R: 0.502, G: 0.000, B: 0.502}, // dark magenta
	{R: 0.000, G: 0.000, B: 1.000}, // deep blue
	{R: 1.000, G: 0.647, B: 0.000}, // light orange
	{R: 0.824, G: 0.706, B: 0.549}, // tan
	{R: 0.118, G: 0.565, B: 1.000}, // dodger blue
	{R: 0.255, G: 0.412, B: 0.882}, // royal blue
}

// PaletteColor returns the palette entry for index i, wrapping around.
func PaletteColor(i int) colorful.Color {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}
