package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.6,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
	}
}

// Label draws a measurement annotation at the given position
func Label(img *gocv.Mat, text string, at image.Point, font Font) {
	gocv.PutTextWithParams(img, text, at, font.Face, font.Scale, font.Color,
		font.Thickness, font.LineType, false)
}
