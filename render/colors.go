package render

import "image/color"

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}

	// jointColor is used for the joint circles
	jointColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	// limbColor is used for the lines between connected joints
	limbColor = color.RGBA{R: 35, G: 176, B: 247, A: 255}
)
