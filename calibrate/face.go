package calibrate

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// HaarFaceDetector measures face width using an OpenCV Haar cascade
// classifier.  It satisfies the pipeline's FaceDetector interface.
type HaarFaceDetector struct {
	classifier gocv.CascadeClassifier
}

// NewHaarFaceDetector loads a Haar cascade from the given XML file, eg
// haarcascade_frontalface_default.xml
func NewHaarFaceDetector(cascadeFile string) (*HaarFaceDetector, error) {

	classifier := gocv.NewCascadeClassifier()

	if !classifier.Load(cascadeFile) {
		_ = classifier.Close()
		return nil, fmt.Errorf("error loading cascade file %s", cascadeFile)
	}

	return &HaarFaceDetector{classifier: classifier}, nil
}

// FaceWidth returns the pixel width of the largest face found in the image,
// or zero when no face is detected
func (h *HaarFaceDetector) FaceWidth(img gocv.Mat) int {

	gray := gocv.NewMat()
	defer gray.Close()

	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	faces := h.classifier.DetectMultiScaleWithParams(gray, 1.3, 5, 0,
		image.Pt(0, 0), image.Pt(0, 0))

	width := 0
	area := 0

	for _, face := range faces {
		if a := face.Dx() * face.Dy(); a > area {
			area = a
			width = face.Dx()
		}
	}

	return width
}

// Close releases the underlying classifier
func (h *HaarFaceDetector) Close() error {
	return h.classifier.Close()
}
