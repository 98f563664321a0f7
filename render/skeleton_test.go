package render

import (
	"image"
	"testing"

	"gocv.io/x/gocv"

	metrics "github.com/glospot/go-motionmetrics"
)

func sample(x, y float64) metrics.JointSample {
	return metrics.JointSample{X: x, Y: y}
}

// TestSkeletonDrawsJoints checks that a record with connected joints marks
// pixels on a blank frame
func TestSkeletonDrawsJoints(t *testing.T) {

	img := gocv.NewMatWithSize(120, 120, gocv.MatTypeCV8UC3)
	defer img.Close()

	rec := metrics.FrameRecord{
		Joints: map[metrics.Joint]metrics.JointSample{
			metrics.LeftShoulder:  sample(30, 30),
			metrics.RightShoulder: sample(90, 30),
			metrics.LeftHip:       sample(40, 80),
			metrics.RightHip:      sample(80, 80),
		},
	}

	Skeleton(&img, rec, 2)

	if s := gocv.Sum(img); s.Val1+s.Val2+s.Val3 == 0 {
		t.Error("expected skeleton to mark pixels, frame is still blank")
	}
}

// TestSkeletonEmptyRecord checks that a record with no joints leaves the
// frame untouched
func TestSkeletonEmptyRecord(t *testing.T) {

	img := gocv.NewMatWithSize(120, 120, gocv.MatTypeCV8UC3)
	defer img.Close()

	Skeleton(&img, metrics.FrameRecord{}, 2)

	if s := gocv.Sum(img); s.Val1+s.Val2+s.Val3 != 0 {
		t.Error("expected empty record to leave the frame blank")
	}
}

func TestLabelDrawsText(t *testing.T) {

	img := gocv.NewMatWithSize(120, 240, gocv.MatTypeCV8UC3)
	defer img.Close()

	Label(&img, "frame 12", image.Pt(10, 60), DefaultFont())

	if s := gocv.Sum(img); s.Val1+s.Val2+s.Val3 == 0 {
		t.Error("expected label to mark pixels, frame is still blank")
	}
}
