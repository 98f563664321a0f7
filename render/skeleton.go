// Package render draws joint and skeleton overlays onto video frames for
// debugging measurement sessions
package render

import (
	"image"

	"gocv.io/x/gocv"

	metrics "github.com/glospot/go-motionmetrics"
)

// skeleton defines the joint pairs to draw limb lines between, following
// the MediaPipe Pose connection set for the body
var skeleton = [][2]metrics.Joint{
	{metrics.LeftShoulder, metrics.RightShoulder},
	{metrics.LeftShoulder, metrics.LeftElbow},
	{metrics.LeftElbow, metrics.LeftWrist},
	{metrics.RightShoulder, metrics.RightElbow},
	{metrics.RightElbow, metrics.RightWrist},
	{metrics.LeftShoulder, metrics.LeftHip},
	{metrics.RightShoulder, metrics.RightHip},
	{metrics.LeftHip, metrics.RightHip},
	{metrics.LeftHip, metrics.LeftKnee},
	{metrics.LeftKnee, metrics.LeftAnkle},
	{metrics.RightHip, metrics.RightKnee},
	{metrics.RightKnee, metrics.RightAnkle},
	{metrics.LeftAnkle, metrics.LeftHeel},
	{metrics.LeftHeel, metrics.LeftFootIndex},
	{metrics.RightAnkle, metrics.RightHeel},
	{metrics.RightHeel, metrics.RightFootIndex},
}

// Skeleton draws the frame record's joints as circles with limb lines
// between connected joints.  Joints absent from the record are simply not
// drawn.
func Skeleton(img *gocv.Mat, rec metrics.FrameRecord, lineThickness int) {

	for _, limb := range skeleton {

		a, okA := rec.Joints[limb[0]]
		b, okB := rec.Joints[limb[1]]

		if !okA || !okB {
			continue
		}

		gocv.Line(img, image.Pt(int(a.X), int(a.Y)), image.Pt(int(b.X), int(b.Y)),
			limbColor, lineThickness)
	}

	for _, s := range rec.Joints {
		gocv.Circle(img, image.Pt(int(s.X), int(s.Y)), 4, jointColor, -1)
	}
}
