package motionmetrics

import "testing"

// fullLandmarks returns a complete landmark set with every joint at the
// frame centre
func fullLandmarks() []Landmark {

	lms := make([]Landmark, NumJoints)

	for i := range lms {
		lms[i] = Landmark{X: 0.5, Y: 0.5, Visibility: 1}
	}

	return lms
}

// setJoint places one joint at the given normalised position
func setJoint(lms []Landmark, j Joint, x, y float64) {
	lms[int(j)] = Landmark{X: x, Y: y, Visibility: 1}
}

func testAdapterParams(stride int) AdapterParams {
	return AdapterParams{
		Schema: MediaPipeSchema(),
		Width:  720,
		Height: 960,
		Stride: stride,
	}
}

func TestAdapterBoundsFilter(t *testing.T) {

	adapter := NewLandmarkAdapter(testAdapterParams(1))

	lms := fullLandmarks()
	setJoint(lms, LeftWrist, 1.2, 0.5)  // right of frame
	setJoint(lms, RightWrist, 0.5, -.1) // above frame

	rec, ok := adapter.Next(0, lms)

	if !ok {
		t.Fatal("frame rejected entirely")
	}

	if _, present := rec.Joints[LeftWrist]; present {
		t.Error("out of bounds left wrist was not dropped")
	}

	if _, present := rec.Joints[RightWrist]; present {
		t.Error("out of bounds right wrist was not dropped")
	}

	nose, present := rec.Joints[Nose]

	if !present {
		t.Fatal("in bounds nose was dropped")
	}

	if nose.X != 360 || nose.Y != 480 {
		t.Errorf("nose at (%f, %f), want (360, 480)", nose.X, nose.Y)
	}
}

func TestAdapterStride(t *testing.T) {

	adapter := NewLandmarkAdapter(testAdapterParams(5))

	if _, ok := adapter.Next(3, fullLandmarks()); ok {
		t.Error("frame 3 processed with stride 5")
	}

	if _, ok := adapter.Next(5, fullLandmarks()); !ok {
		t.Error("frame 5 skipped with stride 5")
	}
}

func TestAdapterNoSubject(t *testing.T) {

	adapter := NewLandmarkAdapter(testAdapterParams(1))

	if _, ok := adapter.Next(0, nil); ok {
		t.Error("empty landmark set produced a record")
	}
}

// TestSchemaValidation checks the fail fast behaviour on a schema of the
// wrong shape
func TestSchemaValidation(t *testing.T) {

	complete := make(map[string]int, NumJoints)

	for j := Joint(0); j < NumJoints; j++ {
		complete[j.String()] = int(j)
	}

	if _, err := NewSchema(complete); err != nil {
		t.Errorf("complete schema rejected: %v", err)
	}

	short := map[string]int{"nose": 0}

	if _, err := NewSchema(short); err == nil {
		t.Error("truncated schema accepted")
	}

	duplicate := make(map[string]int, NumJoints)

	for name, i := range complete {
		duplicate[name] = i
	}

	duplicate["left_ankle"] = 0 // collides with nose

	if _, err := NewSchema(duplicate); err == nil {
		t.Error("duplicate index schema accepted")
	}
}
