package motionmetrics

// Landmark is a single raw landmark from the pose estimation collaborator,
// with coordinates normalised to [0,1] relative to the frame
type Landmark struct {
	X float64
	Y float64
	// Visibility is the collaborator's per landmark visibility score, or
	// zero when the collaborator does not supply one
	Visibility float64
}

// JointSample is one joint's pixel position for one frame
type JointSample struct {
	Frame      int
	Joint      Joint
	X          float64
	Y          float64
	Visibility float64
}

// FrameRecord holds the accepted joint samples for one frame.  Joints that
// were absent or fell outside the frame bounds are simply not present in the
// map.  FrameRecords are transient, consumed immediately into trajectories.
type FrameRecord struct {
	Frame  int
	Joints map[Joint]JointSample
}

// Has reports whether all the given joints are present in the record
func (r FrameRecord) Has(joints ...Joint) bool {

	for _, j := range joints {
		if _, ok := r.Joints[j]; !ok {
			return false
		}
	}

	return true
}

// AdapterParams configures a LandmarkAdapter
type AdapterParams struct {
	// Schema maps named joints to the collaborator's landmark indices
	Schema Schema
	// Width and Height are the frame pixel dimensions used for bounds
	// filtering
	Width  int
	Height int
	// Stride processes every Nth frame, eg: 5 processes frames 0, 5, 10.
	// It trades compute for measurement density without changing detection
	// semantics.  Values below 1 are treated as 1.
	Stride int
}

// LandmarkAdapter normalises raw collaborator landmarks into named joint
// records.  A joint sample is accepted only when both pixel coordinates lie
// inside [0,width) x [0,height), otherwise the joint is treated as absent
// for that frame.
type LandmarkAdapter struct {
	params AdapterParams
}

// NewLandmarkAdapter returns a LandmarkAdapter for the given parameters
func NewLandmarkAdapter(p AdapterParams) *LandmarkAdapter {

	if p.Stride < 1 {
		p.Stride = 1
	}

	return &LandmarkAdapter{params: p}
}

// Next converts one frame's raw landmarks into a FrameRecord.  The second
// return value is false when the frame is skipped by the stride or yields no
// accepted joints at all, in which case the frame contributes nothing to the
// session.
func (a *LandmarkAdapter) Next(frameIndex int, landmarks []Landmark) (FrameRecord, bool) {

	if frameIndex%a.params.Stride != 0 {
		return FrameRecord{}, false
	}

	if len(landmarks) < a.params.Schema.Size() {
		// collaborator returned no subject or a truncated set
		return FrameRecord{}, false
	}

	rec := FrameRecord{
		Frame:  frameIndex,
		Joints: make(map[Joint]JointSample),
	}

	w := float64(a.params.Width)
	h := float64(a.params.Height)

	for j := range jointNames {

		idx, ok := a.params.Schema.Index(j)

		if !ok {
			continue
		}

		lm := landmarks[idx]

		px := lm.X * w
		py := lm.Y * h

		// drop out of bounds coordinates rather than clamping them
		if px < 0 || px >= w || py < 0 || py >= h {
			continue
		}

		rec.Joints[j] = JointSample{
			Frame:      frameIndex,
			Joint:      j,
			X:          px,
			Y:          py,
			Visibility: lm.Visibility,
		}
	}

	if len(rec.Joints) == 0 {
		return FrameRecord{}, false
	}

	return rec, true
}
