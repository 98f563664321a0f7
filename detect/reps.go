package detect

// RepPosition is the state of the repetition state machine
type RepPosition int

const (
	// Up means the limb is extended
	Up RepPosition = iota
	// Down means the limb is contracted
	Down
)

// String returns the position name
func (p RepPosition) String() string {

	if p == Down {
		return "DOWN"
	}

	return "UP"
}

// RepParams holds the repetition counter thresholds.  The gap between
// LowThreshold and HighThreshold forms a hysteresis band: an angle signal
// wobbling strictly inside the band changes neither state nor count, so a
// single noisy borderline frame can never double count.
type RepParams struct {
	// LowThreshold is the angle in degrees below which, while Up, a
	// repetition completes and the state moves to Down
	LowThreshold float64
	// HighThreshold is the angle in degrees above which the state returns
	// to Up from any state
	HighThreshold float64
}

// DefaultRepParams returns the standard pushup thresholds of 70 and 160
// degrees
func DefaultRepParams() RepParams {
	return RepParams{
		LowThreshold:  70,
		HighThreshold: 160,
	}
}

// RepCounter counts repetitions from a joint angle signal.  The initial
// position is Up.  A RepCounter holds per video state and must be freshly
// created for each video.
type RepCounter struct {
	params   RepParams
	position RepPosition
	count    int
}

// NewRepCounter returns a RepCounter in the Up position with a zero count
func NewRepCounter(p RepParams) *RepCounter {
	return &RepCounter{
		params:   p,
		position: Up,
	}
}

// Update feeds one frame's angle into the state machine, returning true when
// a repetition completed on this frame.  Frames with no measurable angle
// must simply not be fed in: skipping a frame leaves state and count
// unchanged, never resets them.
func (r *RepCounter) Update(angle float64) bool {

	if angle > r.params.HighThreshold {
		r.position = Up
		return false
	}

	if angle < r.params.LowThreshold && r.position == Up {
		r.position = Down
		r.count++
		return true
	}

	return false
}

// Count returns the number of completed repetitions
func (r *RepCounter) Count() int {
	return r.count
}

// Position returns the current state machine position
func (r *RepCounter) Position() RepPosition {
	return r.position
}
