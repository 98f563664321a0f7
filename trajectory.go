package motionmetrics

import "fmt"

// Trajectory is the time ordered sequence of one joint's samples across a
// video.  Frame indices are strictly increasing, gaps are permitted where the
// joint was absent.
type Trajectory struct {
	joint   Joint
	samples []JointSample
}

// Joint returns the joint this trajectory tracks
func (t *Trajectory) Joint() Joint {
	return t.joint
}

// Len returns the number of samples
func (t *Trajectory) Len() int {
	return len(t.samples)
}

// At returns the sample at position i
func (t *Trajectory) At(i int) JointSample {
	return t.samples[i]
}

// Samples returns the underlying ordered samples
func (t *Trajectory) Samples() []JointSample {
	return t.samples
}

// append adds a sample, enforcing strictly increasing frame indices
func (t *Trajectory) append(s JointSample) error {

	if n := len(t.samples); n > 0 && s.Frame <= t.samples[n-1].Frame {
		return fmt.Errorf("frame %d arrived after frame %d for joint %s",
			s.Frame, t.samples[n-1].Frame, t.joint)
	}

	t.samples = append(t.samples, s)
	return nil
}

// AverageY returns the mean vertical position over samples whose frame index
// lies in [fromFrame, toFrame].  The second return value is false when the
// window contains no samples.
func (t *Trajectory) AverageY(fromFrame, toFrame int) (float64, bool) {

	sum := 0.0
	n := 0

	for _, s := range t.samples {

		if s.Frame < fromFrame || s.Frame > toFrame {
			continue
		}

		sum += s.Y
		n++
	}

	if n == 0 {
		return 0, false
	}

	return sum / float64(n), true
}

// FilledY returns the trajectory's vertical positions as a dense per frame
// series between the first and last sample, with missing frames forward
// filled from the last valid sample.  The filled series is used for velocity
// computation only, never for reporting.  Frame indices are returned
// alongside the values.
func (t *Trajectory) FilledY() ([]int, []float64) {

	if len(t.samples) == 0 {
		return nil, nil
	}

	first := t.samples[0].Frame
	last := t.samples[len(t.samples)-1].Frame

	frames := make([]int, 0, last-first+1)
	ys := make([]float64, 0, last-first+1)

	si := 0
	lastY := t.samples[0].Y

	for f := first; f <= last; f++ {

		if si < len(t.samples) && t.samples[si].Frame == f {
			lastY = t.samples[si].Y
			si++
		}

		frames = append(frames, f)
		ys = append(ys, lastY)
	}

	return frames, ys
}

// TrajectoryBuilder accumulates frame records into per joint trajectories
// over the course of one video pass
type TrajectoryBuilder struct {
	byJoint map[Joint]*Trajectory
}

// NewTrajectoryBuilder returns an empty TrajectoryBuilder
func NewTrajectoryBuilder() *TrajectoryBuilder {
	return &TrajectoryBuilder{
		byJoint: make(map[Joint]*Trajectory),
	}
}

// Add consumes one frame record into the per joint trajectories
func (b *TrajectoryBuilder) Add(rec FrameRecord) error {

	for j, s := range rec.Joints {

		t, ok := b.byJoint[j]

		if !ok {
			t = &Trajectory{joint: j}
			b.byJoint[j] = t
		}

		if err := t.append(s); err != nil {
			return err
		}
	}

	return nil
}

// Trajectory returns the accumulated trajectory for the given joint.  The
// returned trajectory is empty, never nil, when the joint was absent for the
// whole video.
func (b *TrajectoryBuilder) Trajectory(j Joint) *Trajectory {

	t, ok := b.byJoint[j]

	if !ok {
		return &Trajectory{joint: j}
	}

	return t
}

// MidpointY returns the vertical midpoint of two joints for a single frame
// record
func MidpointY(rec FrameRecord, a, b Joint) float64 {
	return (rec.Joints[a].Y + rec.Joints[b].Y) / 2
}
