package motionmetrics

import "testing"

func sample(frame int, y float64) JointSample {
	return JointSample{Frame: frame, Joint: LeftHip, X: 100, Y: y}
}

func TestTrajectoryOrdering(t *testing.T) {

	traj := &Trajectory{joint: LeftHip}

	if err := traj.append(sample(0, 10)); err != nil {
		t.Fatalf("append frame 0: %v", err)
	}

	if err := traj.append(sample(5, 12)); err != nil {
		t.Fatalf("append frame 5: %v", err)
	}

	if err := traj.append(sample(5, 13)); err == nil {
		t.Error("duplicate frame index accepted")
	}

	if err := traj.append(sample(3, 13)); err == nil {
		t.Error("out of order frame index accepted")
	}
}

func TestTrajectoryFilledY(t *testing.T) {

	traj := &Trajectory{joint: LeftHip}

	traj.append(sample(2, 10))
	traj.append(sample(3, 20))
	traj.append(sample(6, 50))

	frames, ys := traj.FilledY()

	wantFrames := []int{2, 3, 4, 5, 6}
	wantYs := []float64{10, 20, 20, 20, 50}

	if len(frames) != len(wantFrames) {
		t.Fatalf("got %d filled frames, want %d", len(frames), len(wantFrames))
	}

	for i := range wantFrames {

		if frames[i] != wantFrames[i] {
			t.Errorf("frame[%d] = %d, want %d", i, frames[i], wantFrames[i])
		}

		if ys[i] != wantYs[i] {
			t.Errorf("y[%d] = %f, want %f (gaps must forward fill)", i, ys[i], wantYs[i])
		}
	}
}

func TestTrajectoryAverageY(t *testing.T) {

	traj := &Trajectory{joint: LeftHip}

	traj.append(sample(0, 10))
	traj.append(sample(1, 20))
	traj.append(sample(10, 90))

	avg, ok := traj.AverageY(0, 5)

	if !ok || avg != 15 {
		t.Errorf("window average = %f ok=%v, want 15 true", avg, ok)
	}

	if _, ok := traj.AverageY(20, 30); ok {
		t.Error("empty window reported a value")
	}
}

func TestBuilderSeparatesJoints(t *testing.T) {

	builder := NewTrajectoryBuilder()

	rec := FrameRecord{
		Frame: 0,
		Joints: map[Joint]JointSample{
			Nose:    {Frame: 0, Joint: Nose, X: 1, Y: 2},
			LeftHip: {Frame: 0, Joint: LeftHip, X: 3, Y: 4},
		},
	}

	if err := builder.Add(rec); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if got := builder.Trajectory(Nose).Len(); got != 1 {
		t.Errorf("nose trajectory has %d samples, want 1", got)
	}

	if got := builder.Trajectory(RightAnkle).Len(); got != 0 {
		t.Errorf("absent joint trajectory has %d samples, want 0", got)
	}
}
