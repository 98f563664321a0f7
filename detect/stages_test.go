package detect

import "testing"

// jumpSeries builds a synthetic vertical position signal with a known
// baseline of 500, a crouch descent to 560, an apex at 400 and a return to
// baseline.  Image Y grows downward.
func jumpSeries() ([]int, []float64) {

	ys := []float64{
		// stance, frames 0-9
		500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
		// descent into the crouch, frames 10-15
		510, 520, 530, 540, 550, 560,
		// hold at depth, frame 16
		560,
		// drive upward, frames 17-22, apex at frame 22
		550, 500, 460, 430, 410, 400,
		// fall back, frames 23-26, landing at frame 26
		410, 430, 460, 500,
		// settle, frames 27-29
		503, 502, 501,
	}

	frames := make([]int, len(ys))

	for i := range frames {
		frames[i] = i
	}

	return frames, ys
}

// TestDetectStages checks launch and landing frames against the constructed
// ground truth
func TestDetectStages(t *testing.T) {

	frames, ys := jumpSeries()

	res, err := DetectStages(frames, ys, 30, DefaultStageParams())

	if err != nil {
		t.Fatalf("DetectStages returned error: %v", err)
	}

	if res.Baseline != 500 {
		t.Errorf("baseline = %f, want 500", res.Baseline)
	}

	if res.CrouchFrame != 11 {
		t.Errorf("crouch frame = %d, want 11", res.CrouchFrame)
	}

	if res.LaunchFrame != 16 {
		t.Errorf("launch frame = %d, want 16", res.LaunchFrame)
	}

	if res.ApexFrame != 22 || res.ApexY != 400 {
		t.Errorf("apex = frame %d y %f, want frame 22 y 400", res.ApexFrame, res.ApexY)
	}

	if res.LandFrame != 26 {
		t.Errorf("land frame = %d, want 26", res.LandFrame)
	}

	if res.StableFrame != 27 {
		t.Errorf("stable frame = %d, want 27", res.StableFrame)
	}

	if res.CrouchDepthY != 560 {
		t.Errorf("crouch depth = %f, want 560", res.CrouchDepthY)
	}
}

// TestDetectStagesOrdering checks that the emitted stages are disjoint and
// time ordered
func TestDetectStagesOrdering(t *testing.T) {

	frames, ys := jumpSeries()

	res, err := DetectStages(frames, ys, 30, DefaultStageParams())

	if err != nil {
		t.Fatalf("DetectStages returned error: %v", err)
	}

	wantNames := []StageName{StageStand, StageCrouch, StageLaunch, StageFlight, StageLand}

	if len(res.Stages) != len(wantNames) {
		t.Fatalf("got %d stages, want %d", len(res.Stages), len(wantNames))
	}

	prevEnd := -1

	for i, s := range res.Stages {

		if s.Name != wantNames[i] {
			t.Errorf("stage %d = %s, want %s", i, s.Name, wantNames[i])
		}

		if s.StartFrame <= prevEnd {
			t.Errorf("stage %s starts at %d, overlapping previous end %d",
				s.Name, s.StartFrame, prevEnd)
		}

		if s.EndFrame < s.StartFrame {
			t.Errorf("stage %s ends at %d before start %d", s.Name, s.EndFrame, s.StartFrame)
		}

		prevEnd = s.EndFrame
	}
}

// TestDetectStagesNoLaunch checks that a flat signal reports no launch
func TestDetectStagesNoLaunch(t *testing.T) {

	ys := make([]float64, 40)
	frames := make([]int, 40)

	for i := range ys {
		ys[i] = 500
		frames[i] = i
	}

	if _, err := DetectStages(frames, ys, 30, DefaultStageParams()); err != ErrNoLaunch {
		t.Errorf("err = %v, want ErrNoLaunch", err)
	}
}

// TestDetectStagesShortSignal checks the stance window guard
func TestDetectStagesShortSignal(t *testing.T) {

	ys := []float64{500, 500, 500}
	frames := []int{0, 1, 2}

	if _, err := DetectStages(frames, ys, 30, DefaultStageParams()); err != ErrShortSignal {
		t.Errorf("err = %v, want ErrShortSignal", err)
	}
}
