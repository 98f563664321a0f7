package measure

import (
	"fmt"

	"github.com/glospot/go-motionmetrics/calibrate"
	"github.com/glospot/go-motionmetrics/detect"
)

// JumpOffsets are calibration offsets in real world units added to the
// corresponding displacement measurements.  The standard workflow passes all
// zeroes; they are an extension point for rigs where the reference
// measurement is taken away from the true baseline.  Land is reserved and
// currently unapplied.
type JumpOffsets struct {
	Crouch float64
	Launch float64
	Land   float64
}

// JumpResult is the immutable outcome of vertical jump measurement over one
// video.  Linear values are in the real world units of the calibration
// profile, inches in the standard workflow.
type JumpResult struct {
	Success       bool   `json:"success"`
	FailureReason string `json:"failure_reason,omitempty"`
	JumperName    string `json:"jumper_name,omitempty"`
	// VerticalJump is the baseline to apex displacement
	VerticalJump float64 `json:"vertical_jump"`
	// DescentLevel is how far the jumper sank below baseline during the
	// crouch
	DescentLevel float64 `json:"descent_level"`
	// DescentSpeed is the descent displacement over its elapsed time, in
	// units per second
	DescentSpeed float64 `json:"descent_speed"`
	// GroundTime is the elapsed seconds between landing and
	// re-stabilisation at baseline, or zero when the signal never settled
	GroundTime float64 `json:"ground_time_s"`
	// PixelsPerUnit is the calibration scale the conversion used
	PixelsPerUnit float64 `json:"pixels_per_unit"`
	LaunchFrame   int     `json:"launch_frame"`
	LandFrame     int     `json:"landing_frame"`
	TotalFrames   int     `json:"total_frames"`
	// Style and Format echo the workflow parameters
	Style  string `json:"jump_style,omitempty"`
	Format string `json:"video_format,omitempty"`
}

// JumpMetrics combines detected stages with a calibration profile into the
// final jump measurements.  fps is the video frame rate used to convert
// frame index spans to elapsed time.
func JumpMetrics(stages detect.StageResult, profile calibrate.Profile,
	fps float64, offsets JumpOffsets) (JumpResult, error) {

	if !profile.Valid() {
		return JumpResult{}, fmt.Errorf("%w: cannot convert without a valid scale",
			calibrate.ErrCalibration)
	}

	if fps <= 0 {
		return JumpResult{}, fmt.Errorf("frame rate %f is not positive", fps)
	}

	// image Y grows downward, so apex above baseline is a positive span
	jumpPx := stages.Baseline - stages.ApexY

	jump, err := profile.ToUnits(jumpPx)

	if err != nil {
		return JumpResult{}, err
	}

	jump += offsets.Launch

	descentPx := stages.CrouchDepthY - stages.Baseline

	descent, err := profile.ToUnits(descentPx)

	if err != nil {
		return JumpResult{}, err
	}

	descent += offsets.Crouch

	// descent speed over the crouch phase
	descentSpeed := 0.0

	if stages.CrouchFrame >= 0 && stages.CrouchDepthFrame > stages.CrouchFrame {
		elapsed := float64(stages.CrouchDepthFrame-stages.CrouchFrame) / fps
		descentSpeed = descent / elapsed
	}

	// ground contact time after landing
	groundTime := 0.0

	if stages.StableFrame >= 0 {
		groundTime = float64(stages.StableFrame-stages.LandFrame) / fps
	}

	return JumpResult{
		Success:       true,
		VerticalJump:  roundTo(jump, 2),
		DescentLevel:  roundTo(descent, 2),
		DescentSpeed:  roundTo(descentSpeed, 2),
		GroundTime:    roundTo(groundTime, 2),
		PixelsPerUnit: roundTo(profile.Scale, 2),
		LaunchFrame:   stages.LaunchFrame,
		LandFrame:     stages.LandFrame,
	}, nil
}
