package detect

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// StageName labels one phase of a jump within a video
type StageName string

const (
	StageStand  StageName = "STAND"
	StageCrouch StageName = "CROUCH"
	StageLaunch StageName = "LAUNCH"
	StageFlight StageName = "FLIGHT"
	StageLand   StageName = "LAND"
)

// Stage is a labelled phase of the trajectory.  Stages within one video are
// disjoint and time ordered.
type Stage struct {
	Name       StageName
	StartFrame int
	EndFrame   int
}

var (
	// ErrNoLaunch means the vertical velocity never crossed the launch
	// threshold
	ErrNoLaunch = errors.New("no launch detected")
	// ErrNoLanding means the signal never returned to baseline after the
	// apex
	ErrNoLanding = errors.New("no landing detected")
	// ErrShortSignal means the series is too short to establish a stance
	// baseline
	ErrShortSignal = errors.New("signal shorter than stance window")
)

// StageParams configures the jump stage detector.  All position values are
// in pixels; image Y grows downward, so descending means the signal
// increases.
type StageParams struct {
	// BaselineFrames is the number of leading stance samples averaged into
	// the baseline
	BaselineFrames int
	// CrouchMargin is how far below the baseline the signal must descend
	// to enter CROUCH
	CrouchMargin float64
	// LaunchVelocity is the upward speed in pixels per second that marks
	// the launch.  LAUNCH is the last frame before the velocity crosses it.
	LaunchVelocity float64
	// LandMargin is how close to baseline the signal must return, with
	// downward motion ended, to mark LAND
	LandMargin float64
	// StableMargin is the band around baseline used to find the
	// re-stabilisation point after landing, for ground contact time
	StableMargin float64
}

// DefaultStageParams returns stage detection parameters suited to standard
// format jump footage
func DefaultStageParams() StageParams {
	return StageParams{
		BaselineFrames: 10,
		CrouchMargin:   15,
		LaunchVelocity: 200,
		LandMargin:     10,
		StableMargin:   5,
	}
}

// StageResult is the immutable outcome of stage detection over one video
type StageResult struct {
	// Baseline is the stance window average vertical position
	Baseline float64
	// Stages in time order
	Stages []Stage
	// CrouchFrame is the frame CROUCH was entered, or -1 when the jumper
	// never crouched below the margin
	CrouchFrame int
	// CrouchDepthFrame and CrouchDepthY locate the lowest point of the
	// descent phase
	CrouchDepthFrame int
	CrouchDepthY     float64
	// LaunchFrame is the last frame before strong upward motion
	LaunchFrame int
	// ApexFrame and ApexY locate the highest point of the flight
	ApexFrame int
	ApexY     float64
	// LandFrame is the first frame back at baseline after flight
	LandFrame int
	// StableFrame is the re-stabilisation frame after landing, or -1 when
	// the signal never settled
	StableFrame int
}

// DetectStages runs the jump stage state machine over a dense per frame
// vertical position series.  The series must be forward filled: one value
// per frame with gaps bridged from the last valid sample.  fps is the frame
// rate used to turn first differences into velocity.
func DetectStages(frames []int, ys []float64, fps float64, p StageParams) (StageResult, error) {

	n := len(ys)

	if n <= p.BaselineFrames || p.BaselineFrames < 1 {
		return StageResult{}, ErrShortSignal
	}

	baseline := stat.Mean(ys[:p.BaselineFrames], nil)

	// velocity from first differences, downward positive
	vy := make([]float64, n)

	for i := 1; i < n; i++ {
		vy[i] = (ys[i] - ys[i-1]) * fps
	}

	// descent below baseline enters the crouch
	crouchIdx := -1

	for i := p.BaselineFrames; i < n; i++ {
		if ys[i] > baseline+p.CrouchMargin {
			crouchIdx = i
			break
		}
	}

	// launch is the last frame before velocity crosses strongly upward
	launchIdx := -1
	searchFrom := p.BaselineFrames

	if crouchIdx >= 0 {
		searchFrom = crouchIdx
	}

	for i := searchFrom; i < n; i++ {
		if vy[i] <= -p.LaunchVelocity {
			launchIdx = i - 1
			break
		}
	}

	if launchIdx < 0 {
		return StageResult{}, ErrNoLaunch
	}

	// lowest crouch point over the descent phase
	depthIdx := launchIdx
	start := crouchIdx

	if start < 0 {
		start = p.BaselineFrames
	}

	for i := start; i <= launchIdx; i++ {
		if ys[i] > ys[depthIdx] {
			depthIdx = i
		}
	}

	// apex of the flight
	apexIdx := launchIdx + 1

	for i := launchIdx + 1; i < n; i++ {
		if ys[i] < ys[apexIdx] {
			apexIdx = i
		}
	}

	// landing: back within the margin of baseline with downward motion over
	landIdx := -1

	for i := apexIdx + 1; i < n; i++ {
		if ys[i] >= baseline-p.LandMargin && vy[i] >= 0 {
			landIdx = i
			break
		}
	}

	if landIdx < 0 {
		return StageResult{}, ErrNoLanding
	}

	// re-stabilisation after landing, for ground contact time
	stableIdx := -1

	for i := landIdx + 1; i < n; i++ {
		if abs(ys[i]-baseline) <= p.StableMargin && abs(ys[i]-ys[i-1]) <= p.StableMargin {
			stableIdx = i
			break
		}
	}

	res := StageResult{
		Baseline:         baseline,
		CrouchFrame:      -1,
		CrouchDepthFrame: frames[depthIdx],
		CrouchDepthY:     ys[depthIdx],
		LaunchFrame:      frames[launchIdx],
		ApexFrame:        frames[apexIdx],
		ApexY:            ys[apexIdx],
		LandFrame:        frames[landIdx],
		StableFrame:      -1,
	}

	if crouchIdx >= 0 {
		res.CrouchFrame = frames[crouchIdx]
	}

	if stableIdx >= 0 {
		res.StableFrame = frames[stableIdx]
	}

	res.Stages = buildStages(frames, crouchIdx, launchIdx, landIdx)

	return res, nil
}

// buildStages assembles the disjoint, time ordered stage list from the
// detected indices
func buildStages(frames []int, crouchIdx, launchIdx, landIdx int) []Stage {

	stages := make([]Stage, 0, 5)

	standEnd := launchIdx - 1

	if crouchIdx >= 0 && crouchIdx <= launchIdx {
		standEnd = crouchIdx - 1
	}

	if standEnd >= 0 {
		stages = append(stages, Stage{
			Name:       StageStand,
			StartFrame: frames[0],
			EndFrame:   frames[standEnd],
		})
	}

	if crouchIdx >= 0 && crouchIdx < launchIdx {
		stages = append(stages, Stage{
			Name:       StageCrouch,
			StartFrame: frames[crouchIdx],
			EndFrame:   frames[launchIdx-1],
		})
	}

	stages = append(stages, Stage{
		Name:       StageLaunch,
		StartFrame: frames[launchIdx],
		EndFrame:   frames[launchIdx],
	})

	if landIdx > launchIdx+1 {
		stages = append(stages, Stage{
			Name:       StageFlight,
			StartFrame: frames[launchIdx+1],
			EndFrame:   frames[landIdx-1],
		})
	}

	stages = append(stages, Stage{
		Name:       StageLand,
		StartFrame: frames[landIdx],
		EndFrame:   frames[landIdx],
	})

	return stages
}

func abs(v float64) float64 {

	if v < 0 {
		return -v
	}

	return v
}
