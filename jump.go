package motionmetrics

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/glospot/go-motionmetrics/calibrate"
	"github.com/glospot/go-motionmetrics/detect"
	"github.com/glospot/go-motionmetrics/measure"
)

// JumpStyle selects the jump measurement workflow
type JumpStyle int

const (
	// GroundBased measures against the jumper's own standing reference
	GroundBased JumpStyle = iota
	// RimBased measures jumps taken at a rim
	RimBased
)

// String returns the style name
func (s JumpStyle) String() string {

	if s == RimBased {
		return "Rim-based"
	}

	return "Ground-based"
}

// VideoFormat names the expected source resolution
type VideoFormat int

const (
	// FormatStandard is portrait 720x960 footage
	FormatStandard VideoFormat = iota
	// FormatHD is 1920x1080 footage
	FormatHD
)

// Dimensions returns the pixel width and height of the format
func (f VideoFormat) Dimensions() (int, int) {

	if f == FormatHD {
		return 1920, 1080
	}

	return 720, 960
}

// String returns the format name
func (f VideoFormat) String() string {

	if f == FormatHD {
		return "HD (1920x1080)"
	}

	return "Standard (720x960)"
}

// JumpConfig configures vertical jump measurement for one video
type JumpConfig struct {
	// Adapter parameters: schema, frame bounds and stride
	Adapter AdapterParams
	// Stages holds the stage detector parameters
	Stages detect.StageParams
	// JumperName is carried through to the result
	JumperName string
	// JumperHeight is the jumper's known standing height in real world
	// units, inches in the standard workflow.  It anchors the
	// anthropometric calibration.
	JumperHeight float64
	// Style selects the measurement workflow
	Style JumpStyle
	// Format names the expected source resolution
	Format VideoFormat
	// Offsets are the calibration offset extension point, zero in the
	// standard workflow
	Offsets measure.JumpOffsets
	// Reference is the joint whose vertical position drives stage
	// detection, hip or head
	Reference Joint
	// Head and Ankles form the body segment measured during the stance
	// window for calibration
	Head   Joint
	Ankles [2]Joint
	// FPS is the assumed frame rate when the source does not report one
	FPS float64
	// Prefetch is the decode stage buffer depth for video processing
	Prefetch int
	// Log receives structured session logging.  Nil discards.
	Log *logrus.Logger
}

// DefaultJumpConfig returns the standard jump configuration for the given
// jumper and format.  The hip drives stage detection; every frame is
// processed since launch and landing are single frame events.
func DefaultJumpConfig(jumperName string, jumperHeight float64, style JumpStyle,
	format VideoFormat) JumpConfig {

	width, height := format.Dimensions()

	return JumpConfig{
		Adapter: AdapterParams{
			Schema: MediaPipeSchema(),
			Width:  width,
			Height: height,
			Stride: 1,
		},
		Stages:       detect.DefaultStageParams(),
		JumperName:   jumperName,
		JumperHeight: jumperHeight,
		Style:        style,
		Format:       format,
		Reference:    LeftHip,
		Head:         Nose,
		Ankles:       [2]Joint{LeftAnkle, RightAnkle},
		FPS:          30,
		Prefetch:     DefaultPrefetch,
	}
}

// ProcessJump measures a vertical jump over a frame stream.  Calibration
// failure is fatal and returns an error; a video where no launch or landing
// can be found returns a failed result instead.
func ProcessJump(ctx context.Context, stream FrameStream, cfg JumpConfig) (measure.JumpResult, error) {

	session := NewSession(SessionConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
	})

	if err := session.Run(ctx, stream); err != nil {
		return measure.JumpResult{}, err
	}

	traj := session.Trajectory(cfg.Reference)

	if traj.Len() == 0 {
		return failedJump(cfg, session.Frames(), ErrNoSubjectDetected.Error()), nil
	}

	// anthropometric calibration: head to ankle segment averaged over the
	// stance window, aligned with the stage detector's baseline window
	stanceFrom := traj.At(0).Frame
	stanceTo := stanceFrom + cfg.Stages.BaselineFrames - 1

	headY, okHead := session.Trajectory(cfg.Head).AverageY(stanceFrom, stanceTo)
	leftY, okLeft := session.Trajectory(cfg.Ankles[0]).AverageY(stanceFrom, stanceTo)
	rightY, okRight := session.Trajectory(cfg.Ankles[1]).AverageY(stanceFrom, stanceTo)

	segmentPx := 0.0

	if okHead && okLeft && okRight {
		segmentPx = (leftY+rightY)/2 - headY
	}

	profile, err := calibrate.Anthropometric(cfg.JumperHeight, segmentPx)

	if err != nil {
		return measure.JumpResult{}, err
	}

	frames, ys := traj.FilledY()

	stages, err := detect.DetectStages(frames, ys, cfg.FPS, cfg.Stages)

	if err != nil {
		return failedJump(cfg, session.Frames(), err.Error()), nil
	}

	result, err := measure.JumpMetrics(stages, profile, cfg.FPS, cfg.Offsets)

	if err != nil {
		return measure.JumpResult{}, err
	}

	result.JumperName = cfg.JumperName
	result.TotalFrames = session.Frames()
	result.Style = cfg.Style.String()
	result.Format = cfg.Format.String()

	session.Log().WithFields(logrus.Fields{
		"vertical_jump": result.VerticalJump,
		"launch_frame":  result.LaunchFrame,
		"landing_frame": result.LandFrame,
		"pixels_per_in": result.PixelsPerUnit,
		"descent_speed": result.DescentSpeed,
		"ground_time_s": result.GroundTime,
	}).Info("jump measurement complete")

	return result, nil
}

// ProcessJumpVideo measures a vertical jump over a video file using the
// given pose estimator.  Frame bounds and frame rate are taken from the
// source where available.
func ProcessJumpVideo(ctx context.Context, videoFile string, est PoseEstimator,
	cfg JumpConfig) (measure.JumpResult, error) {

	src, err := OpenVideo(videoFile)

	if err != nil {
		return measure.JumpResult{}, err
	}

	defer src.Close()

	cfg.Adapter.Width = src.Width()
	cfg.Adapter.Height = src.Height()

	if fps := src.FPS(); fps > 0 {
		cfg.FPS = fps
	}

	stream := NewVideoStream(ctx, src, est, cfg.Prefetch)
	defer stream.Close()

	return ProcessJump(ctx, stream, cfg)
}

// failedJump builds the non fatal failure result for a jump session
func failedJump(cfg JumpConfig, totalFrames int, reason string) measure.JumpResult {
	return measure.JumpResult{
		Success:       false,
		FailureReason: reason,
		JumperName:    cfg.JumperName,
		Style:         cfg.Style.String(),
		Format:        cfg.Format.String(),
		TotalFrames:   totalFrames,
	}
}
