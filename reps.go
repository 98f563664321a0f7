package motionmetrics

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/glospot/go-motionmetrics/detect"
	"github.com/glospot/go-motionmetrics/measure"
)

// LimbTriple names the three joints forming one limb angle, vertex in the
// middle
type LimbTriple [3]Joint

// RepConfig configures repetition counting for one video
type RepConfig struct {
	// Adapter parameters: schema, frame bounds and stride
	Adapter AdapterParams
	// Rep holds the hysteresis thresholds
	Rep detect.RepParams
	// Limbs are the symmetric limb triples whose angles are averaged into
	// the repetition signal
	Limbs []LimbTriple
	// Mode names the exercise variant in the result
	Mode string
	// Prefetch is the decode stage buffer depth for video processing
	Prefetch int
	// Log receives structured session logging.  Nil discards.
	Log *logrus.Logger
}

// DefaultRepConfig returns the pushup configuration for frames of the given
// pixel dimensions: both arms' shoulder-elbow-wrist angles averaged, every
// frame processed
func DefaultRepConfig(width, height int) RepConfig {
	return RepConfig{
		Adapter: AdapterParams{
			Schema: MediaPipeSchema(),
			Width:  width,
			Height: height,
			Stride: 1,
		},
		Rep: detect.DefaultRepParams(),
		Limbs: []LimbTriple{
			{LeftShoulder, LeftElbow, LeftWrist},
			{RightShoulder, RightElbow, RightWrist},
		},
		Mode:     "standard",
		Prefetch: DefaultPrefetch,
	}
}

// ProcessReps counts repetitions over a frame stream.  Frames where any of
// the limb joints are unavailable leave the state machine untouched; they
// are skipped, never treated as an error and never reset the counter.
func ProcessReps(ctx context.Context, stream FrameStream, cfg RepConfig) (measure.RepResult, error) {

	counter := detect.NewRepCounter(cfg.Rep)
	log := cfg.Log

	session := NewSession(SessionConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
		OnRecord: func(rec FrameRecord) {

			angle, ok := limbSignal(rec, cfg.Limbs)

			if !ok {
				return
			}

			if counter.Update(angle) && log != nil {
				log.WithFields(logrus.Fields{
					"frame": rec.Frame,
					"count": counter.Count(),
				}).Info("repetition counted")
			}
		},
	})

	if err := session.Run(ctx, stream); err != nil {
		return measure.RepResult{}, err
	}

	return measure.RepResult{
		Count:       counter.Count(),
		Position:    counter.Position().String(),
		TotalFrames: session.Frames(),
		Mode:        cfg.Mode,
	}, nil
}

// ProcessRepsVideo counts repetitions over a video file using the given pose
// estimator
func ProcessRepsVideo(ctx context.Context, videoFile string, est PoseEstimator,
	cfg RepConfig) (measure.RepResult, error) {

	src, err := OpenVideo(videoFile)

	if err != nil {
		return measure.RepResult{}, err
	}

	defer src.Close()

	cfg.Adapter.Width = src.Width()
	cfg.Adapter.Height = src.Height()

	stream := NewVideoStream(ctx, src, est, cfg.Prefetch)
	defer stream.Close()

	return ProcessReps(ctx, stream, cfg)
}

// limbSignal averages the configured limb triple angles for one frame.
// Returns false when any joint of any triple is absent, so a partially
// visible frame contributes nothing rather than a skewed angle.
func limbSignal(rec FrameRecord, limbs []LimbTriple) (float64, bool) {

	if len(limbs) == 0 {
		return 0, false
	}

	sum := 0.0

	for _, limb := range limbs {

		if !rec.Has(limb[0], limb[1], limb[2]) {
			return 0, false
		}

		a := rec.Joints[limb[0]]
		b := rec.Joints[limb[1]]
		c := rec.Joints[limb[2]]

		sum += detect.Angle(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	}

	return sum / float64(len(limbs)), true
}
