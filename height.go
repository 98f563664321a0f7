package motionmetrics

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/glospot/go-motionmetrics/calibrate"
	"github.com/glospot/go-motionmetrics/measure"
)

// HeightConfig configures standing height measurement for one video
type HeightConfig struct {
	// Adapter parameters: schema, frame bounds and stride
	Adapter AdapterParams
	// Measure holds the aggregation parameters
	Measure measure.HeightParams
	// Head is the landmark used for the top reference
	Head Joint
	// Ankles are the landmarks whose midpoint forms the bottom reference
	Ankles [2]Joint
	// Prefetch is the decode stage buffer depth for video processing
	Prefetch int
	// Log receives structured session logging.  Nil discards.
	Log *logrus.Logger
}

// DefaultHeightConfig returns the standard height configuration for frames
// of the given pixel dimensions.  Every 5th frame is processed, which is
// dense enough for a stable median without paying inference cost on every
// frame.
func DefaultHeightConfig(width, height int) HeightConfig {
	return HeightConfig{
		Adapter: AdapterParams{
			Schema: MediaPipeSchema(),
			Width:  width,
			Height: height,
			Stride: 5,
		},
		Measure:  measure.DefaultHeightParams(),
		Head:     Nose,
		Ankles:   [2]Joint{LeftAnkle, RightAnkle},
		Prefetch: DefaultPrefetch,
	}
}

// ProcessHeight measures standing height over a frame stream.  A fresh
// session is constructed internally, so the same config can be used across
// videos safely.  A video yielding too few plausible measurements returns a
// failed result, not an error; only cancellation or a corrupt stream
// returns an error.
func ProcessHeight(ctx context.Context, stream FrameStream, cfg HeightConfig) (measure.HeightResult, error) {

	candidates := make([]float64, 0)

	session := NewSession(SessionConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
		OnRecord: func(rec FrameRecord) {

			if !rec.Has(cfg.Head, cfg.Ankles[0], cfg.Ankles[1]) {
				return
			}

			head := rec.Joints[cfg.Head]
			feetX := (rec.Joints[cfg.Ankles[0]].X + rec.Joints[cfg.Ankles[1]].X) / 2
			feetY := MidpointY(rec, cfg.Ankles[0], cfg.Ankles[1])

			candidates = append(candidates,
				measure.HeightCandidate(head.X, head.Y, feetX, feetY, cfg.Measure))
		},
	})

	if err := session.Run(ctx, stream); err != nil {
		return measure.HeightResult{}, err
	}

	result := measure.AggregateHeight(candidates, cfg.Measure)
	result.TotalFrames = session.Frames()

	session.Log().WithFields(logrus.Fields{
		"measurements": result.Measurements,
		"height_cm":    result.HeightCM,
		"mean_cm":      result.MeanCM,
	}).Info("height aggregation complete")

	return result, nil
}

// ProcessHeightVideo measures standing height over a video file using the
// given pose estimator.  The adapter frame bounds are taken from the source.
func ProcessHeightVideo(ctx context.Context, videoFile string, est PoseEstimator,
	cfg HeightConfig) (measure.HeightResult, error) {

	src, err := OpenVideo(videoFile)

	if err != nil {
		return measure.HeightResult{}, err
	}

	defer src.Close()

	cfg.Adapter.Width = src.Width()
	cfg.Adapter.Height = src.Height()

	stream := NewVideoStream(ctx, src, est, cfg.Prefetch)
	defer stream.Close()

	return ProcessHeight(ctx, stream, cfg)
}

// CalibrateDistance computes a focal length from a reference image with the
// subject at a known distance.  The focal length feeds subject distance
// estimation and is a separate calibration path from the height scale
// factor.
func CalibrateDistance(refImageFile string, faces FaceDetector,
	params calibrate.DistanceParams) (*calibrate.DistanceCalibrator, error) {

	img := gocv.IMRead(refImageFile, gocv.IMReadColor)

	if img.Empty() {
		return nil, fmt.Errorf("%w: reference image %s", ErrSourceUnreadable, refImageFile)
	}

	defer img.Close()

	cal := calibrate.NewDistanceCalibrator(params)

	if _, err := cal.Calibrate(float64(faces.FaceWidth(img))); err != nil {
		return nil, err
	}

	return cal, nil
}
