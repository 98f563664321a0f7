package motionmetrics

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// SessionConfig configures a processing session for one video
type SessionConfig struct {
	// Adapter parameters: landmark schema, frame bounds and stride
	Adapter AdapterParams
	// Log receives structured per session logging.  Nil discards.
	Log *logrus.Logger
	// OnRecord, when set, observes each accepted frame record before it is
	// consumed into the trajectories.  Used for signals that need joints
	// joined per frame, such as limb angles and per frame measurement
	// candidates.
	OnRecord func(FrameRecord)
}

// Session accumulates one video's frame stream into per joint trajectories.
// A Session holds mutable per video state and MUST be freshly created for
// each video; reusing one across videos corrupts counters and stage
// detection.  The domain processors construct their own session internally
// for exactly this reason.
type Session struct {
	adapter   *LandmarkAdapter
	builder   *TrajectoryBuilder
	log       *logrus.Logger
	onRecord  func(FrameRecord)
	frames    int
	landmarks int
	finalised bool
}

// NewSession returns a fresh session for a single video pass
func NewSession(cfg SessionConfig) *Session {

	log := cfg.Log

	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Session{
		adapter:  NewLandmarkAdapter(cfg.Adapter),
		builder:  NewTrajectoryBuilder(),
		log:      log,
		onRecord: cfg.OnRecord,
	}
}

// Ingest consumes one estimated frame into the session.  Frames without
// landmarks contribute nothing but never abort the pass.
func (s *Session) Ingest(frame FramePose) error {

	if s.finalised {
		return ErrSessionConsumed
	}

	s.frames++

	if frame.Landmarks == nil {
		s.log.WithFields(logrus.Fields{
			"frame": frame.Index,
		}).Debug("no subject in frame, skipping")
		return nil
	}

	rec, ok := s.adapter.Next(frame.Index, frame.Landmarks)

	if !ok {
		return nil
	}

	s.landmarks++

	if s.onRecord != nil {
		s.onRecord(rec)
	}

	return s.builder.Add(rec)
}

// Run drains the given frame stream through the session.  Cancellation via
// the context aborts the whole pass: the session is poisoned and no partial
// result may be taken from it.
func (s *Session) Run(ctx context.Context, stream FrameStream) error {

	for {
		select {
		case <-ctx.Done():
			s.finalised = true
			return ctx.Err()
		default:
		}

		frame, ok := stream.Next()

		if !ok {
			break
		}

		if err := s.Ingest(frame); err != nil {
			s.finalised = true
			return err
		}
	}

	s.finalised = true

	// a prefetching stream can observe the cancellation first and end the
	// stream instead; partially accumulated trajectories must not surface
	// as a result
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"frames":          s.frames,
		"landmark_frames": s.landmarks,
	}).Info("video pass complete")

	return nil
}

// Frames returns the total number of frames seen by the session
func (s *Session) Frames() int {
	return s.frames
}

// LandmarkFrames returns the number of frames that contributed at least one
// accepted joint sample
func (s *Session) LandmarkFrames() int {
	return s.landmarks
}

// Trajectory returns the finalised trajectory for the given joint
func (s *Session) Trajectory(j Joint) *Trajectory {
	return s.builder.Trajectory(j)
}

// Log returns the session logger
func (s *Session) Log() *logrus.Logger {
	return s.log
}
