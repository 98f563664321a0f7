package motionmetrics

import (
	"fmt"

	"gocv.io/x/gocv"
)

// PoseEstimator is the external pose estimation collaborator.  Given one
// decoded frame it returns zero or one sets of landmarks with coordinates
// normalised to [0,1], and false when no clear human subject was found.
type PoseEstimator interface {
	EstimatePose(img gocv.Mat) ([]Landmark, bool)
}

// FaceDetector measures the pixel width of the most prominent face in an
// image, returning zero when no face is found.  Used for distance
// calibration against a reference image.
type FaceDetector interface {
	FaceWidth(img gocv.Mat) int
}

// VideoSource wraps a GoCV video capture, yielding frames in strict order
type VideoSource struct {
	cap    *gocv.VideoCapture
	file   string
	width  int
	height int
	fps    float64
}

// OpenVideo opens the given video file.  Returns ErrSourceUnreadable when the
// source cannot be opened.
func OpenVideo(file string) (*VideoSource, error) {

	cap, err := gocv.VideoCaptureFile(file)

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, file, err)
	}

	if !cap.IsOpened() {
		_ = cap.Close()
		return nil, fmt.Errorf("%w: %s", ErrSourceUnreadable, file)
	}

	return &VideoSource{
		cap:    cap,
		file:   file,
		width:  int(cap.Get(gocv.VideoCaptureFrameWidth)),
		height: int(cap.Get(gocv.VideoCaptureFrameHeight)),
		fps:    cap.Get(gocv.VideoCaptureFPS),
	}, nil
}

// Read decodes the next frame into dst, returning false at end of stream
func (s *VideoSource) Read(dst *gocv.Mat) bool {
	return s.cap.Read(dst) && !dst.Empty()
}

// Width returns the frame pixel width
func (s *VideoSource) Width() int {
	return s.width
}

// Height returns the frame pixel height
func (s *VideoSource) Height() int {
	return s.height
}

// FPS returns the source frame rate, or 0 when the container does not
// report one
func (s *VideoSource) FPS() float64 {
	return s.fps
}

// File returns the source file path
func (s *VideoSource) File() string {
	return s.file
}

// Close releases the underlying capture
func (s *VideoSource) Close() error {
	return s.cap.Close()
}

// FramePose is one frame's estimated landmarks paired with its index in the
// source video
type FramePose struct {
	Index int
	// Landmarks is nil when the collaborator found no subject in the frame
	Landmarks []Landmark
}

// FrameStream yields estimated frames in strict source order.  Next returns
// false at end of stream.
type FrameStream interface {
	Next() (FramePose, bool)
}

// SliceStream is a FrameStream over an in memory slice of frame poses, used
// for synthetic inputs and replay
type SliceStream struct {
	frames []FramePose
	pos    int
}

// NewSliceStream returns a SliceStream over the given frames
func NewSliceStream(frames []FramePose) *SliceStream {
	return &SliceStream{frames: frames}
}

// Next returns the next frame pose in the slice
func (s *SliceStream) Next() (FramePose, bool) {

	if s.pos >= len(s.frames) {
		return FramePose{}, false
	}

	f := s.frames[s.pos]
	s.pos++

	return f, true
}
