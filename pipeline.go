package motionmetrics

import (
	"context"
	"sync"

	"gocv.io/x/gocv"
)

// DefaultPrefetch is the default bounded prefetch depth between the decode
// stage and pose inference
const DefaultPrefetch = 8

// decodedFrame pairs a decoded frame with its index in the source video
type decodedFrame struct {
	index int
	img   gocv.Mat
}

// VideoStream runs the decode stage ahead of pose inference through a bounded
// prefetch buffer.  Frames are delivered to Next strictly in source order.
type VideoStream struct {
	src    *VideoSource
	est    PoseEstimator
	frames chan decodedFrame
	cancel context.CancelFunc
	close  sync.Once
}

// NewVideoStream starts a prefetching frame stream over the given source and
// estimator.  Cancelling the context aborts the pass entirely; the caller
// must not use any partially accumulated state afterwards.
func NewVideoStream(ctx context.Context, src *VideoSource, est PoseEstimator,
	prefetch int) *VideoStream {

	if prefetch < 1 {
		prefetch = DefaultPrefetch
	}

	ctx, cancel := context.WithCancel(ctx)

	v := &VideoStream{
		src:    src,
		est:    est,
		frames: make(chan decodedFrame, prefetch),
		cancel: cancel,
	}

	go v.decode(ctx)

	return v
}

// decode reads frames from the source in order until end of stream or
// cancellation
func (v *VideoStream) decode(ctx context.Context) {

	defer close(v.frames)

	for index := 0; ; index++ {

		img := gocv.NewMat()

		if !v.src.Read(&img) {
			img.Close()
			return
		}

		select {
		case v.frames <- decodedFrame{index: index, img: img}:
		case <-ctx.Done():
			img.Close()
			return
		}
	}
}

// Next runs pose inference on the next decoded frame.  Inference is kept
// sequential so no cross frame result is ever produced out of order.
func (v *VideoStream) Next() (FramePose, bool) {

	frame, ok := <-v.frames

	if !ok {
		return FramePose{}, false
	}

	landmarks, found := v.est.EstimatePose(frame.img)
	frame.img.Close()

	if !found {
		landmarks = nil
	}

	return FramePose{Index: frame.index, Landmarks: landmarks}, true
}

// Close stops the decode stage and drains any buffered frames
func (v *VideoStream) Close() {
	v.close.Do(func() {
		v.cancel()

		for frame := range v.frames {
			frame.img.Close()
		}
	})
}
