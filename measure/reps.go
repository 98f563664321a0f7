package measure

// RepResult is the immutable outcome of repetition counting over one video.
// The count is exactly the number of UP to DOWN transitions the state
// machine recorded, with no post hoc filtering.
type RepResult struct {
	// Count is the number of completed repetitions
	Count int `json:"counter"`
	// Position is the state machine position at end of video
	Position string `json:"position"`
	// TotalFrames is the number of frames processed
	TotalFrames int `json:"total_frames"`
	// Mode names the exercise variant
	Mode string `json:"mode"`
}
