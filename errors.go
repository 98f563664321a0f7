package motionmetrics

import "errors"

var (
	// ErrSourceUnreadable means the video source could not be opened.  Fatal,
	// no processing is attempted.
	ErrSourceUnreadable = errors.New("video source unreadable")

	// ErrNoSubjectDetected means no usable landmarks were found across the
	// whole video.  Surfaced as the FailureReason of a failed result rather
	// than aborting.
	ErrNoSubjectDetected = errors.New("no subject detected")

	// ErrSessionConsumed means a Session was fed frames after it was
	// finalised.  Sessions are single use, one per video.
	ErrSessionConsumed = errors.New("session already finalised")
)
