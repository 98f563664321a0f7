/*
go-motionmetrics turns per-frame body-joint coordinates produced by a pose
estimation model into calibrated human motion measurements: repetition counts,
standing height, and vertical jump displacement with timing.

The pipeline makes a single offline pass over a finite recorded video.  Frames
are decoded in order, landmarks are normalised into named joint records,
accumulated into per joint trajectories, and once the pass completes the
trajectories are fed through calibration, event detection and robust metric
aggregation to produce an immutable result.

The pose model itself is an external collaborator behind the PoseEstimator
interface.  Video decoding uses GoCV.

See example usage in the cmd subdirectory.
*/
package motionmetrics
