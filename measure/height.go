// Package measure aggregates calibration, detected events and trajectories
// into final measurement results.  All functions here are pure over their
// inputs: nothing reads mutable session state after the video pass ends.
package measure

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CMPerFoot converts centimetres to feet
const CMPerFoot = 30.48

// HeightParams configures standing height aggregation
type HeightParams struct {
	// ScaleFactor is the empirical pixel to centimetre constant applied to
	// the head to ankle pixel distance.  It is independent of the distance
	// calibration focal length.
	ScaleFactor float64
	// MinPlausibleCM and MaxPlausibleCM bound the plausible human height
	// range; candidates outside it are discarded before aggregation
	MinPlausibleCM float64
	MaxPlausibleCM float64
	// MinMeasurements is the minimum number of surviving candidates needed
	// for a successful result
	MinMeasurements int
}

// DefaultHeightParams returns the standard height aggregation parameters
func DefaultHeightParams() HeightParams {
	return HeightParams{
		ScaleFactor:     0.15,
		MinPlausibleCM:  120,
		MaxPlausibleCM:  220,
		MinMeasurements: 1,
	}
}

// HeightResult is the immutable outcome of height measurement over one video
type HeightResult struct {
	// Success is false when fewer valid measurements than the minimum
	// survived; the reason is then in FailureReason
	Success       bool   `json:"success"`
	FailureReason string `json:"failure_reason,omitempty"`
	// HeightCM is the median of surviving candidates
	HeightCM float64 `json:"height_cm"`
	// HeightFT is HeightCM converted to feet
	HeightFT float64 `json:"height_ft"`
	// MeanCM is the mean of surviving candidates, reported for comparison
	MeanCM float64 `json:"average_height_cm"`
	// Measurements is the number of candidates that survived the range
	// filter
	Measurements int `json:"measurements_count"`
	// Confidence grows with measurement count, capped at 100
	Confidence int `json:"confidence"`
	// TotalFrames is the number of frames in the source video
	TotalFrames int `json:"total_frames"`
}

// HeightCandidate turns a per frame head to ankle pixel distance into a
// height candidate in whole centimetres
func HeightCandidate(headX, headY, feetX, feetY float64, p HeightParams) float64 {

	d := math.Hypot(feetX-headX, feetY-headY)

	return math.Round(d * p.ScaleFactor)
}

// AggregateHeight applies the range filter and robust statistics to the per
// frame height candidates.  Out of range candidates are discarded silently:
// an implausible frame is an outlier, not an error.
func AggregateHeight(candidates []float64, p HeightParams) HeightResult {

	valid := make([]float64, 0, len(candidates))

	for _, c := range candidates {
		if c < p.MinPlausibleCM || c > p.MaxPlausibleCM {
			continue
		}
		valid = append(valid, c)
	}

	if len(valid) < p.MinMeasurements || len(valid) == 0 {
		return HeightResult{
			Success: false,
			FailureReason: "no valid height measurements found, ensure the " +
				"subject is standing straight and fully visible",
			Measurements: len(valid),
		}
	}

	sort.Float64s(valid)

	median := medianSorted(valid)
	mean := stat.Mean(valid, nil)

	confidence := len(valid) * 15

	if confidence > 100 {
		confidence = 100
	}

	return HeightResult{
		Success:      true,
		HeightCM:     roundTo(median, 1),
		HeightFT:     roundTo(median/CMPerFoot, 1),
		MeanCM:       roundTo(mean, 1),
		Measurements: len(valid),
		Confidence:   confidence,
	}
}

// medianSorted returns the median of a sorted slice, averaging the two
// middle values on even counts
func medianSorted(x []float64) float64 {

	n := len(x)

	if n%2 == 0 {
		return (x[n/2-1] + x[n/2]) / 2
	}

	return x[n/2]
}

// roundTo rounds v to the given number of decimal places
func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
