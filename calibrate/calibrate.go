// Package calibrate converts pixel measurements into real world units using
// a known reference: either a reference image at a known subject distance, or
// a known body dimension measured during a stance window of the video.
package calibrate

import (
	"errors"
	"fmt"
)

// ErrCalibration means the reference segment or face could not be measured.
// Processing cannot continue without a scale, so this is fatal to the
// session.
var ErrCalibration = errors.New("calibration failed")

// Method tags how a Profile's scale was obtained
type Method string

const (
	// MethodDistance derives a focal length from a reference image at a
	// known distance
	MethodDistance Method = "distance"
	// MethodAnthropometric derives a pixel scale from a known body
	// dimension
	MethodAnthropometric Method = "anthropometric"
)

// Profile is an immutable pixel to real world conversion computed once per
// processing session.  A profile with Scale <= 0 is invalid and must never
// be used for conversion.
type Profile struct {
	// RealUnits is the known reference dimension in real world units
	RealUnits float64
	// PixelMeasure is the reference measurement in pixels
	PixelMeasure float64
	// Scale is pixels per real world unit
	Scale float64
	// Method tags how the profile was obtained
	Method Method
}

// Valid reports whether the profile may be used for conversion
func (p Profile) Valid() bool {
	return p.Scale > 0
}

// ToUnits converts a pixel distance to real world units
func (p Profile) ToUnits(pixels float64) (float64, error) {

	if !p.Valid() {
		return 0, fmt.Errorf("%w: profile scale %f is not positive",
			ErrCalibration, p.Scale)
	}

	return pixels / p.Scale, nil
}

// Anthropometric builds a Profile from a known real body dimension and the
// matching body segment measurement in pixels, taken during the stance
// window.  Returns ErrCalibration when the window never yielded a valid
// segment measurement.
func Anthropometric(knownRealUnits, measuredPixels float64) (Profile, error) {

	if measuredPixels <= 0 {
		return Profile{}, fmt.Errorf(
			"%w: no valid segment measurement in calibration window", ErrCalibration)
	}

	if knownRealUnits <= 0 {
		return Profile{}, fmt.Errorf(
			"%w: known dimension %f is not positive", ErrCalibration, knownRealUnits)
	}

	return Profile{
		RealUnits:    knownRealUnits,
		PixelMeasure: measuredPixels,
		Scale:        measuredPixels / knownRealUnits,
		Method:       MethodAnthropometric,
	}, nil
}

// DistanceParams holds the known reference values for distance calibration
type DistanceParams struct {
	// KnownDistance is the distance from camera to the reference subject
	// in centimetres
	KnownDistance float64
	// KnownFaceWidth is the real face width in centimetres
	KnownFaceWidth float64
}

// DefaultDistanceParams returns the standard reference values: a subject at
// 60.96cm (2 feet) with a 14.3cm face width
func DefaultDistanceParams() DistanceParams {
	return DistanceParams{
		KnownDistance:  60.96,
		KnownFaceWidth: 14.3,
	}
}

// DistanceCalibrator computes a camera focal length from a reference image
// and estimates subject distance from it
type DistanceCalibrator struct {
	params DistanceParams
	focal  float64
}

// NewDistanceCalibrator returns an uncalibrated DistanceCalibrator
func NewDistanceCalibrator(p DistanceParams) *DistanceCalibrator {
	return &DistanceCalibrator{params: p}
}

// Calibrate computes the focal length from the face width measured in the
// reference image.  Returns ErrCalibration when no face was detected, ie
// the pixel width is zero.
func (d *DistanceCalibrator) Calibrate(pixelFaceWidth float64) (float64, error) {

	if pixelFaceWidth <= 0 {
		return 0, fmt.Errorf("%w: no face detected in reference image", ErrCalibration)
	}

	d.focal = pixelFaceWidth * d.params.KnownDistance / d.params.KnownFaceWidth

	return d.focal, nil
}

// FocalLength returns the computed focal length, or zero before Calibrate
// has succeeded
func (d *DistanceCalibrator) FocalLength() float64 {
	return d.focal
}

// DistanceTo estimates the camera to subject distance in centimetres from a
// measured pixel face width.  Before calibration it falls back to a default
// of 300cm.
func (d *DistanceCalibrator) DistanceTo(pixelFaceWidth float64) float64 {

	if d.focal <= 0 || pixelFaceWidth <= 0 {
		return 300.0
	}

	return d.params.KnownFaceWidth * d.focal / pixelFaceWidth
}
