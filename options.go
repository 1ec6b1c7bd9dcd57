// seehuhn.de/go/oxide - growth contours for 2D sketches
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package oxide

const (
	defaultSpacing          = 1.0
	defaultMinSamples       = 4
	defaultArcAccuracy      = 1e-3
	defaultNormalWindow     = 2
	defaultArcSteps         = 360
	defaultDedupeFraction   = 0.25
	defaultSmoothIterations = 3
	defaultSmoothDamping    = 0.5
	defaultCleanupTolerance = 1e-3
	defaultCompassSegments  = 72

	// DefaultMaxThickness is the upper clamp of a Field with Max == 0.
	DefaultMaxThickness = 1000.0
)

// Options holds the tuning parameters of the geometry pipeline.
// The zero value is not useful; start from DefaultOptions.
type Options struct {
	// Spacing is the target distance between consecutive samples, used when
	// the thickness field does not set its own spacing. Must be positive.
	Spacing float64

	// MinSamples is the minimum number of steps per Bézier segment.
	MinSamples int

	// ArcAccuracy is the absolute accuracy of segment length estimates.
	ArcAccuracy float64

	// NormalWindow is the half-width of the tangent averaging window.
	// Zero disables smoothing of the normal field.
	NormalWindow int

	// ArcSteps is the number of steps per full turn used when walking a
	// visible arc of an envelope disk.
	ArcSteps int

	// DedupeFraction is the fraction of the sample spacing below which
	// neighbouring points of the dense envelope loop are merged.
	DedupeFraction float64

	// SmoothIterations and SmoothDamping control the Laplacian smoothing
	// of the inner contour. Damping must be in [0, 1].
	SmoothIterations int
	SmoothDamping    float64

	// CleanupTolerance is the coordinate resolution handed to the polygon
	// cleaner when self-intersections have to be removed.
	CleanupTolerance float64

	// CompassSegments is the number of vertices of an endpoint patch.
	CompassSegments int

	// RestrictToInward limits the arcs accumulated for open paths to the
	// half-plane facing into the material.
	RestrictToInward bool

	// Epsilon is the distance below which two points are considered equal.
	Epsilon float64

	// RadiusEpsilon is the radius below which an envelope disk is empty.
	RadiusEpsilon float64

	// AngleEpsilon is the angular tolerance, in radians, for duplicate
	// direction weights and for empty arcs.
	AngleEpsilon float64

	// Curve evaluates the Bézier segments of a path.
	// If nil, BezierEvaluator is used.
	Curve CurveEvaluator

	// Cleaner removes self-intersections from the inner contour.
	// If nil, ClipperCleaner is used.
	Cleaner PolygonCleaner
}

// DefaultOptions returns the options used when nil is passed to Compute.
func DefaultOptions() *Options {
	return &Options{
		Spacing:          defaultSpacing,
		MinSamples:       defaultMinSamples,
		ArcAccuracy:      defaultArcAccuracy,
		NormalWindow:     defaultNormalWindow,
		ArcSteps:         defaultArcSteps,
		DedupeFraction:   defaultDedupeFraction,
		SmoothIterations: defaultSmoothIterations,
		SmoothDamping:    defaultSmoothDamping,
		CleanupTolerance: defaultCleanupTolerance,
		CompassSegments:  defaultCompassSegments,
		RestrictToInward: true,
		Epsilon:          1e-9,
		RadiusEpsilon:    1e-6,
		AngleEpsilon:     1e-6,
	}
}

// resolve returns a copy of opt with unusable values replaced by defaults.
func (opt *Options) resolve() *Options {
	def := DefaultOptions()
	if opt == nil {
		opt = def
	}
	o := *opt
	if !(o.Spacing > 0) {
		o.Spacing = def.Spacing
	}
	if o.MinSamples < 1 {
		o.MinSamples = 1
	}
	if !(o.ArcAccuracy > 0) {
		o.ArcAccuracy = def.ArcAccuracy
	}
	if o.NormalWindow < 0 {
		o.NormalWindow = 0
	}
	if o.ArcSteps < 4 {
		o.ArcSteps = def.ArcSteps
	}
	if !(o.DedupeFraction >= 0) {
		o.DedupeFraction = def.DedupeFraction
	}
	if o.SmoothIterations < 0 {
		o.SmoothIterations = 0
	}
	o.SmoothDamping = max(0, min(1, o.SmoothDamping))
	if !(o.CleanupTolerance > 0) {
		o.CleanupTolerance = def.CleanupTolerance
	}
	if o.CompassSegments < 3 {
		o.CompassSegments = def.CompassSegments
	}
	if !(o.Epsilon > 0) {
		o.Epsilon = def.Epsilon
	}
	if !(o.RadiusEpsilon > 0) {
		o.RadiusEpsilon = def.RadiusEpsilon
	}
	if !(o.AngleEpsilon > 0) {
		o.AngleEpsilon = def.AngleEpsilon
	}
	if o.Curve == nil {
		o.Curve = BezierEvaluator{}
	}
	if o.Cleaner == nil {
		o.Cleaner = ClipperCleaner{}
	}
	return &o
}
