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

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors reported by [Field.Validate].
var (
	ErrDuplicateAngle = errors.New("duplicate direction weight angle")
	ErrProgressRange  = errors.New("progress outside [0, 1]")
	ErrNegativeMax    = errors.New("negative maximum thickness")
	ErrInvalidValue   = errors.New("invalid thickness value")
)

// DirectionWeight specifies the directional growth for one direction.
type DirectionWeight struct {
	AngleDeg float64 // direction of the inward normal, in degrees
	Value    float64 // growth added to the uniform part, in µm
}

// Field describes how much material grows, depending on the direction of
// the inward normal.
//
// The zero value describes a field without any growth, since Progress is
// zero.  Use NewField to obtain a fully grown uniform field.
type Field struct {
	// Uniform is the direction-independent part of the growth.
	Uniform float64

	// Weights are keyframes of the directional part.  Between keyframes
	// the value is interpolated linearly, wrapping around at 360°.
	Weights []DirectionWeight

	// Mirror averages the directional part at θ with the value at π-θ.
	Mirror bool

	// Progress scales the total growth.  It is clamped to [0, 1].
	Progress float64

	// Max is the upper bound for the growth.
	// If this is zero, DefaultMaxThickness is used.
	Max float64

	// Spacing, if positive, overrides Options.Spacing when the path is
	// sampled.
	Spacing float64
}

// NewField returns a field with uniform growth u and Progress 1.
func NewField(u float64) Field {
	return Field{Uniform: u, Progress: 1}
}

// Validate checks the field for problems.  Evaluation never fails, but
// invalid fields may not give the intended result: duplicate angles are
// dropped, and out-of-range values are clamped.
func (f Field) Validate() error {
	var errs []error
	if !(f.Progress >= 0 && f.Progress <= 1) {
		errs = append(errs, fmt.Errorf("%w: %g", ErrProgressRange, f.Progress))
	}
	if f.Max < 0 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrNegativeMax, f.Max))
	}
	if !isFinite(f.Uniform) {
		errs = append(errs, fmt.Errorf("%w: uniform growth %g", ErrInvalidValue, f.Uniform))
	}
	for i, w := range f.Weights {
		if !isFinite(w.AngleDeg) || !isFinite(w.Value) {
			errs = append(errs, fmt.Errorf("%w: weight %d is (%g°, %g)",
				ErrInvalidValue, i, w.AngleDeg, w.Value))
			continue
		}
		for j := range i {
			v := f.Weights[j]
			if angleDist(rad(w.AngleDeg), rad(v.AngleDeg)) < defaultAngleEpsilon {
				errs = append(errs, fmt.Errorf("%w: weights %d and %d at %g°",
					ErrDuplicateAngle, j, i, w.AngleDeg))
				break
			}
		}
	}
	return errors.Join(errs...)
}

// At returns the growth for inward normal direction theta, in radians.
func (f Field) At(theta float64) float64 {
	return f.compile(defaultAngleEpsilon).at(theta)
}

// EvalThickness returns a copy of samples, with the Thickness field set
// from the direction of each sample's inward normal.
func EvalThickness(samples []SamplePoint, f Field) []SamplePoint {
	return f.compile(defaultAngleEpsilon).apply(samples)
}

const defaultAngleEpsilon = 1e-6

// thicknessFunc is a field prepared for repeated evaluation.
type thicknessFunc struct {
	uniform  float64
	max      float64
	progress float64
	mirror   bool
	angles   []float64 // sorted, in (-π, π]
	values   []float64
}

func (f Field) compile(eps float64) *thicknessFunc {
	c := &thicknessFunc{
		uniform:  f.Uniform,
		max:      f.Max,
		progress: f.Progress,
		mirror:   f.Mirror,
	}
	if !isFinite(c.uniform) {
		c.uniform = 0
	}
	if !(c.max > 0) || math.IsInf(c.max, 0) {
		c.max = DefaultMaxThickness
	}
	if !(c.progress > 0) {
		c.progress = 0
	} else if c.progress > 1 {
		c.progress = 1
	}

	type kw struct{ angle, value float64 }
	var kept []kw
weights:
	for _, w := range f.Weights {
		if !isFinite(w.AngleDeg) || !isFinite(w.Value) {
			continue
		}
		a := normAngle(rad(w.AngleDeg))
		for _, k := range kept {
			if angleDist(a, k.angle) < eps {
				continue weights
			}
		}
		kept = append(kept, kw{a, w.Value})
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].angle < kept[j].angle })
	for _, k := range kept {
		c.angles = append(c.angles, k.angle)
		c.values = append(c.values, k.value)
	}
	return c
}

// directional returns the interpolated directional part at theta.
func (c *thicknessFunc) directional(theta float64) float64 {
	n := len(c.angles)
	switch n {
	case 0:
		return 0
	case 1:
		return c.values[0]
	}

	theta = normAngle(theta)
	i := sort.SearchFloat64s(c.angles, theta)
	if i < n && c.angles[i] == theta {
		return c.values[i]
	}

	var a0, a1, v0, v1 float64
	if i == 0 || i == n {
		a0, v0 = c.angles[n-1], c.values[n-1]
		a1, v1 = c.angles[0]+2*math.Pi, c.values[0]
		if i == 0 {
			theta += 2 * math.Pi
		}
	} else {
		a0, v0 = c.angles[i-1], c.values[i-1]
		a1, v1 = c.angles[i], c.values[i]
	}
	if a1-a0 <= 0 {
		return v0
	}
	s := (theta - a0) / (a1 - a0)
	return v0 + s*(v1-v0)
}

func (c *thicknessFunc) at(theta float64) float64 {
	if c.progress == 0 {
		return 0
	}
	d := c.directional(theta)
	if c.mirror {
		d = (d + c.directional(math.Pi-theta)) / 2
	}
	total := clamp(c.uniform+d, 0, c.max)
	return clamp(total*c.progress, 0, c.max)
}

func (c *thicknessFunc) apply(samples []SamplePoint) []SamplePoint {
	res := make([]SamplePoint, len(samples))
	for i, s := range samples {
		s.Thickness = c.at(s.Inward())
		res[i] = s
	}
	return res
}

func clamp(x, lo, hi float64) float64 {
	if !(x > lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// normAngle maps theta into (-π, π].
func normAngle(theta float64) float64 {
	a := math.Remainder(theta, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// angleDist returns the distance between two angles on the circle.
func angleDist(a, b float64) float64 {
	return math.Abs(normAngle(a - b))
}
