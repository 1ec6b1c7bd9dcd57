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
	"math"

	"seehuhn.de/go/geom/vec"
)

// SamplePoint is a point on the outer contour of a path.
type SamplePoint struct {
	Pos     vec.Vec2
	Tangent vec.Vec2 // unit length
	Normal  vec.Vec2 // unit length, pointing away from the material

	// Thickness is the growth at this point, measured along the inward
	// normal.
	Thickness float64

	// Curvature is the signed curvature of the segment at this point.
	Curvature float64

	// Arc is the distance along the sampled polyline from the first sample.
	Arc float64

	// Segment is the index of the Bézier segment the sample belongs to.
	Segment int
}

// Inward returns the angle of the inward normal.
func (s SamplePoint) Inward() float64 {
	return angleOf(s.Normal.Mul(-1))
}

// Sampling is the result of sampling a path.
type Sampling struct {
	Samples []SamplePoint
	Length  float64 // sum of the segment arc lengths
	Closed  bool
}

// Sample converts a path into a dense sequence of points.
// Each segment is divided into max(MinSamples, ⌈length/Spacing⌉) steps.
func Sample(p Path, opt *Options) Sampling {
	o := opt.resolve()
	return sample(p, o, func(length float64) int {
		return max(o.MinSamples, int(math.Ceil(length/o.Spacing)))
	})
}

// SampleUniform is like Sample, but divides every segment into the same
// number of steps, independent of the segment length.
func SampleUniform(p Path, steps int, opt *Options) Sampling {
	o := opt.resolve()
	steps = max(steps, 1)
	return sample(p, o, func(float64) int { return steps })
}

func sample(p Path, o *Options, stepsFor func(length float64) int) Sampling {
	nodes, closed := p.normalized(o.Epsilon)
	res := Sampling{Closed: closed}
	if len(nodes) == 0 {
		return res
	}

	segs, _ := p.segments(o.Epsilon)
	lengths := make([]float64, len(segs))
	lastSeg := -1
	for i, s := range segs {
		lengths[i] = segmentLength(o.Curve, s, o.ArcAccuracy, o.MinSamples)
		if lengths[i] > o.Epsilon {
			lastSeg = i
		}
	}

	if lastSeg < 0 {
		// A single node, or all segments collapsed to a point.
		res.Closed = false
		res.Samples = []SamplePoint{{
			Pos:     nodes[0].Anchor,
			Tangent: vec.Vec2{X: 1},
			Normal:  perp(vec.Vec2{X: 1}),
		}}
		return res
	}

	tangent := vec.Vec2{X: 1}
	for si, s := range segs {
		l := lengths[si]
		if l <= o.Epsilon {
			continue
		}
		res.Length += l

		n := stepsFor(l)
		last := n - 1
		if !closed && si == lastSeg {
			last = n
		}
		for k := 0; k <= last; k++ {
			t := float64(k) / float64(n)
			pos, d := o.Curve.Eval(s, t)
			if !finite(pos) {
				continue
			}
			if m := len(res.Samples); m > 0 && pos.Sub(res.Samples[m-1].Pos).Length() <= o.Epsilon {
				continue
			}

			tangent = segmentTangent(o, s, t, d, tangent)
			var curv float64
			if dl := d.Length(); dl > o.Epsilon && finite(d) {
				curv = cross(d, secondDerivative(s, t)) / (dl * dl * dl)
			}

			var arc float64
			if m := len(res.Samples); m > 0 {
				prev := res.Samples[m-1]
				arc = prev.Arc + pos.Sub(prev.Pos).Length()
			}
			res.Samples = append(res.Samples, SamplePoint{
				Pos:       pos,
				Tangent:   tangent,
				Normal:    perp(tangent),
				Curvature: curv,
				Arc:       arc,
				Segment:   si,
			})
		}
	}

	if closed {
		m := len(res.Samples)
		if m > 1 && res.Samples[m-1].Pos.Sub(res.Samples[0].Pos).Length() <= o.Epsilon {
			res.Samples = res.Samples[:m-1]
		}
		if len(res.Samples) < 3 {
			res.Closed = false
		}
	}
	return res
}

// segmentTangent returns the unit tangent of s at t, given the derivative
// d there. Where the derivative vanishes, the end tangents of the segment
// are used, then the chord, and finally the previous tangent.
func segmentTangent(o *Options, s segment, t float64, d, prev vec.Vec2) vec.Vec2 {
	if u, ok := unit(d, o.Epsilon); ok {
		return u
	}
	if tg, ok := o.Curve.(Tangenter); ok {
		d0, d1 := tg.Tangents(s)
		dt := d0
		if t > 0.5 {
			dt = d1
		}
		if u, ok := unit(dt, o.Epsilon); ok {
			return u
		}
	}
	if u, ok := unit(s[3].Sub(s[0]), o.Epsilon); ok {
		return u
	}
	return prev
}
