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
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// CurveEvaluator evaluates a cubic Bézier segment given by its four
// control points.
type CurveEvaluator interface {
	// Eval returns the position and the first derivative at parameter t.
	Eval(c [4]vec.Vec2, t float64) (pos, deriv vec.Vec2)
}

// ArcLengther is an optional interface for curve evaluators which can
// compute the length of a segment directly.
type ArcLengther interface {
	ArcLength(c [4]vec.Vec2, accuracy float64) float64
}

// Tangenter is an optional interface for curve evaluators which can find
// the start and end directions of segments with vanishing derivative.
type Tangenter interface {
	Tangents(c [4]vec.Vec2) (start, end vec.Vec2)
}

// BezierEvaluator is the default CurveEvaluator.
type BezierEvaluator struct{}

func toCubic(c [4]vec.Vec2) curve.CubicBez {
	return curve.CubicBez{
		P0: curve.Pt(c[0].X, c[0].Y),
		P1: curve.Pt(c[1].X, c[1].Y),
		P2: curve.Pt(c[2].X, c[2].Y),
		P3: curve.Pt(c[3].X, c[3].Y),
	}
}

// Eval implements [CurveEvaluator].
func (BezierEvaluator) Eval(c [4]vec.Vec2, t float64) (vec.Vec2, vec.Vec2) {
	cb := toCubic(c)
	p := cb.Eval(t)
	d := cb.Differentiate().Eval(t)
	return vec.Vec2{X: p.X, Y: p.Y}, vec.Vec2{X: d.X, Y: d.Y}
}

// ArcLength implements [ArcLengther].
func (BezierEvaluator) ArcLength(c [4]vec.Vec2, accuracy float64) float64 {
	return toCubic(c).Arclen(accuracy)
}

// Tangents implements [Tangenter].
func (BezierEvaluator) Tangents(c [4]vec.Vec2) (vec.Vec2, vec.Vec2) {
	d0, d1 := toCubic(c).Tangents()
	return vec.Vec2{X: d0.X, Y: d0.Y}, vec.Vec2{X: d1.X, Y: d1.Y}
}

// segmentLength estimates the length of c, using ev's own arc length
// computation if available and a polyline through n+1 evaluations
// otherwise.
func segmentLength(ev CurveEvaluator, c [4]vec.Vec2, accuracy float64, n int) float64 {
	if al, ok := ev.(ArcLengther); ok {
		return al.ArcLength(c, accuracy)
	}
	if n < 16 {
		n = 16
	}
	var l float64
	prev, _ := ev.Eval(c, 0)
	for i := 1; i <= n; i++ {
		p, _ := ev.Eval(c, float64(i)/float64(n))
		l += p.Sub(prev).Length()
		prev = p
	}
	return l
}

// secondDerivative returns the second derivative of the cubic c at t.
func secondDerivative(c [4]vec.Vec2, t float64) vec.Vec2 {
	a := c[2].Sub(c[1].Mul(2)).Add(c[0])
	b := c[3].Sub(c[2].Mul(2)).Add(c[1])
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}
