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

// perp returns the normal belonging to the unit tangent t.
// For a counter-clockwise contour this points away from the enclosed area.
func perp(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: t.Y, Y: -t.X}
}

// cross returns the z component of a×b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// unit returns v scaled to length one, and false if v is too short to
// have a direction.
func unit(v vec.Vec2, eps float64) (vec.Vec2, bool) {
	l := v.Length()
	if l <= eps || math.IsNaN(l) || math.IsInf(l, 0) {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// dir returns the unit vector with angle theta.
func dir(theta float64) vec.Vec2 {
	return vec.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// angleOf returns the angle of v in (-π, π].
func angleOf(v vec.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// finite reports whether both coordinates of v are finite numbers.
func finite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// SignedArea returns the signed area of the closed polygon through pts.
// The result is positive for counter-clockwise polygons in a y-up
// coordinate system.
func SignedArea(pts []vec.Vec2) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var a float64
	prev := pts[n-1]
	for _, p := range pts {
		a += cross(prev, p)
		prev = p
	}
	return a / 2
}

// segmentsCross reports whether the segments ab and cd properly intersect.
// Touching endpoints and collinear overlaps do not count.
func segmentsCross(a, b, c, d vec.Vec2) bool {
	d1 := cross(b.Sub(a), c.Sub(a))
	d2 := cross(b.Sub(a), d.Sub(a))
	d3 := cross(d.Sub(c), a.Sub(c))
	d4 := cross(d.Sub(c), b.Sub(c))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
