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

import "seehuhn.de/go/geom/vec"

// Length returns the length of the polyline through the sample positions.
// For closed paths the span from the last sample back to the first is
// included.
func Length(samples []SamplePoint, closed bool) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	var l float64
	for i := 1; i < n; i++ {
		l += samples[i].Pos.Sub(samples[i-1].Pos).Length()
	}
	if closed {
		l += samples[0].Pos.Sub(samples[n-1].Pos).Length()
	}
	return l
}

func positions(samples []SamplePoint) []vec.Vec2 {
	res := make([]vec.Vec2, len(samples))
	for i, s := range samples {
		res[i] = s.Pos
	}
	return res
}

// polylineLength is Length for plain points.
func polylineLength(pts []vec.Vec2, closed bool) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}
	var l float64
	for i := 1; i < n; i++ {
		l += pts[i].Sub(pts[i-1]).Length()
	}
	if closed {
		l += pts[0].Sub(pts[n-1]).Length()
	}
	return l
}
