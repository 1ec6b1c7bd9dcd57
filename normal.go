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

// BuildNormals returns a copy of samples where each tangent is replaced by
// the average of the tangents in the window [i-halfWidth, i+halfWidth].
// The window wraps around for closed paths and is truncated at the ends
// of open paths.  The normal of every sample is set to (t.Y, -t.X).
func BuildNormals(samples []SamplePoint, closed bool, halfWidth int) []SamplePoint {
	n := len(samples)
	res := make([]SamplePoint, n)
	copy(res, samples)
	if halfWidth < 0 {
		halfWidth = 0
	}
	if closed && 2*halfWidth+1 > n {
		halfWidth = (n - 1) / 2
	}

	for i := range res {
		var sum vec.Vec2
		for k := i - halfWidth; k <= i+halfWidth; k++ {
			j := k
			if closed {
				j = ((k % n) + n) % n
			} else if j < 0 || j >= n {
				continue
			}
			sum = sum.Add(samples[j].Tangent)
		}
		t, ok := unit(sum, 1e-12)
		if !ok {
			t = samples[i].Tangent
		}
		res[i].Tangent = t
		res[i].Normal = perp(t)
	}
	return res
}

// flipNormals negates all normals in place.
func flipNormals(samples []SamplePoint) {
	for i := range samples {
		samples[i].Normal = samples[i].Normal.Mul(-1)
	}
}
