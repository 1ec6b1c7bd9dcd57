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

// closedEnvelope computes the inner contour of a closed path.  If flipped
// is set, the normals of the samples were negated because the path runs
// clockwise.
func closedEnvelope(samples []SamplePoint, flipped bool, o *Options) ([]vec.Vec2, [][]vec.Vec2) {
	n := len(samples)
	if !hasGrowth(samples, o) {
		inner := positions(samples)
		return inner, [][]vec.Vec2{positions(samples)}
	}

	naive := make([]vec.Vec2, n)
	for i, s := range samples {
		naive[i] = s.Pos.Sub(s.Normal.Mul(s.Thickness))
	}

	disks := disksFor(samples)
	points := make([]vec.Vec2, n)
	minGap := o.DedupeFraction * o.Spacing
	var dense []vec.Vec2
	fallbacks := 0
	for i, s := range samples {
		ep := selectPoint(disks[i], s, visibleArcs(disks, i, o), o)
		points[i] = ep.Point
		if !ep.Found {
			fallbacks++
			continue
		}
		walk := ep.Walk
		if !flipped {
			// counter-clockwise paths advance in the direction of
			// decreasing angle on the inner side of each disk
			walk = reversed(walk)
		}
		for _, q := range walk {
			if m := len(dense); m > 0 && q.Sub(dense[m-1]).Length() < minGap {
				continue
			}
			dense = append(dense, q)
		}
	}
	for len(dense) > 1 && dense[len(dense)-1].Sub(dense[0]).Length() < minGap {
		dense = dense[:len(dense)-1]
	}
	if fallbacks > 0 {
		Logger().Debug("naive offset points substituted",
			"samples", n, "fallbacks", fallbacks)
	}

	var loop []vec.Vec2
	if len(dense) >= 3 && polylineLength(dense, true) > o.Epsilon {
		loop = alignLoop(resampleLoop(dense, n), naive)
	} else {
		Logger().Debug("dense envelope loop unusable, using per-sample points",
			"points", len(dense))
		dense = points
		loop = points
	}
	loop = smoothInner(loop, samples, true, o)
	enforceMinOffset(loop, samples)

	inner := loop
	var polys [][]vec.Vec2
	if crossings := selfIntersections(loop, true); len(crossings) > 0 {
		Logger().Debug("inner contour self-intersects, running cleanup",
			"crossings", len(crossings))
		loops := o.Cleaner.Clean(dense, o.CleanupTolerance)
		if primary := largestLoop(loops); len(primary) >= 3 {
			fixed := alignLoop(resampleLoop(primary, n), naive)
			enforceMinOffset(fixed, samples)
			inner = fixed
			polys = loops
		} else {
			Logger().Debug("cleanup produced no loop, keeping smoothed contour")
		}
	}

	pinZero(inner, samples, o.RadiusEpsilon)
	if polys == nil {
		p := make([]vec.Vec2, len(inner))
		copy(p, inner)
		polys = [][]vec.Vec2{p}
	}
	return inner, polys
}

// openEnvelope computes the inner contour of an open path with at least
// two samples, together with the region covered by the grown material.
func openEnvelope(samples []SamplePoint, tf *thicknessFunc, o *Options) ([]vec.Vec2, [][]vec.Vec2) {
	n := len(samples)
	if !hasGrowth(samples, o) {
		return positions(samples), nil
	}

	disks := disksFor(samples)
	points := make([]vec.Vec2, n)
	material := make([][]vec.Vec2, n)
	fallbacks := 0
	for i, s := range samples {
		vis := visibleArcs(disks, i, o)
		ep := selectPoint(disks[i], s, vis, o)
		points[i] = ep.Point
		if !ep.Found {
			fallbacks++
		}
		material[i] = materialArcs(disks[i], s, vis, o)
	}
	if fallbacks > 0 {
		Logger().Debug("naive offset points substituted",
			"samples", n, "fallbacks", fallbacks)
	}

	inner := smoothInner(points, samples, false, o)
	enforceMinOffset(inner, samples)
	pinZero(inner, samples, o.RadiusEpsilon)

	// The band runs forward along the outer contour and back along the
	// visible disk boundaries.
	band := positions(samples)
	for i := n - 1; i >= 0; i-- {
		band = append(band, material[i]...)
	}
	polys := [][]vec.Vec2{band}
	for _, s := range []SamplePoint{samples[0], samples[n-1]} {
		if patch := compassPatch(s.Pos, tf, o); patch != nil {
			polys = append(polys, patch)
		}
	}

	if u, ok := o.Cleaner.(Unioner); ok {
		if merged := u.Union(polys, o.CleanupTolerance); len(merged) > 0 {
			polys = merged
		} else {
			Logger().Debug("union of open path material failed, keeping raw polygons")
		}
	}
	return inner, polys
}

// singlePoint handles paths which consist of a single sample.  The inner
// contour is the compass patch around the point.
func singlePoint(s SamplePoint, tf *thicknessFunc, o *Options) ([]vec.Vec2, [][]vec.Vec2) {
	patch := compassPatch(s.Pos, tf, o)
	if patch == nil {
		return []vec.Vec2{s.Pos}, nil
	}
	poly := make([]vec.Vec2, len(patch))
	copy(poly, patch)
	return patch, [][]vec.Vec2{poly}
}

// compassPatch returns a polygon around center, reaching as far in each
// direction as the field grows in that direction.  The result is nil if
// there is no growth in any direction.
func compassPatch(center vec.Vec2, tf *thicknessFunc, o *Options) []vec.Vec2 {
	m := o.CompassSegments
	pts := make([]vec.Vec2, m)
	var maxR float64
	for k := range m {
		theta := twoPi * float64(k) / float64(m)
		r := tf.at(theta)
		pts[k] = center.Add(dir(theta).Mul(r))
		maxR = max(maxR, r)
	}
	if maxR <= o.RadiusEpsilon {
		return nil
	}
	return pts
}

func hasGrowth(samples []SamplePoint, o *Options) bool {
	for _, s := range samples {
		if s.Thickness > o.RadiusEpsilon {
			return true
		}
	}
	return false
}

// resampleLoop places n points at equal arc length distances along the
// closed polygon pts, starting at pts[0].
func resampleLoop(pts []vec.Vec2, n int) []vec.Vec2 {
	m := len(pts)
	if n <= 0 || m == 0 {
		return nil
	}
	res := make([]vec.Vec2, 0, n)
	total := polylineLength(pts, true)
	if !(total > 0) {
		for range n {
			res = append(res, pts[0])
		}
		return res
	}

	step := total / float64(n)
	seg := 0
	segStart := 0.0
	for k := range n {
		target := step * float64(k)
		for {
			a, b := pts[seg], pts[(seg+1)%m]
			l := b.Sub(a).Length()
			if target <= segStart+l || seg == m-1 {
				s := 0.0
				if l > 0 {
					s = clamp((target-segStart)/l, 0, 1)
				}
				res = append(res, a.Add(b.Sub(a).Mul(s)))
				break
			}
			segStart += l
			seg++
		}
	}
	return res
}

// alignLoop rotates and possibly reverses loop so that it matches ref as
// closely as possible, measured by the sum of squared distances.  Both
// slices must have the same length.  Ties are resolved in favour of the
// forward direction and the smallest shift.
func alignLoop(loop, ref []vec.Vec2) []vec.Vec2 {
	n := len(loop)
	if n == 0 || len(ref) != n {
		return loop
	}

	index := func(shift, k int, rev bool) int {
		if rev {
			return ((shift-k)%n + n) % n
		}
		return (shift + k) % n
	}

	bestShift, bestRev := 0, false
	bestSSD := math.Inf(1)
	for _, rev := range []bool{false, true} {
		for shift := range n {
			var ssd float64
			for k := range n {
				d := loop[index(shift, k, rev)].Sub(ref[k])
				ssd += d.Dot(d)
				if ssd >= bestSSD {
					break
				}
			}
			if ssd < bestSSD {
				bestShift, bestRev, bestSSD = shift, rev, ssd
			}
		}
	}

	res := make([]vec.Vec2, n)
	for k := range n {
		res[k] = loop[index(bestShift, k, bestRev)]
	}
	return res
}
