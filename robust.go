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

	"github.com/ctessum/go.clipper"
	"seehuhn.de/go/geom/vec"
)

// PolygonCleaner turns a possibly self-intersecting loop into simple
// loops.
type PolygonCleaner interface {
	// Clean returns the simple loops making up the region enclosed by
	// loop, using the nonzero winding rule.  Coordinates closer than
	// tolerance may be merged.
	Clean(loop []vec.Vec2, tolerance float64) [][]vec.Vec2
}

// Unioner is an optional interface for polygon cleaners which can merge
// several polygons into one region.
type Unioner interface {
	Union(polys [][]vec.Vec2, tolerance float64) [][]vec.Vec2
}

// ClipperCleaner is the default PolygonCleaner.
// It works on an integer grid with cell size equal to the tolerance.
type ClipperCleaner struct{}

// cleanDistance is the distance, in grid cells, below which clipper
// merges vertices.
const cleanDistance = 1.415

// Clean implements [PolygonCleaner].
func (ClipperCleaner) Clean(loop []vec.Vec2, tolerance float64) [][]vec.Vec2 {
	if len(loop) < 3 || !(tolerance > 0) {
		return nil
	}
	c := clipper.NewClipper(clipper.IoNone)
	simple := c.SimplifyPolygon(toClipper(loop, tolerance), clipper.PftNonZero)
	simple = c.CleanPolygons(simple, cleanDistance)
	return fromClipper(simple, tolerance)
}

// Union implements [Unioner].
func (ClipperCleaner) Union(polys [][]vec.Vec2, tolerance float64) [][]vec.Vec2 {
	if !(tolerance > 0) {
		return nil
	}
	var in clipper.Paths
	for _, p := range polys {
		if len(p) >= 3 {
			in = append(in, toClipper(p, tolerance))
		}
	}
	if len(in) == 0 {
		return nil
	}
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(in, clipper.PtSubject, true)
	out, ok := c.Execute1(clipper.CtUnion, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil
	}
	return fromClipper(out, tolerance)
}

func toClipper(loop []vec.Vec2, tolerance float64) clipper.Path {
	scale := 1 / tolerance
	res := make(clipper.Path, 0, len(loop))
	for _, p := range loop {
		if !finite(p) {
			continue
		}
		res = append(res, &clipper.IntPoint{X: clipper.Round(p.X * scale), Y: clipper.Round(p.Y * scale)})
	}
	return res
}

func fromClipper(paths clipper.Paths, tolerance float64) [][]vec.Vec2 {
	var res [][]vec.Vec2
	for _, p := range paths {
		if len(p) < 3 {
			continue
		}
		loop := make([]vec.Vec2, len(p))
		for i, q := range p {
			loop[i] = vec.Vec2{X: float64(q.X) * tolerance, Y: float64(q.Y) * tolerance}
		}
		res = append(res, loop)
	}
	return res
}

// smooth applies Laplacian smoothing to pts.  Each iteration moves every
// point towards the midpoint of its neighbours by the given damping
// factor.  The end points of open polylines stay fixed.
func smooth(pts []vec.Vec2, closed bool, iterations int, damping float64) []vec.Vec2 {
	n := len(pts)
	cur := make([]vec.Vec2, n)
	copy(cur, pts)
	if n < 3 || iterations <= 0 || damping == 0 {
		return cur
	}
	next := make([]vec.Vec2, n)
	for range iterations {
		for i := range n {
			var prev, succ vec.Vec2
			switch {
			case closed:
				prev, succ = cur[(i+n-1)%n], cur[(i+1)%n]
			case i == 0 || i == n-1:
				next[i] = cur[i]
				continue
			default:
				prev, succ = cur[i-1], cur[i+1]
			}
			mid := prev.Add(succ).Mul(0.5)
			next[i] = cur[i].Add(mid.Sub(cur[i]).Mul(damping))
		}
		cur, next = next, cur
	}
	return cur
}

// smoothInner smooths the inner points belonging to samples.  After each
// iteration, no point lies deeper in the material than it did before
// smoothing, or than its thickness if that is larger.
func smoothInner(inner []vec.Vec2, samples []SamplePoint, closed bool, o *Options) []vec.Vec2 {
	limit := make([]float64, len(inner))
	for i, p := range inner {
		limit[i] = max(inwardTravel(p, samples[i]), samples[i].Thickness)
	}
	res := make([]vec.Vec2, len(inner))
	copy(res, inner)
	for range o.SmoothIterations {
		res = smooth(res, closed, 1, o.SmoothDamping)
		for i, p := range res {
			if excess := inwardTravel(p, samples[i]) - limit[i]; excess > 0 {
				res[i] = p.Add(samples[i].Normal.Mul(excess))
			}
		}
	}
	return res
}

// inwardTravel returns the distance of p from the sample position,
// measured along the inward normal.
func inwardTravel(p vec.Vec2, s SamplePoint) float64 {
	return s.Pos.Sub(p).Dot(s.Normal)
}

// enforceMinOffset moves every inner point which is closer to the outer
// contour than the sample's thickness along the inward normal, until the
// travel equals the thickness.  The points are modified in place.
func enforceMinOffset(inner []vec.Vec2, samples []SamplePoint) {
	for i := range inner {
		s := samples[i]
		if !(s.Thickness > 0) {
			continue
		}
		in := s.Normal.Mul(-1)
		travel := inner[i].Sub(s.Pos).Dot(in)
		if travel < s.Thickness {
			inner[i] = inner[i].Add(in.Mul(s.Thickness - travel))
		}
	}
}

// pinZero moves the inner points of samples without growth onto the
// outer contour.  The points are modified in place.
func pinZero(inner []vec.Vec2, samples []SamplePoint, eps float64) {
	for i := range inner {
		if samples[i].Thickness <= eps {
			inner[i] = samples[i].Pos
		}
	}
}

// selfIntersections returns the index pairs of non-adjacent polyline
// segments which cross.  Segment i joins pts[i] and pts[i+1].
func selfIntersections(pts []vec.Vec2, closed bool) [][2]int {
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	var res [][2]int
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		for j := i + 2; j < segs; j++ {
			if closed && i == 0 && j == segs-1 {
				continue
			}
			c, d := pts[j], pts[(j+1)%n]
			if segmentsCross(a, b, c, d) {
				res = append(res, [2]int{i, j})
			}
		}
	}
	return res
}

// largestLoop returns the loop with the largest absolute area, or nil if
// no loop encloses a positive area.
func largestLoop(loops [][]vec.Vec2) []vec.Vec2 {
	var best []vec.Vec2
	bestArea := 0.0
	for _, l := range loops {
		if a := math.Abs(SignedArea(l)); a > bestArea {
			best, bestArea = l, a
		}
	}
	return best
}

func reversed(pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[len(pts)-1-i] = p
	}
	return res
}
