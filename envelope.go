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

// Disk is the region reached by growth from a single sample point.
type Disk struct {
	Center vec.Vec2
	Radius float64
}

// disksFor returns one disk per sample.
func disksFor(samples []SamplePoint) []Disk {
	disks := make([]Disk, len(samples))
	for i, s := range samples {
		disks[i] = Disk{Center: s.Pos, Radius: s.Thickness}
	}
	return disks
}

// VisibleArcs returns the parts of the boundary of disks[i] which are not
// inside any other disk.  Angles are measured from the positive x-axis.
func VisibleArcs(disks []Disk, i int, opt *Options) []Arc {
	o := opt.resolve()
	return visibleArcs(disks, i, o)
}

func visibleArcs(disks []Disk, i int, o *Options) arcSet {
	di := disks[i]
	if !(di.Radius > o.RadiusEpsilon) || !finite(di.Center) {
		return nil
	}
	visible := fullCircle()
	for j, dj := range disks {
		if j == i {
			continue
		}
		occ := occluded(di, dj, o)
		if len(occ) == 0 {
			continue
		}
		visible = visible.subtractAll(occ)
		if len(visible) == 0 {
			return nil
		}
	}
	return visible
}

// occluded returns the part of the boundary of a which lies inside b.
// If the centres coincide, a is hidden whenever b is at least as large,
// so two equal coincident disks hide each other.
func occluded(a, b Disk, o *Options) arcSet {
	rb := b.Radius
	if !(rb > o.RadiusEpsilon) || !finite(b.Center) {
		return nil
	}
	ra := a.Radius
	delta := b.Center.Sub(a.Center)
	d := delta.Length()

	if d <= o.Epsilon {
		if rb >= ra {
			return fullCircle()
		}
		return nil
	}
	if d >= ra+rb {
		return nil
	}
	if d <= math.Abs(ra-rb) {
		if rb > ra {
			return fullCircle()
		}
		return nil
	}

	cosPhi := (ra*ra + d*d - rb*rb) / (2 * ra * d)
	phi := math.Acos(clamp(cosPhi, -1, 1))
	return around(angleOf(delta), phi)
}

// envelopePoint is the result of searching the boundary of one disk for
// the point of maximal inward travel.
type envelopePoint struct {
	Point vec.Vec2
	Found bool // false if the naive offset point was substituted

	// Walk holds the points visited on the chosen arc, by increasing
	// angle.
	Walk []vec.Vec2
}

// selectPoint finds the envelope point of disk d, which belongs to sample
// s.  Only the half of the visible boundary facing into the material is
// considered.
func selectPoint(d Disk, s SamplePoint, visible arcSet, o *Options) envelopePoint {
	naive := s.Pos.Sub(s.Normal.Mul(s.Thickness))
	if !(d.Radius > o.RadiusEpsilon) || len(visible) == 0 {
		return envelopePoint{Point: naive}
	}

	alpha := s.Inward()
	arcs := visible.intersect(around(alpha, math.Pi/2)).mergeSeam().dropShort(o.AngleEpsilon)
	if len(arcs) == 0 {
		return envelopePoint{Point: naive}
	}

	best := -1
	for k, a := range arcs {
		if a.contains(alpha) {
			best = k
			break
		}
	}
	containsInward := best >= 0
	if !containsInward {
		bestDist := math.Inf(1)
		for k, a := range arcs {
			if dist := angleDist(a.Mid(), alpha); dist < bestDist {
				best, bestDist = k, dist
			}
		}
	}

	chosen := arcs[best]
	walk, thetas := walkArc(d, chosen, o)
	res := envelopePoint{Found: true, Walk: walk}
	if containsInward {
		res.Point = naive
		return res
	}

	bestTravel := math.Inf(-1)
	for k, theta := range thetas {
		travel := d.Radius * math.Cos(theta-alpha)
		if travel > bestTravel {
			bestTravel = travel
			res.Point = walk[k]
		}
	}
	return res
}

// walkArc returns points on the boundary of d along arc a, in steps of at
// most 2π/ArcSteps, and the angles of these points.
func walkArc(d Disk, a Arc, o *Options) ([]vec.Vec2, []float64) {
	step := twoPi / float64(o.ArcSteps)
	n := max(1, int(math.Ceil(a.Len()/step)))
	pts := make([]vec.Vec2, 0, n+1)
	thetas := make([]float64, 0, n+1)
	for k := 0; k <= n; k++ {
		theta := a.Start + a.Len()*float64(k)/float64(n)
		pts = append(pts, d.Center.Add(dir(theta).Mul(d.Radius)))
		thetas = append(thetas, theta)
	}
	return pts, thetas
}

// materialArcs returns all arcs of a visible set which contribute to the
// grown material of an open path, walked by increasing angle relative to
// the outward normal.
func materialArcs(d Disk, s SamplePoint, visible arcSet, o *Options) []vec.Vec2 {
	if !(d.Radius > o.RadiusEpsilon) || len(visible) == 0 {
		return nil
	}
	alpha := s.Inward()
	arcs := visible
	if o.RestrictToInward {
		arcs = arcs.intersect(around(alpha, math.Pi/2))
	}
	arcs = arcs.mergeSeam().dropShort(o.AngleEpsilon)

	// order the arcs by their start, measured from the outward direction
	base := alpha - math.Pi
	rel := func(theta float64) float64 {
		r := math.Mod(theta-base, twoPi)
		if r < 0 {
			r += twoPi
		}
		return r
	}
	order := make([]int, len(arcs))
	for k := range order {
		order[k] = k
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && rel(arcs[order[j]].Start) < rel(arcs[order[j-1]].Start); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	var pts []vec.Vec2
	for _, k := range order {
		walk, _ := walkArc(d, arcs[k], o)
		pts = append(pts, walk...)
	}
	return pts
}
