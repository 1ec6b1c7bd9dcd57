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

// Package oxide computes how a contour changes when material grows on its
// inside, for example when an oxide layer forms on a machined part.
//
// The growth is described by a [Field], which gives the thickness of the
// new layer as a function of the direction of the inward surface normal.
// [Compute] samples a [Path], evaluates the field at every sample, and
// constructs the inner contour as the boundary of the union of disks
// around the samples, one disk per sample with radius equal to the local
// thickness.  Parts of the inner contour which cross themselves are
// removed using polygon clipping.
//
// Coordinates are in a y-up coordinate system.  The outer normal of a
// counter-clockwise path is to the right of the direction of travel.
// All computations are pure functions of their inputs; concurrent calls
// are safe.
package oxide

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// SampledPath is the result of [Compute].
type SampledPath struct {
	// Samples are the points of the outer contour, with normals pointing
	// away from the material and with thickness evaluated.
	Samples []SamplePoint

	// Closed tells whether the samples form a closed loop.  This can
	// differ from Path.Closed for degenerate paths.
	Closed bool

	// Length is the length of the polyline through the samples.
	Length float64

	// Inner is the inner contour.  For paths with more than one sample,
	// Inner[i] belongs to Samples[i].  For a single sample, Inner is
	// the patch around the point.
	Inner []vec.Vec2

	// InnerPolygons are simple loops describing the inner contour of
	// closed paths, or the region covered by material for open paths.
	InnerPolygons [][]vec.Vec2
}

// Compute runs the geometry pipeline for a single path.
// If opt is nil, DefaultOptions is used.
func Compute(p Path, f Field, opt *Options) SampledPath {
	o := opt.resolve()
	if f.Spacing > 0 && !math.IsInf(f.Spacing, 0) {
		o.Spacing = f.Spacing
	}

	sp := Sample(p, o)
	samples := BuildNormals(sp.Samples, sp.Closed, o.NormalWindow)
	flipped := false
	if sp.Closed && SignedArea(positions(samples)) < 0 {
		flipNormals(samples)
		flipped = true
	}
	tf := f.compile(o.AngleEpsilon)
	samples = tf.apply(samples)

	res := SampledPath{
		Samples: samples,
		Closed:  sp.Closed,
		Length:  Length(samples, sp.Closed),
	}
	switch {
	case len(samples) == 0:
		// nothing to do
	case len(samples) == 1:
		res.Inner, res.InnerPolygons = singlePoint(samples[0], tf, o)
	case sp.Closed:
		res.Inner, res.InnerPolygons = closedEnvelope(samples, flipped, o)
	default:
		res.Inner, res.InnerPolygons = openEnvelope(samples, tf, o)
	}
	return res
}

// SelfIntersections returns the number of pairs of segments of the inner
// contour which cross each other.
func (sp *SampledPath) SelfIntersections() int {
	if len(sp.Samples) < 2 {
		return 0
	}
	return len(selfIntersections(sp.Inner, sp.Closed))
}

// Bounds returns the smallest rectangle containing the outer and inner
// contours.
func (sp *SampledPath) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	add := func(p vec.Vec2) {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	for _, s := range sp.Samples {
		add(s.Pos)
	}
	for _, p := range sp.Inner {
		add(p)
	}
	for _, poly := range sp.InnerPolygons {
		for _, p := range poly {
			add(p)
		}
	}
	if b.LLx > b.URx {
		return rect.Rect{}
	}
	return b
}

// InnerData returns the inner contour as path data.  If polygons are
// available, these are used, otherwise the inner points are joined by
// straight lines.
func (sp *SampledPath) InnerData() *path.Data {
	res := &path.Data{}
	loops := sp.InnerPolygons
	closed := true
	if len(loops) == 0 {
		loops = [][]vec.Vec2{sp.Inner}
		closed = sp.Closed
	}
	for _, loop := range loops {
		if len(loop) == 0 {
			continue
		}
		res = res.MoveTo(loop[0])
		for _, p := range loop[1:] {
			res = res.LineTo(p)
		}
		if closed && len(loop) > 2 {
			res = res.Close()
		}
	}
	return res
}
