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
	"testing"

	"seehuhn.de/go/geom/vec"
)

var bowtie = []vec.Vec2{v(0, 0), v(1, 1), v(1, 0), v(0, 1)}

func totalArea(loops [][]vec.Vec2) float64 {
	var a float64
	for _, l := range loops {
		a += math.Abs(SignedArea(l))
	}
	return a
}

func TestSelfIntersections(t *testing.T) {
	diff(t, [][2]int{{0, 2}}, selfIntersections(bowtie, true))

	sq := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}
	if got := selfIntersections(sq, true); len(got) != 0 {
		t.Errorf("square has crossings %v", got)
	}

	// the closing segment is not part of an open polyline
	step := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1), v(2, 1)}
	if got := selfIntersections(step, false); len(got) != 0 {
		t.Errorf("open polyline has crossings %v", got)
	}
	diff(t, [][2]int{{1, 3}}, selfIntersections(step, true))
}

func TestClipperClean(t *testing.T) {
	var c ClipperCleaner

	loops := c.Clean(bowtie, 1e-3)
	if len(loops) != 2 {
		t.Fatalf("got %d loops, want 2", len(loops))
	}
	if a := totalArea(loops); math.Abs(a-0.5) > 1e-3 {
		t.Errorf("area %g, want 0.5", a)
	}

	sq := []vec.Vec2{v(0, 0), v(3, 0), v(3, 3), v(0, 3)}
	loops = c.Clean(sq, 1e-3)
	if len(loops) != 1 || math.Abs(totalArea(loops)-9) > 1e-6 {
		t.Errorf("square cleaned to %v", loops)
	}

	if loops := c.Clean(sq[:2], 1e-3); loops != nil {
		t.Errorf("degenerate loop cleaned to %v", loops)
	}
}

func TestClipperUnion(t *testing.T) {
	var c ClipperCleaner
	a := []vec.Vec2{v(0, 0), v(2, 0), v(2, 2), v(0, 2)}
	b := []vec.Vec2{v(1, 1), v(3, 1), v(3, 3), v(1, 3)}

	merged := c.Union([][]vec.Vec2{a, b}, 1e-3)
	if len(merged) != 1 {
		t.Fatalf("got %d polygons, want 1", len(merged))
	}
	if area := totalArea(merged); math.Abs(area-7) > 1e-6 {
		t.Errorf("area %g, want 7", area)
	}
}

func TestSmooth(t *testing.T) {
	pts := []vec.Vec2{v(0, 0), v(1, 1), v(2, 0), v(3, 1), v(4, 0)}

	open := smooth(pts, false, 2, 0.5)
	if open[0] != pts[0] || open[4] != pts[4] {
		t.Error("end points of an open polyline moved")
	}
	if !(open[1].Y < 1 && open[2].Y > 0) {
		t.Errorf("no smoothing: %v", open)
	}
	if pts[1] != v(1, 1) {
		t.Error("input was modified")
	}

	same := smooth(pts, true, 3, 0)
	diff(t, pts, same)

	// a regular polygon shrinks towards its centre but keeps its shape
	hex := make([]vec.Vec2, 6)
	for i := range hex {
		hex[i] = dir(float64(i) * math.Pi / 3)
	}
	closed := smooth(hex, true, 1, 1)
	for i, p := range closed {
		if r := p.Length(); math.Abs(r-0.5) > 1e-12 {
			t.Errorf("vertex %d at radius %g, want 0.5", i, r)
		}
	}
}

func TestSmoothInner(t *testing.T) {
	const th = 0.01

	// a square of side 4 with one sample per unit, corners first
	corners := []vec.Vec2{v(0, 0), v(4, 0), v(4, 4), v(0, 4)}
	normals := []vec.Vec2{v(0, -1), v(1, 0), v(0, 1), v(-1, 0)}
	var samples []SamplePoint
	var inner []vec.Vec2
	for k, c := range corners {
		step := corners[(k+1)%4].Sub(c).Mul(0.25)
		for j := range 4 {
			s := SamplePoint{Pos: c.Add(step.Mul(float64(j))), Normal: normals[k], Thickness: th}
			depth := th
			if j == 0 {
				s.Normal = normals[k].Add(normals[(k+3)%4]).Mul(1 / math.Sqrt2)
				depth = th * math.Sqrt2
			}
			samples = append(samples, s)
			inner = append(inner, s.Pos.Sub(s.Normal.Mul(depth)))
		}
	}

	o := DefaultOptions().resolve()
	got := smoothInner(inner, samples, true, o)
	for i, p := range got {
		if d, d0 := inwardTravel(p, samples[i]), inwardTravel(inner[i], samples[i]); d > d0+1e-12 {
			t.Errorf("point %d moved from depth %g to %g", i, d0, d)
		}
	}
	for k := range corners {
		if !near(got[4*k], inner[4*k], 1e-12) {
			t.Errorf("corner %d moved from %v to %v", k, inner[4*k], got[4*k])
		}
	}

	// plain smoothing cuts the corners much deeper than the layer
	plain := smooth(inner, true, o.SmoothIterations, o.SmoothDamping)
	if d := inwardTravel(plain[0], samples[0]); d < 0.1 {
		t.Errorf("plain smoothing left the corner at depth %g", d)
	}
}

func TestEnforceMinOffset(t *testing.T) {
	samples := []SamplePoint{
		{Pos: v(0, 0), Normal: v(0, -1), Thickness: 2},
		{Pos: v(1, 0), Normal: v(0, -1), Thickness: 2},
		{Pos: v(2, 0), Normal: v(0, -1), Thickness: 0},
	}
	inner := []vec.Vec2{v(0, 1), v(1.5, 3), v(2, 0.5)}
	enforceMinOffset(inner, samples)
	diff(t, []vec.Vec2{v(0, 2), v(1.5, 3), v(2, 0.5)}, inner)

	pinZero(inner, samples, 1e-6)
	diff(t, []vec.Vec2{v(0, 2), v(1.5, 3), v(2, 0)}, inner)
}

func TestResampleLoop(t *testing.T) {
	sq := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}
	got := resampleLoop(sq, 8)
	want := []vec.Vec2{
		v(0, 0), v(0.5, 0), v(1, 0), v(1, 0.5),
		v(1, 1), v(0.5, 1), v(0, 1), v(0, 0.5),
	}
	diff(t, want, got, approx(1e-12))

	if got := resampleLoop(sq, 0); got != nil {
		t.Errorf("zero points requested, got %v", got)
	}
}

func TestAlignLoop(t *testing.T) {
	ref := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}

	shifted := []vec.Vec2{v(1, 1), v(0, 1), v(0, 0), v(1, 0)}
	diff(t, ref, alignLoop(shifted, ref))

	backwards := []vec.Vec2{v(1, 0), v(0, 0), v(0, 1), v(1, 1)}
	diff(t, ref, alignLoop(backwards, ref))
}

func TestLargestLoop(t *testing.T) {
	small := []vec.Vec2{v(0, 0), v(1, 0), v(0, 1)}
	big := []vec.Vec2{v(0, 0), v(0, 5), v(5, 0)}
	diff(t, big, largestLoop([][]vec.Vec2{small, big}))

	if got := largestLoop(nil); got != nil {
		t.Errorf("largest of nothing: %v", got)
	}
}
