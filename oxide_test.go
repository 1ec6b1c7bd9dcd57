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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestLength(t *testing.T) {
	pts := []SamplePoint{{Pos: v(0, 0)}, {Pos: v(3, 0)}, {Pos: v(3, 4)}}
	if l := Length(pts, false); math.Abs(l-7) > 1e-12 {
		t.Errorf("open length %g, want 7", l)
	}
	if l := Length(pts, true); math.Abs(l-12) > 1e-12 {
		t.Errorf("closed length %g, want 12", l)
	}
	if l := Length(pts[:1], true); l != 0 {
		t.Errorf("single point length %g", l)
	}
}

func TestBounds(t *testing.T) {
	var empty SampledPath
	if b := empty.Bounds(); b != (rect.Rect{}) {
		t.Errorf("empty result has bounds %v", b)
	}

	res := Compute(square(0, 0, 10), NewField(2), nil)
	b := res.Bounds()
	want := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	diff(t, want, b, approx(1e-9))
}

func TestInnerData(t *testing.T) {
	count := func(d *path.Data) (moves, closes int) {
		for _, cmd := range d.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				moves++
			case path.CmdClose:
				closes++
			}
		}
		return moves, closes
	}

	closed := SampledPath{
		Closed:        true,
		InnerPolygons: [][]vec.Vec2{{v(0, 0), v(1, 0), v(0, 1)}, {v(5, 5), v(6, 5), v(5, 6)}},
	}
	if m, c := count(closed.InnerData()); m != 2 || c != 2 {
		t.Errorf("polygons: %d moves, %d closes", m, c)
	}

	open := SampledPath{Inner: []vec.Vec2{v(0, 0), v(1, 0), v(2, 1)}}
	if m, c := count(open.InnerData()); m != 1 || c != 0 {
		t.Errorf("open polyline: %d moves, %d closes", m, c)
	}
}
