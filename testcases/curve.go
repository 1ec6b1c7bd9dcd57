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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/oxide"
)

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   Circle(32, 32, 20),
		Field:  uniform(5),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: math.Pi * 15 * 15, AreaTolerance: 10, Simple: true},
	},
	{
		Name:   "circle_clockwise",
		Path:   reverse(Circle(32, 32, 20)),
		Field:  uniform(5),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: math.Pi * 15 * 15, AreaTolerance: 10, Simple: true},
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 25, 15),
		Field:  uniform(3),
		Width:  64,
		Height: 64,
		Check:  Check{Simple: true},
	},
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 14, 32, 60, 54, 14),
		Field:  uniform(2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "s_curve",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Field:  uniform(1.5),
		Width:  64,
		Height: 64,
	},
	{
		Name: "blob",
		Path: oxide.Path{
			Nodes: []oxide.Node{
				oxide.Smooth(32, 8, 10, 0),
				oxide.Smooth(56, 30, 0, 12),
				oxide.Smooth(34, 56, -12, 0),
				oxide.Smooth(10, 34, 0, -10),
			},
			Closed: true,
		},
		Field:  uniform(4),
		Width:  64,
		Height: 64,
	},
}

// Circle builds a counter-clockwise circle from four cubic Bézier curves.
func Circle(cx, cy, r float64) oxide.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds a counter-clockwise ellipse from four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) oxide.Path {
	kx := rx * kappa
	ky := ry * kappa

	return single((&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close())
}

// quadraticCurve builds a closed shape with a quadratic Bézier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) oxide.Path {
	return single((&path.Data{}).
		MoveTo(pt(x2, y2)).
		QuadTo(pt(cx, cy), pt(x1, y1)).
		Close())
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bézier
// curves and a straight return.
func sCurveQuadratic(x1, y1, x2, y2 float64) oxide.Path {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return single((&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		LineTo(pt(x2, y2-20)).
		LineTo(pt(x1, y1-20)).
		Close())
}
