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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/oxide"
)

var openCases = []TestCase{
	{
		Name:   "line",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Field:  uniform(4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner",
		Path:   polyline(pt(10, 14), pt(32, 50), pt(54, 14)),
		Field:  uniform(3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag",
		Path:   zigzag(10, 32, 54, 10),
		Field:  uniform(2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "half_circle",
		Path:   halfCircle(32, 20, 20),
		Field:  uniform(3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "single_point",
		Path:   oxide.Path{Nodes: []oxide.Node{oxide.Corner(32, 32)}},
		Field:  uniform(6),
		Width:  64,
		Height: 64,
	},
	{
		Name: "collapsed_closed",
		Path: oxide.Path{
			Nodes:  []oxide.Node{oxide.Corner(20, 20), oxide.Corner(44, 44)},
			Closed: true,
		},
		Field:  uniform(2),
		Width:  64,
		Height: 64,
	},
}

// zigzag builds an open zigzag line between x1 and x2.
func zigzag(x1, y, x2, amplitude float64) oxide.Path {
	d := (&path.Data{}).MoveTo(pt(x1, y))
	const teeth = 4
	step := (x2 - x1) / (2 * teeth)
	for i := 1; i <= 2*teeth; i++ {
		dy := amplitude
		if i%2 == 0 {
			dy = 0
		}
		d = d.LineTo(pt(x1+float64(i)*step, y+dy))
	}
	return single(d)
}

// halfCircle builds the upper half of a circle, from right to left.
func halfCircle(cx, cy, r float64) oxide.Path {
	k := r * kappa
	return single((&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)))
}
