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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/oxide"
)

var polygonCases = []TestCase{
	{
		Name:   "square",
		Path:   square(0, 0, 10),
		Field:  uniform(2),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: 36, AreaTolerance: 1.5, Simple: true},
	},
	{
		Name:   "square_clockwise",
		Path:   reverse(square(0, 0, 10)),
		Field:  uniform(2),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: 36, AreaTolerance: 1.5, Simple: true},
	},
	{
		Name:   "triangle",
		Path:   polygon(pt(10, 10), pt(54, 10), pt(32, 50)),
		Field:  uniform(3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle_thin",
		Path:   scale(square(0, 0, 1), 60, 8),
		Field:  uniform(1.5),
		Width:  64,
		Height: 16,
	},
	{
		Name:   "star",
		Path:   star(32, 32, 25, 10),
		Field:  uniform(1.5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "l_shape",
		Path:   polygon(pt(10, 10), pt(54, 10), pt(54, 24), pt(24, 24), pt(24, 54), pt(10, 54)),
		Field:  uniform(3),
		Width:  64,
		Height: 64,
	},
}

// scale returns p with all anchors scaled.  Handles are dropped.
func scale(p oxide.Path, sx, sy float64) oxide.Path {
	nodes := make([]oxide.Node, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = oxide.Corner(n.Anchor.X*sx, n.Anchor.Y*sy)
	}
	p.Nodes = nodes
	return p
}

// square builds a counter-clockwise axis-parallel square.
func square(x, y, size float64) oxide.Path {
	return polygon(pt(x, y), pt(x+size, y), pt(x+size, y+size), pt(x, y+size))
}

// reverse returns a path with the node order reversed.
// Handles are swapped, so that curves keep their shape.
func reverse(p oxide.Path) oxide.Path {
	n := len(p.Nodes)
	nodes := make([]oxide.Node, n)
	for i, node := range p.Nodes {
		nodes[n-1-i] = oxide.Node{Anchor: node.Anchor, In: node.Out, Out: node.In}
	}
	p.Nodes = nodes
	return p
}

// star builds a five-pointed star with outer radius r and inner radius ri.
func star(cx, cy, r, ri float64) oxide.Path {
	var pts []vec.Vec2
	for i := range 10 {
		rad := r
		if i%2 == 1 {
			rad = ri
		}
		angle := math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, pt(cx+rad*math.Cos(angle), cy+rad*math.Sin(angle)))
	}
	return polygon(pts...)
}
