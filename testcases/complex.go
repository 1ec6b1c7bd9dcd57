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

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Field:  uniform(3),
		Width:  64,
		Height: 64,
	},
	{
		// growth larger than half the width of the neck
		Name:   "dumbbell_overgrown",
		Path:   dumbbell(32, 32, 12, 3),
		Field:  uniform(5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiral",
		Path:   spiral(32, 32, 5, 25, 3),
		Field:  uniform(2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "tight_curve",
		Path:   tightCurve(32, 32, 15),
		Field:  uniform(8),
		Width:  64,
		Height: 64,
	},
}

// mixedLinesCurves builds a closed path combining line segments with
// quadratic and cubic Bézier curves.
func mixedLinesCurves() oxide.Path {
	return single((&path.Data{}).
		MoveTo(pt(10, 14)).
		LineTo(pt(20, 34)).
		QuadTo(pt(32, 54), pt(44, 34)).
		LineTo(pt(54, 14)).
		CubeTo(pt(48, 4), pt(16, 4), pt(10, 14)).
		Close())
}

// dumbbell builds two squares of size s joined by a neck of half-width w.
func dumbbell(cx, cy, s, w float64) oxide.Path {
	l, r := cx-s-w, cx+s+w
	return polygon(
		pt(l-s, cy-s), pt(l+s, cy-s), pt(l+s, cy-w), pt(r-s, cy-w),
		pt(r-s, cy-s), pt(r+s, cy-s), pt(r+s, cy+s), pt(r-s, cy+s),
		pt(r-s, cy+w), pt(l+s, cy+w), pt(l+s, cy+s), pt(l-s, cy+s),
	)
}

// spiral builds an open Archimedean spiral.
func spiral(cx, cy, rMin, rMax, turns float64) oxide.Path {
	steps := max(8, int(turns*32))
	total := turns * 2 * math.Pi
	growth := (rMax - rMin) / total

	d := (&path.Data{}).MoveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * total
		r := rMin + growth*angle
		d = d.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return single(d)
}

// tightCurve builds an open U-turn with radius smaller than the growth.
func tightCurve(cx, cy, size float64) oxide.Path {
	return single((&path.Data{}).
		MoveTo(pt(cx-size, cy-size)).
		CubeTo(pt(cx-size, cy+size), pt(cx+size, cy+size), pt(cx+size, cy-size)))
}
