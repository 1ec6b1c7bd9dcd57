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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/oxide"
)

// TestCase defines a single growth computation.
type TestCase struct {
	Name   string      // lowercase a-z, 0-9 and _ only
	Path   oxide.Path  // the outer contour
	Field  oxide.Field // the growth
	Width  int         // preview width in points
	Height int         // preview height in points
	Check  Check       // properties the result must have
}

// Check lists properties of the computed inner contour.
// Zero values mean that a property is not checked.
type Check struct {
	// InnerArea is the expected absolute area of the inner contour.
	InnerArea     float64
	AreaTolerance float64

	// Simple requires the inner contour to be free of self-intersections.
	Simple bool
}

// kappa is the handle length factor for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498307936

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// single converts path data with exactly one subpath.
func single(d *path.Data) oxide.Path {
	paths := oxide.FromData(d)
	if len(paths) != 1 {
		panic("testcases: expected a single subpath")
	}
	return paths[0]
}

// polygon builds a closed polygon through the given points.
func polygon(pts ...vec.Vec2) oxide.Path {
	d := (&path.Data{}).MoveTo(pts[0])
	for _, p := range pts[1:] {
		d = d.LineTo(p)
	}
	return single(d.Close())
}

// polyline builds an open polyline through the given points.
func polyline(pts ...vec.Vec2) oxide.Path {
	d := (&path.Data{}).MoveTo(pts[0])
	for _, p := range pts[1:] {
		d = d.LineTo(p)
	}
	return single(d)
}

// uniform returns a fully grown field with thickness t in all directions.
func uniform(t float64) oxide.Field {
	return oxide.NewField(t)
}
