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

// Package preview draws computed growth contours, for visual inspection.
package preview

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/oxide"
)

// Item is a path together with the result of the growth computation.
type Item struct {
	Path   oxide.Path
	Result oxide.SampledPath
}

// Margin is the space left around the drawing, in drawing units.
const Margin = 4

// Bounds returns the bounding box of all items, including the margin.
func Bounds(items []Item) rect.Rect {
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, it := range items {
		if len(it.Result.Samples) == 0 {
			continue
		}
		r := it.Result.Bounds()
		b.LLx = min(b.LLx, r.LLx)
		b.LLy = min(b.LLy, r.LLy)
		b.URx = max(b.URx, r.URx)
		b.URy = max(b.URy, r.URy)
	}
	if b.LLx > b.URx {
		return rect.Rect{URx: 2 * Margin, URy: 2 * Margin}
	}
	b.LLx -= Margin
	b.LLy -= Margin
	b.URx += Margin
	b.URy += Margin
	return b
}

// regions returns the loops to fill with the grown material and the loops
// to fill with the remaining substrate.
func regions(it Item) (material, substrate [][]vec.Vec2) {
	res := it.Result
	if res.Closed {
		var outer []vec.Vec2
		for _, s := range res.Samples {
			outer = append(outer, s.Pos)
		}
		return [][]vec.Vec2{outer}, res.InnerPolygons
	}
	return res.InnerPolygons, nil
}
