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

package preview

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// PageSize is the length of the longer side of a preview page, in points.
const PageSize = 400

// WritePDF writes a single page PDF file showing all items.  The outer
// contours are stroked in black, the grown material is filled in gray
// and the inner contours are stroked in white.
func WritePDF(fname string, items []Item) error {
	b := Bounds(items)
	w, h := b.URx-b.LLx, b.URy-b.LLy
	s := PageSize / max(w, h)

	paper := &pdf.Rectangle{
		URx: w * s,
		URy: h * s,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	// PDF user space is y-up, like the geometry
	page.Transform(matrix.Matrix{s, 0, 0, s, -b.LLx * s, -b.LLy * s})
	page.SetLineJoin(graphics.LineJoinRound)

	loop := func(pts []vec.Vec2) {
		if len(pts) < 2 {
			return
		}
		page.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.ClosePath()
	}
	curve := func(d *path.Data) {
		for cmd, pts := range d.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	for _, it := range items {
		material, substrate := regions(it)
		if len(material) > 0 {
			page.SetFillColor(color.DeviceGray(0.6))
			for _, l := range material {
				loop(l)
			}
			page.Fill()
		}
		if len(substrate) > 0 {
			page.SetFillColor(color.DeviceGray(0.9))
			for _, l := range substrate {
				loop(l)
			}
			page.Fill()
		}

		if it.Result.Closed && len(it.Result.Inner) > 2 {
			page.SetStrokeColor(color.DeviceGray(1))
			page.SetLineWidth(0.5 / s)
			loop(it.Result.Inner)
			page.Stroke()
		}

		if len(it.Path.Nodes) > 1 {
			page.SetStrokeColor(color.DeviceGray(0))
			page.SetLineWidth(1 / s)
			curve(it.Path.Data())
			page.Stroke()
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
