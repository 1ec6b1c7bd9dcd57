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

package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/dennwc/gotrace"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/oxide"
)

// dark selects the opaque pixels darker than mid-grey.
func dark(_, _ int, c color.Color) bool {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return false
	}
	g := color.Gray16Model.Convert(c).(color.Gray16)
	return g.Y < 0x8000
}

// traceMask converts the dark regions of img into closed outlines.  The
// outlines use a y-up coordinate system with scale units per pixel.
// Holes in the dark regions are skipped, islands inside holes are kept.
func traceMask(img image.Image, scale float64, logger *slog.Logger) ([]oxide.Path, error) {
	bm := gotrace.NewBitmapFromImage(img, dark)
	traced, err := gotrace.Trace(bm, nil)
	if err != nil {
		return nil, fmt.Errorf("tracing mask: %w", err)
	}

	h := float64(img.Bounds().Dy())
	tr := func(p gotrace.Point) vec.Vec2 {
		return vec.Vec2{X: p.X * scale, Y: (h - p.Y) * scale}
	}

	var res []oxide.Path
	holes := 0
	var walk func(ps []gotrace.Path)
	walk = func(ps []gotrace.Path) {
		for _, tp := range ps {
			if tp.Sign < 0 {
				holes++
			} else if d := outline(tp.Curve, tr); d != nil {
				for _, p := range oxide.FromData(d) {
					p.Style.Label = fmt.Sprintf("mask%d", len(res))
					res = append(res, p)
				}
			}
			walk(tp.Childs)
		}
	}
	walk(traced)
	if holes > 0 {
		logger.Warn("mask has holes, only outer outlines are grown",
			"holes", holes, "outlines", len(res))
	}
	return res, nil
}

// outline converts a traced curve into path data.  Each segment ends in
// Pnt[2], so the curve starts at the end point of its last segment.
func outline(curve []gotrace.Segment, tr func(gotrace.Point) vec.Vec2) *path.Data {
	if len(curve) == 0 {
		return nil
	}
	d := (&path.Data{}).MoveTo(tr(curve[len(curve)-1].Pnt[2]))
	for _, s := range curve {
		switch s.Type {
		case gotrace.TypeCorner:
			d = d.LineTo(tr(s.Pnt[1])).LineTo(tr(s.Pnt[2]))
		case gotrace.TypeBezier:
			d = d.CubeTo(tr(s.Pnt[0]), tr(s.Pnt[1]), tr(s.Pnt[2]))
		}
	}
	return d.Close()
}

func loadMask(fname string, scale float64, logger *slog.Logger) ([]oxide.Path, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return traceMask(img, scale, logger)
}
