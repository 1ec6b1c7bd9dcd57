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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// Colors used for PNG previews.
var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Material   = color.RGBA{R: 200, G: 110, B: 40, A: 255}
	Substrate  = color.RGBA{R: 160, G: 170, B: 185, A: 255}
)

// RenderPNG draws the items into an image which is width pixels wide.
// The grown material is shown in the Material color, the remaining part
// of closed shapes in the Substrate color.
func RenderPNG(items []Item, width int) *image.RGBA {
	b := Bounds(items)
	w, h := b.URx-b.LLx, b.URy-b.LLy
	width = max(width, 1)
	s := float64(width) / w
	height := max(1, int(math.Ceil(h*s)))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	// image space is y-down
	tr := func(p vec.Vec2) (float32, float32) {
		return float32((p.X - b.LLx) * s), float32((b.URy - p.Y) * s)
	}

	r := vector.NewRasterizer(width, height)
	fill := func(loops [][]vec.Vec2, c color.Color) {
		if len(loops) == 0 {
			return
		}
		r.Reset(width, height)
		for _, l := range loops {
			if len(l) < 3 {
				continue
			}
			r.MoveTo(tr(l[0]))
			for _, p := range l[1:] {
				r.LineTo(tr(p))
			}
			r.ClosePath()
		}
		r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}

	for _, it := range items {
		material, substrate := regions(it)
		fill(material, Material)
		fill(substrate, Substrate)
	}
	return img
}

// WritePNG encodes img into the named file.
func WritePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("preview: %w", err)
	}
	return f.Close()
}
