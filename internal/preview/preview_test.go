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
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/oxide"
)

func squareItem() Item {
	p := oxide.Path{
		Nodes: []oxide.Node{
			oxide.Corner(0, 0), oxide.Corner(40, 0),
			oxide.Corner(40, 40), oxide.Corner(0, 40),
		},
		Closed: true,
	}
	return Item{Path: p, Result: oxide.Compute(p, oxide.NewField(5), nil)}
}

func TestBounds(t *testing.T) {
	b := Bounds([]Item{squareItem()})
	want := rect.Rect{LLx: -Margin, LLy: -Margin, URx: 40 + Margin, URy: 40 + Margin}
	if d := cmp.Diff(want, b, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("unexpected bounds (-want +got):\n%s", d)
	}

	empty := Bounds(nil)
	if empty.URx <= empty.LLx || empty.URy <= empty.LLy {
		t.Errorf("empty bounds %v have no area", empty)
	}
}

func TestRenderPNG(t *testing.T) {
	img := RenderPNG([]Item{squareItem()}, 96)
	if w := img.Bounds().Dx(); w != 96 {
		t.Fatalf("width %d, want 96", w)
	}

	// 2 pixels per unit: the margin maps to 8 pixels, the band of
	// material to 10 pixels
	pixels := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 2, Background},
		{12, 48, Material},
		{48, 48, Substrate},
	}
	for _, p := range pixels {
		if got := img.RGBAAt(p.x, p.y); got != p.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", p.x, p.y, got, p.want)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	items := []Item{squareItem()}

	pdfName := filepath.Join(dir, "square.pdf")
	if err := WritePDF(pdfName, items); err != nil {
		t.Fatal(err)
	}
	pngName := filepath.Join(dir, "square.png")
	if err := WritePNG(pngName, RenderPNG(items, 64)); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{pdfName, pngName} {
		fi, err := os.Stat(name)
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
