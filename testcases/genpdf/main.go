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

// Command genpdf generates preview images for all test cases.
// For every case a PDF and a PNG file are written to testdata/preview.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/oxide"
	"seehuhn.de/go/oxide/internal/preview"
	"seehuhn.de/go/oxide/testcases"
)

const previewDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			items := []preview.Item{{
				Path:   tc.Path,
				Result: oxide.Compute(tc.Path, tc.Field, nil),
			}}

			pdfPath := filepath.Join(previewDir, name+".pdf")
			if err := preview.WritePDF(pdfPath, items); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(previewDir, name+".png")
			img := preview.RenderPNG(items, 4*tc.Width)
			if err := preview.WritePNG(pngPath, img); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
