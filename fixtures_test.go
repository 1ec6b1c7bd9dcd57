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

package oxide_test

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/oxide"
	"seehuhn.de/go/oxide/internal/preview"
	"seehuhn.de/go/oxide/testcases"
)

func TestFixtures(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				res := oxide.Compute(tc.Path, tc.Field, nil)
				if err := checkResult(tc, res); err != nil {
					writeDebugImage(name, tc, res)
					t.Error(err)
				}
			})
		}
	}
}

// checkResult verifies the properties every result must have, and the
// properties listed in tc.Check.
func checkResult(tc testcases.TestCase, res oxide.SampledPath) error {
	n := len(res.Samples)
	if n == 0 {
		if len(res.Inner) != 0 {
			return fmt.Errorf("inner contour without samples")
		}
		return nil
	}
	if n > 1 && len(res.Inner) != n {
		return fmt.Errorf("%d inner points for %d samples", len(res.Inner), n)
	}
	for i, p := range res.Inner {
		if !finite(p) {
			return fmt.Errorf("inner point %d is %v", i, p)
		}
	}

	for i, s := range res.Samples {
		if !(s.Thickness >= 0) {
			return fmt.Errorf("sample %d has thickness %g", i, s.Thickness)
		}
		if math.Abs(s.Normal.Length()-1) > 1e-9 {
			return fmt.Errorf("sample %d: normal %v is not a unit vector", i, s.Normal)
		}
		if n == 1 {
			continue
		}
		// the growth reaches at least the requested depth
		travel := res.Inner[i].Sub(s.Pos).Dot(s.Normal.Mul(-1))
		if travel < s.Thickness-1e-6 {
			return fmt.Errorf("sample %d: inner point only %g deep, want %g",
				i, travel, s.Thickness)
		}
	}

	if tc.Check.InnerArea > 0 {
		area := math.Abs(oxide.SignedArea(res.Inner))
		if math.Abs(area-tc.Check.InnerArea) > tc.Check.AreaTolerance {
			return fmt.Errorf("inner area %g, want %g ± %g",
				area, tc.Check.InnerArea, tc.Check.AreaTolerance)
		}
	}
	if tc.Check.Simple {
		if k := res.SelfIntersections(); k > 0 {
			return fmt.Errorf("inner contour has %d self-intersections", k)
		}
	}
	return nil
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// writeDebugImage stores a picture of a failed case in the debug/ directory.
func writeDebugImage(name string, tc testcases.TestCase, res oxide.SampledPath) {
	os.MkdirAll("debug", 0755)

	items := []preview.Item{{Path: tc.Path, Result: res}}
	img := preview.RenderPNG(items, 4*max(tc.Width, 50))
	preview.WritePNG(filepath.Join("debug", name+".png"), img)
}
