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

	"seehuhn.de/go/oxide"
)

var fieldCases = []TestCase{
	{
		Name:   "square_anisotropic",
		Path:   square(12, 12, 40),
		Field:  directional(1, false, 1, oxide.DirectionWeight{AngleDeg: 0, Value: 1}, oxide.DirectionWeight{AngleDeg: 90, Value: 5}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_anisotropic",
		Path:   Circle(32, 32, 24),
		Field:  directional(1, false, 1, oxide.DirectionWeight{AngleDeg: -90, Value: 0}, oxide.DirectionWeight{AngleDeg: 90, Value: 6}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_mirror",
		Path:   Circle(32, 32, 24),
		Field:  directional(1, true, 1, oxide.DirectionWeight{AngleDeg: 0, Value: 0}, oxide.DirectionWeight{AngleDeg: 45, Value: 6}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_half_grown",
		Path:   Circle(32, 32, 24),
		Field:  directional(4, false, 0.5),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: math.Pi * 22 * 22, AreaTolerance: 12, Simple: true},
	},
	{
		Name:   "square_not_grown",
		Path:   square(12, 12, 40),
		Field:  directional(4, false, 0, oxide.DirectionWeight{AngleDeg: 30, Value: 2}),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: 1600, AreaTolerance: 1e-6, Simple: true},
	},
	{
		Name:   "square_single_weight",
		Path:   square(12, 12, 40),
		Field:  directional(1, false, 1, oxide.DirectionWeight{AngleDeg: 123, Value: 2}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "square_clamped",
		Path:   square(12, 12, 40),
		Field:  oxide.Field{Uniform: 50, Progress: 1, Max: 3},
		Width:  64,
		Height: 64,
	},
}

func directional(u float64, mirror bool, progress float64, weights ...oxide.DirectionWeight) oxide.Field {
	return oxide.Field{
		Uniform:  u,
		Weights:  weights,
		Mirror:   mirror,
		Progress: progress,
	}
}
