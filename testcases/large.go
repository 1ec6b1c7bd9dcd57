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

import "seehuhn.de/go/oxide"

// largeCases contains paths with several hundred samples, to exercise the
// quadratic stages of the pipeline.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   polygon(pt(50, 50), pt(462, 50), pt(462, 300), pt(50, 300)),
		Field:  uniform(20),
		Width:  512,
		Height: 350,
	},
	{
		Name:   "large_diamond",
		Path:   polygon(pt(256, 76), pt(436, 256), pt(256, 436), pt(76, 256)),
		Field:  oxide.Field{Uniform: 10, Progress: 1, Spacing: 2},
		Width:  512,
		Height: 512,
	},
}
