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

var precisionCases = []TestCase{
	{
		Name:   "subunit_offset",
		Path:   square(20.25, 20.75, 24),
		Field:  uniform(2),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: 20 * 20, AreaTolerance: 2, Simple: true},
	},
	{
		Name:   "large_coordinates",
		Path:   square(10000, 10000, 20),
		Field:  uniform(2),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: 16 * 16, AreaTolerance: 2, Simple: true},
	},
	{
		Name:   "tiny_growth",
		Path:   square(12, 12, 40),
		Field:  uniform(1e-4),
		Width:  64,
		Height: 64,
		Check:  Check{InnerArea: 1600, AreaTolerance: 0.1, Simple: true},
	},
	{
		Name: "repeated_nodes",
		Path: oxide.Path{
			Nodes: []oxide.Node{
				oxide.Corner(12, 12), oxide.Corner(12, 12), oxide.Corner(52, 12),
				oxide.Corner(52, 52), oxide.Corner(12, 52), oxide.Corner(12, 12),
			},
			Closed: true,
		},
		Field:  uniform(2),
		Width:  64,
		Height: 64,
	},
}
