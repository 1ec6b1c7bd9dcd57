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

package oxide

import "math"

const twoPi = 2 * math.Pi

// Arc is an interval of angles on a circle, in radians.
// Arcs returned by this package satisfy 0 <= Start <= End <= 2π.
type Arc struct {
	Start, End float64
}

// Len returns the angular size of the arc.
func (a Arc) Len() float64 {
	return a.End - a.Start
}

// Mid returns the angle in the middle of the arc.
func (a Arc) Mid() float64 {
	return (a.Start + a.End) / 2
}

// contains reports whether theta lies in the arc.  The arc may extend
// past 2π after seam merging.
func (a Arc) contains(theta float64) bool {
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	if theta >= a.Start && theta <= a.End {
		return true
	}
	theta += twoPi
	return theta >= a.Start && theta <= a.End
}

// arcSet is a sorted list of disjoint arcs.
type arcSet []Arc

func fullCircle() arcSet {
	return arcSet{{0, twoPi}}
}

// around returns the arcs covering [center-halfWidth, center+halfWidth],
// split at the 0/2π seam.
func around(center, halfWidth float64) arcSet {
	if halfWidth >= math.Pi {
		return fullCircle()
	}
	if halfWidth <= 0 {
		return nil
	}
	center = math.Mod(center, twoPi)
	if center < 0 {
		center += twoPi
	}
	lo, hi := center-halfWidth, center+halfWidth
	switch {
	case lo < 0:
		return arcSet{{0, hi}, {lo + twoPi, twoPi}}
	case hi > twoPi:
		return arcSet{{0, hi - twoPi}, {lo, twoPi}}
	default:
		return arcSet{{lo, hi}}
	}
}

// subtract removes b from every arc in s.  Pieces of zero length are
// dropped.
func (s arcSet) subtract(b Arc) arcSet {
	var res arcSet
	for _, a := range s {
		if b.End <= a.Start || b.Start >= a.End {
			res = append(res, a)
			continue
		}
		if b.Start > a.Start {
			res = append(res, Arc{a.Start, b.Start})
		}
		if b.End < a.End {
			res = append(res, Arc{b.End, a.End})
		}
	}
	return res
}

// subtractAll removes every arc of t from s.
func (s arcSet) subtractAll(t arcSet) arcSet {
	for _, b := range t {
		s = s.subtract(b)
		if len(s) == 0 {
			break
		}
	}
	return s
}

// intersect returns the arcs common to s and t.
func (s arcSet) intersect(t arcSet) arcSet {
	var res arcSet
	for _, a := range s {
		for _, b := range t {
			lo := max(a.Start, b.Start)
			hi := min(a.End, b.End)
			if hi > lo {
				res = append(res, Arc{lo, hi})
			}
		}
	}
	// both inputs are sorted and disjoint, so only the order may be off
	for i := 1; i < len(res); i++ {
		for j := i; j > 0 && res[j].Start < res[j-1].Start; j-- {
			res[j], res[j-1] = res[j-1], res[j]
		}
	}
	return res
}

// measure returns the total angular size of s.
func (s arcSet) measure() float64 {
	var m float64
	for _, a := range s {
		m += a.Len()
	}
	return m
}

// mergeSeam joins an arc ending at 2π with an arc starting at 0.  The
// merged arc is moved to the end of the list and ends past 2π.
func (s arcSet) mergeSeam() arcSet {
	n := len(s)
	if n < 2 || s[0].Start != 0 || s[n-1].End != twoPi {
		return s
	}
	res := make(arcSet, 0, n-1)
	res = append(res, s[1:n-1]...)
	return append(res, Arc{s[n-1].Start, s[0].End + twoPi})
}

// dropShort removes arcs not longer than eps.
func (s arcSet) dropShort(eps float64) arcSet {
	var res arcSet
	for _, a := range s {
		if a.Len() > eps {
			res = append(res, a)
		}
	}
	return res
}
