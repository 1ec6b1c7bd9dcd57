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

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestOccluded(t *testing.T) {
	o := DefaultOptions().resolve()
	a := Disk{Center: v(0, 0), Radius: 1}

	cases := []struct {
		name string
		b    Disk
		want float64 // measure of the occluded set
	}{
		{"far", Disk{v(3, 0), 1}, 0},
		{"touching", Disk{v(2, 0), 1}, 0},
		{"inside_larger", Disk{v(0.5, 0), 2}, twoPi},
		{"inside_smaller", Disk{v(0.2, 0), 0.5}, 0},
		{"coincident_equal", Disk{v(0, 0), 1}, twoPi},
		{"coincident_smaller", Disk{v(0, 0), 0.5}, 0},
		{"coincident_larger", Disk{v(0, 0), 2}, twoPi},
		{"empty", Disk{v(0.5, 0), 0}, 0},
		{"half", Disk{v(1, 0), 1}, 2 * math.Pi / 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := occluded(a, c.b, o).measure()
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("occluded measure %g, want %g", got, c.want)
			}
		})
	}
}

// Equal coincident disks hide each other, whatever their order.
func TestVisibleArcsTie(t *testing.T) {
	disks := []Disk{{v(0, 0), 1}, {v(0, 0), 1}}
	for i := range disks {
		if arcs := VisibleArcs(disks, i, nil); len(arcs) != 0 {
			t.Errorf("disk %d: %v, want nothing", i, arcs)
		}
	}

	disks = append(disks, Disk{v(0, 0), 0.5})
	if arcs := VisibleArcs(disks, 2, nil); len(arcs) != 0 {
		t.Errorf("smaller disk: %v, want nothing", arcs)
	}
	disks[2].Radius = 1.5
	if arcs := VisibleArcs(disks, 2, nil); len(arcs) != 1 || math.Abs(arcs[0].Len()-twoPi) > 1e-12 {
		t.Errorf("larger disk: %v, want the full circle", arcs)
	}
}

// Adding disks can only hide more of a disk's boundary.
func TestVisibleArcsMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	measure := func(arcs []Arc) float64 {
		var m float64
		for _, a := range arcs {
			m += a.Len()
		}
		return m
	}

	for range 50 {
		var disks []Disk
		for range 12 {
			disks = append(disks, Disk{
				Center: v(rng.Float64()*10, rng.Float64()*10),
				Radius: rng.Float64() * 3,
			})
		}
		for n := 2; n <= len(disks); n++ {
			before := measure(VisibleArcs(disks[:n-1], 0, nil))
			after := measure(VisibleArcs(disks[:n], 0, nil))
			if after > before+1e-12 {
				t.Fatalf("visible measure grew from %g to %g", before, after)
			}
		}
	}
}

func TestSelectPointInward(t *testing.T) {
	o := DefaultOptions().resolve()
	s := SamplePoint{Pos: v(0, 0), Normal: v(0, -1), Thickness: 2}
	d := Disk{Center: s.Pos, Radius: 2}

	ep := selectPoint(d, s, visibleArcs([]Disk{d}, 0, o), o)
	if !ep.Found {
		t.Fatal("no point found")
	}
	if !near(ep.Point, v(0, 2), 1e-12) {
		t.Errorf("point %v, want (0, 2)", ep.Point)
	}
}

func TestSelectPointOccluded(t *testing.T) {
	o := DefaultOptions().resolve()
	s := SamplePoint{Pos: v(0, 0), Normal: v(0, -1), Thickness: 1}
	disks := []Disk{{v(0, 0), 1}, {v(0, 0.5), 1}}

	// The second disk hides the inward direction.  The best visible
	// point sits at the edge of the hidden arc, where cos φ = 1/4.
	ep := selectPoint(disks[0], s, visibleArcs(disks, 0, o), o)
	if !ep.Found {
		t.Fatal("no point found")
	}
	if math.Abs(ep.Point.Y-0.25) > 1e-9 {
		t.Errorf("point %v, want y = 0.25", ep.Point)
	}
	if r := ep.Point.Length(); math.Abs(r-1) > 1e-9 {
		t.Errorf("point %v is not on the disk boundary", ep.Point)
	}
}

func TestSelectPointFallback(t *testing.T) {
	o := DefaultOptions().resolve()
	s := SamplePoint{Pos: v(1, 1), Normal: v(0, -1), Thickness: 1}
	disks := []Disk{{v(1, 1), 1}, {v(1, 1.2), 3}}

	ep := selectPoint(disks[0], s, visibleArcs(disks, 0, o), o)
	if ep.Found {
		t.Error("point found on a hidden disk")
	}
	if !near(ep.Point, v(1, 2), 1e-12) {
		t.Errorf("point %v, want the naive offset (1, 2)", ep.Point)
	}
}

func TestMaterialArcs(t *testing.T) {
	o := DefaultOptions().resolve()
	s := SamplePoint{Pos: v(0, 0), Normal: v(0, -1), Thickness: 1}
	d := Disk{Center: s.Pos, Radius: 1}

	pts := materialArcs(d, s, fullCircle(), o)
	if len(pts) < 2 {
		t.Fatalf("got %d points", len(pts))
	}
	for _, p := range pts {
		if p.Y < -1e-12 {
			t.Errorf("point %v outside the inward half-plane", p)
		}
	}

	o.RestrictToInward = false
	all := materialArcs(d, s, fullCircle(), o)
	if len(all) <= len(pts) {
		t.Errorf("unrestricted walk has %d points, restricted %d", len(all), len(pts))
	}
}
