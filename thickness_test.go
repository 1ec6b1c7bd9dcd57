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
	"errors"
	"math"
	"testing"
)

func TestFieldAt(t *testing.T) {
	quarter := []DirectionWeight{{AngleDeg: 0, Value: 0}, {AngleDeg: 90, Value: 4}}

	cases := []struct {
		name  string
		field Field
		theta float64
		want  float64
	}{
		{"uniform", NewField(3), 1.234, 3},
		{"uniform_negative", NewField(-5), 0, 0},
		{"keyframe", Field{Weights: quarter, Progress: 1}, math.Pi / 2, 4},
		{"between", Field{Weights: quarter, Progress: 1}, math.Pi / 4, 2},
		{"wrap_above", Field{Weights: quarter, Progress: 1}, math.Pi, 8.0 / 3},
		{"wrap_below", Field{Weights: quarter, Progress: 1}, -math.Pi / 2, 4.0 / 3},
		{"wrap_turn", Field{Weights: quarter, Progress: 1}, 2*math.Pi + math.Pi/4, 2},
		{"single_weight", Field{Uniform: 1, Weights: quarter[1:], Progress: 1}, -2, 5},
		{"progress_half", Field{Uniform: 4, Progress: 0.5}, 0, 2},
		{"progress_zero", Field{Uniform: 4}, 0, 0},
		{"progress_clamped", Field{Uniform: 4, Progress: 7}, 0, 4},
		{"max", Field{Uniform: 10, Max: 3, Progress: 1}, 0, 3},
		{"max_default", NewField(2 * DefaultMaxThickness), 0, DefaultMaxThickness},
		{"max_before_progress", Field{Uniform: 10, Max: 4, Progress: 0.5}, 0, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.field.At(c.theta)
			if math.Abs(got-c.want) > 1e-12 {
				t.Errorf("At(%g) = %g, want %g", c.theta, got, c.want)
			}
		})
	}
}

func TestFieldMirror(t *testing.T) {
	f := Field{
		Weights:  []DirectionWeight{{AngleDeg: 0, Value: 0}, {AngleDeg: 180, Value: 4}},
		Progress: 1,
	}
	if got := f.At(0); got != 0 {
		t.Errorf("without mirror: At(0) = %g, want 0", got)
	}

	f.Mirror = true
	for _, theta := range []float64{0, math.Pi, 0.3, math.Pi - 0.3} {
		if got := f.At(theta); math.Abs(got-2) > 1e-12 {
			t.Errorf("with mirror: At(%g) = %g, want 2", theta, got)
		}
	}
}

func TestFieldDuplicateAngle(t *testing.T) {
	f := Field{
		Weights: []DirectionWeight{
			{AngleDeg: 0, Value: 1},
			{AngleDeg: 360, Value: 5},
		},
		Progress: 1,
	}
	if got := f.At(0.7); got != 1 {
		t.Errorf("At = %g, want the first of the duplicate weights", got)
	}
	if err := f.Validate(); !errors.Is(err, ErrDuplicateAngle) {
		t.Errorf("Validate() = %v, want ErrDuplicateAngle", err)
	}
}

func TestFieldValidate(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		want  []error
	}{
		{"valid", Field{Uniform: 1, Weights: []DirectionWeight{{45, 1}}, Progress: 1}, nil},
		{"progress", Field{Uniform: 1, Progress: 1.5}, []error{ErrProgressRange}},
		{"progress_nan", Field{Uniform: 1, Progress: math.NaN()}, []error{ErrProgressRange}},
		{"max", Field{Uniform: 1, Progress: 1, Max: -1}, []error{ErrNegativeMax}},
		{"uniform", Field{Uniform: math.Inf(1), Progress: 1}, []error{ErrInvalidValue}},
		{"weight", Field{Progress: 1, Weights: []DirectionWeight{{math.NaN(), 1}}}, []error{ErrInvalidValue}},
		{"several", Field{Progress: -1, Max: -1}, []error{ErrProgressRange, ErrNegativeMax}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.field.Validate()
			if c.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			for _, w := range c.want {
				if !errors.Is(err, w) {
					t.Errorf("error %v does not match %v", err, w)
				}
			}
		})
	}
}

func TestEvalThickness(t *testing.T) {
	f := Field{
		Weights:  []DirectionWeight{{AngleDeg: 0, Value: 0}, {AngleDeg: 90, Value: 4}},
		Progress: 1,
	}
	in := []SamplePoint{
		{Normal: v(0, -1)}, // inward direction 90°
		{Normal: v(-1, 0)}, // inward direction 0°
	}
	out := EvalThickness(in, f)
	if math.Abs(out[0].Thickness-4) > 1e-12 || math.Abs(out[1].Thickness) > 1e-12 {
		t.Errorf("thickness = %g, %g, want 4, 0", out[0].Thickness, out[1].Thickness)
	}
	if in[0].Thickness != 0 {
		t.Error("input samples were modified")
	}
}
