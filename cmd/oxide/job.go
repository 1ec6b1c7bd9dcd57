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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/oxide"
)

// Job describes a growth computation read from a TOML file:
//
//	[field]
//	uniform = 2.0
//	weights = [{ angle = 90, value = 1.5 }]
//
//	[options]
//	spacing = 0.5
//
//	[[path]]
//	label = "gate"
//	closed = true
//	nodes = [[0, 0], [40, 0], [40, 20, 0, 5], [0, 20]]
//
// A node is either [x, y] for a corner or [x, y, dx, dy] for a smooth
// node with handles at ±(dx, dy).
type Job struct {
	Field   FieldConfig   `toml:"field"`
	Options OptionsConfig `toml:"options"`
	Paths   []PathConfig  `toml:"path"`
}

// FieldConfig is the TOML form of oxide.Field.
type FieldConfig struct {
	Uniform  float64        `toml:"uniform"`
	Weights  []WeightConfig `toml:"weights"`
	Mirror   bool           `toml:"mirror"`
	Progress *float64       `toml:"progress"` // default 1
	Max      float64        `toml:"max"`
	Spacing  float64        `toml:"spacing"`
}

// WeightConfig is the TOML form of oxide.DirectionWeight.
type WeightConfig struct {
	Angle float64 `toml:"angle"`
	Value float64 `toml:"value"`
}

// OptionsConfig overrides selected fields of oxide.DefaultOptions.
type OptionsConfig struct {
	Spacing          *float64 `toml:"spacing"`
	NormalWindow     *int     `toml:"normal_window"`
	ArcSteps         *int     `toml:"arc_steps"`
	SmoothIterations *int     `toml:"smooth_iterations"`
	SmoothDamping    *float64 `toml:"smooth_damping"`
	CompassSegments  *int     `toml:"compass_segments"`
	RestrictToInward *bool    `toml:"restrict_to_inward"`
}

// PathConfig is the TOML form of oxide.Path.
type PathConfig struct {
	Label  string      `toml:"label"`
	Closed bool        `toml:"closed"`
	Width  float64     `toml:"width"`
	Nodes  [][]float64 `toml:"nodes"`
}

var errNode = errors.New("a node needs 2 or 4 coordinates")

// readJob decodes a job.  Unknown keys are rejected.
func readJob(r io.Reader) (*Job, error) {
	job := &Job{}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(job); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return nil, fmt.Errorf("job: line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("job: %w", err)
	}
	return job, nil
}

func loadJob(fname string) (*Job, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readJob(f)
}

// PathList converts the paths of the job.
func (j *Job) PathList() ([]oxide.Path, error) {
	res := make([]oxide.Path, 0, len(j.Paths))
	for i, pc := range j.Paths {
		p := oxide.Path{
			Closed: pc.Closed,
			Style:  oxide.Style{Label: pc.Label, Width: pc.Width},
		}
		for k, c := range pc.Nodes {
			switch len(c) {
			case 2:
				p.Nodes = append(p.Nodes, oxide.Corner(c[0], c[1]))
			case 4:
				p.Nodes = append(p.Nodes, oxide.Smooth(c[0], c[1], c[2], c[3]))
			default:
				return nil, fmt.Errorf("path %d, node %d: %w", i, k, errNode)
			}
		}
		if p.Style.Label == "" {
			p.Style.Label = fmt.Sprintf("path%d", i)
		}
		res = append(res, p)
	}
	return res, nil
}

// GrowthField returns the thickness field of the job.
func (j *Job) GrowthField() oxide.Field {
	fc := j.Field
	f := oxide.Field{
		Uniform:  fc.Uniform,
		Mirror:   fc.Mirror,
		Progress: 1,
		Max:      fc.Max,
		Spacing:  fc.Spacing,
	}
	if fc.Progress != nil {
		f.Progress = *fc.Progress
	}
	for _, w := range fc.Weights {
		f.Weights = append(f.Weights, oxide.DirectionWeight{AngleDeg: w.Angle, Value: w.Value})
	}
	return f
}

// ComputeOptions returns the default options with the overrides of the
// job applied.
func (j *Job) ComputeOptions() *oxide.Options {
	o := oxide.DefaultOptions()
	oc := j.Options
	if oc.Spacing != nil {
		o.Spacing = *oc.Spacing
	}
	if oc.NormalWindow != nil {
		o.NormalWindow = *oc.NormalWindow
	}
	if oc.ArcSteps != nil {
		o.ArcSteps = *oc.ArcSteps
	}
	if oc.SmoothIterations != nil {
		o.SmoothIterations = *oc.SmoothIterations
	}
	if oc.SmoothDamping != nil {
		o.SmoothDamping = *oc.SmoothDamping
	}
	if oc.CompassSegments != nil {
		o.CompassSegments = *oc.CompassSegments
	}
	if oc.RestrictToInward != nil {
		o.RestrictToInward = *oc.RestrictToInward
	}
	return o
}
