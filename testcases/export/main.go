// Command export writes the test cases and their computed inner contours
// to JSON, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/oxide"
	"seehuhn.de/go/oxide/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name          string        `json:"name"`
	Closed        bool          `json:"closed"`
	Nodes         []jsonNode    `json:"nodes"`
	Field         jsonField     `json:"field"`
	Length        float64       `json:"length"`
	Outer         [][]float64   `json:"outer"`
	Thickness     []float64     `json:"thickness"`
	Inner         [][]float64   `json:"inner"`
	InnerPolygons [][][]float64 `json:"inner_polygons,omitempty"`
}

type jsonNode struct {
	Anchor []float64 `json:"anchor"`
	In     []float64 `json:"in,omitempty"`
	Out    []float64 `json:"out,omitempty"`
}

type jsonField struct {
	Uniform  float64      `json:"uniform"`
	Weights  [][2]float64 `json:"weights,omitempty"`
	Mirror   bool         `json:"mirror,omitempty"`
	Progress float64      `json:"progress"`
	Max      float64      `json:"max,omitempty"`
	Spacing  float64      `json:"spacing,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	res := oxide.Compute(tc.Path, tc.Field, nil)

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Closed: res.Closed,
		Length: res.Length,
		Inner:  points(res.Inner),
		Field: jsonField{
			Uniform:  tc.Field.Uniform,
			Mirror:   tc.Field.Mirror,
			Progress: tc.Field.Progress,
			Max:      tc.Field.Max,
			Spacing:  tc.Field.Spacing,
		},
	}
	for _, w := range tc.Field.Weights {
		jtc.Field.Weights = append(jtc.Field.Weights, [2]float64{w.AngleDeg, w.Value})
	}
	for _, n := range tc.Path.Nodes {
		jn := jsonNode{Anchor: point(n.Anchor)}
		if n.In != nil {
			jn.In = point(*n.In)
		}
		if n.Out != nil {
			jn.Out = point(*n.Out)
		}
		jtc.Nodes = append(jtc.Nodes, jn)
	}
	for _, s := range res.Samples {
		jtc.Outer = append(jtc.Outer, point(s.Pos))
		jtc.Thickness = append(jtc.Thickness, s.Thickness)
	}
	for _, poly := range res.InnerPolygons {
		jtc.InnerPolygons = append(jtc.InnerPolygons, points(poly))
	}
	return jtc
}

func point(p vec.Vec2) []float64 {
	return []float64{p.X, p.Y}
}

func points(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = point(p)
	}
	return res
}
