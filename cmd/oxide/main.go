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

// Command oxide computes the inner contour of grown material for the
// outlines given in a TOML job file or traced from a PNG mask.
//
// Usage:
//
//	oxide -job sketch.toml -pdf out.pdf
//	oxide -mask layer.png -scale 0.1 -growth 0.5 -png out.png -json out.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"seehuhn.de/go/oxide"
	"seehuhn.de/go/oxide/internal/preview"
)

func main() {
	var (
		jobFile  = flag.String("job", "", "TOML job file")
		maskFile = flag.String("mask", "", "PNG mask to trace, instead of a job file")
		scale    = flag.Float64("scale", 1, "size of a mask pixel in µm")
		growth   = flag.Float64("growth", math.NaN(), "uniform growth, overrides the job")
		progress = flag.Float64("progress", math.NaN(), "growth progress in [0, 1], overrides the job")
		pdfOut   = flag.String("pdf", "", "write a PDF preview")
		pngOut   = flag.String("png", "", "write a PNG preview")
		width    = flag.Int("width", 800, "width of the PNG preview in pixels")
		jsonOut  = flag.String("json", "", "write a JSON summary (\"-\" for stdout)")
		verbose  = flag.Bool("v", false, "log details of the computation")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if *verbose {
		oxide.SetLogger(logger)
	}

	cfg := config{
		jobFile:  *jobFile,
		maskFile: *maskFile,
		scale:    *scale,
		growth:   *growth,
		progress: *progress,
		pdfOut:   *pdfOut,
		pngOut:   *pngOut,
		width:    *width,
		jsonOut:  *jsonOut,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("oxide failed", "error", err)
		stop()
		os.Exit(1)
	}
}

type config struct {
	jobFile, maskFile string
	scale             float64
	growth, progress  float64 // NaN if unset
	pdfOut, pngOut    string
	width             int
	jsonOut           string
}

var errInput = errors.New("exactly one of -job and -mask is required")

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	var paths []oxide.Path
	field := oxide.NewField(0)
	opt := oxide.DefaultOptions()

	switch {
	case cfg.jobFile != "" && cfg.maskFile == "":
		job, err := loadJob(cfg.jobFile)
		if err != nil {
			return err
		}
		paths, err = job.PathList()
		if err != nil {
			return err
		}
		field = job.GrowthField()
		opt = job.ComputeOptions()
	case cfg.maskFile != "" && cfg.jobFile == "":
		var err error
		paths, err = loadMask(cfg.maskFile, cfg.scale, logger)
		if err != nil {
			return err
		}
	default:
		return errInput
	}

	if !math.IsNaN(cfg.growth) {
		field.Uniform = cfg.growth
	}
	if !math.IsNaN(cfg.progress) {
		field.Progress = cfg.progress
	}
	if err := field.Validate(); err != nil {
		return fmt.Errorf("invalid growth field: %w", err)
	}

	logger.Info("computing", "paths", len(paths))
	results, err := oxide.ComputeAll(ctx, paths, field, opt, nil)
	if err != nil {
		return err
	}

	items := make([]preview.Item, len(paths))
	for i := range paths {
		items[i] = preview.Item{Path: paths[i], Result: results[i]}
		if k := results[i].SelfIntersections(); k > 0 {
			logger.Warn("inner contour self-intersects",
				"path", paths[i].Style.Label, "crossings", k)
		}
	}

	if cfg.pdfOut != "" {
		if err := preview.WritePDF(cfg.pdfOut, items); err != nil {
			return err
		}
		logger.Info("wrote PDF preview", "file", cfg.pdfOut)
	}
	if cfg.pngOut != "" {
		if err := preview.WritePNG(cfg.pngOut, preview.RenderPNG(items, cfg.width)); err != nil {
			return err
		}
		logger.Info("wrote PNG preview", "file", cfg.pngOut)
	}
	if cfg.jsonOut != "" {
		if err := writeSummary(cfg.jsonOut, items); err != nil {
			return err
		}
	}
	return nil
}

// summary is the JSON description of a single result.
type summary struct {
	Label             string       `json:"label"`
	Closed            bool         `json:"closed"`
	Samples           int          `json:"samples"`
	Length            float64      `json:"length"`
	Area              float64      `json:"area"` // of the inner polygons
	SelfIntersections int          `json:"self_intersections"`
	Bounds            [4]float64   `json:"bounds"`
	Inner             [][2]float64 `json:"inner"`
}

func summarize(it preview.Item) summary {
	res := it.Result
	s := summary{
		Label:             it.Path.Style.Label,
		Closed:            res.Closed,
		Samples:           len(res.Samples),
		Length:            res.Length,
		SelfIntersections: res.SelfIntersections(),
	}
	for _, poly := range res.InnerPolygons {
		s.Area += math.Abs(oxide.SignedArea(poly))
	}
	b := res.Bounds()
	s.Bounds = [4]float64{b.LLx, b.LLy, b.URx, b.URy}
	for _, p := range res.Inner {
		s.Inner = append(s.Inner, [2]float64{p.X, p.Y})
	}
	return s
}

func writeSummary(fname string, items []preview.Item) error {
	var w io.Writer = os.Stdout
	if fname != "-" {
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	out := make([]summary, len(items))
	for i, it := range items {
		out[i] = summarize(it)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
