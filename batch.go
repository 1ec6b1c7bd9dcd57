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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ComputeAll runs Compute for every path, in parallel.  The results are
// in the same order as the paths.  If cache is not nil, it is used to
// avoid recomputation.
//
// Once ctx is cancelled, no new computations are started and the context
// error is returned.  Computations already in progress run to completion.
func ComputeAll(ctx context.Context, paths []Path, f Field, opt *Options, cache *Cache) ([]SampledPath, error) {
	res := make([]SampledPath, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if cache != nil {
				res[i] = cache.Compute(p, f, opt)
			} else {
				res[i] = Compute(p, f, opt)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
