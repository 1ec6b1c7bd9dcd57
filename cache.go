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
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"seehuhn.de/go/geom/vec"
)

// DefaultCacheEntries is the capacity of a cache created with a
// non-positive size.
const DefaultCacheEntries = 256

// Fingerprint returns a hash of everything which influences the result
// of Compute.  The curve evaluator and polygon cleaner are not included.
// Style metadata of the path is ignored.
func Fingerprint(p Path, f Field, opt *Options) uint64 {
	o := opt.resolve()
	h := fnv.New64a()
	w := hashWriter{h: h}

	w.bool(p.Closed)
	w.int(len(p.Nodes))
	for _, n := range p.Nodes {
		w.vec(n.Anchor)
		w.handle(n.In)
		w.handle(n.Out)
	}

	w.float(f.Uniform)
	w.int(len(f.Weights))
	for _, wt := range f.Weights {
		w.float(wt.AngleDeg)
		w.float(wt.Value)
	}
	w.bool(f.Mirror)
	w.float(f.Progress)
	w.float(f.Max)
	w.float(f.Spacing)

	w.float(o.Spacing)
	w.int(o.MinSamples)
	w.float(o.ArcAccuracy)
	w.int(o.NormalWindow)
	w.int(o.ArcSteps)
	w.float(o.DedupeFraction)
	w.int(o.SmoothIterations)
	w.float(o.SmoothDamping)
	w.float(o.CleanupTolerance)
	w.int(o.CompassSegments)
	w.bool(o.RestrictToInward)
	w.float(o.Epsilon)
	w.float(o.RadiusEpsilon)
	w.float(o.AngleEpsilon)

	return h.Sum64()
}

type hashWriter struct {
	h   hash.Hash64
	buf [8]byte
}

func (w *hashWriter) uint(x uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], x)
	w.h.Write(w.buf[:])
}

func (w *hashWriter) float(x float64) { w.uint(math.Float64bits(x)) }
func (w *hashWriter) int(x int)       { w.uint(uint64(x)) }

func (w *hashWriter) bool(b bool) {
	if b {
		w.uint(1)
	} else {
		w.uint(0)
	}
}

func (w *hashWriter) vec(v vec.Vec2) {
	w.float(v.X)
	w.float(v.Y)
}

func (w *hashWriter) handle(v *vec.Vec2) {
	if v == nil {
		w.bool(false)
		return
	}
	w.bool(true)
	w.vec(*v)
}

// Cache memoises results of Compute.  It is safe for concurrent use.
// When the cache is full, the least recently used entry is evicted.
type Cache struct {
	lru *lru.Cache[uint64, SampledPath]

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// CacheStats reports the activity of a cache.
type CacheStats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewCache returns a cache holding at most size results.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheEntries
	}
	// lru.New only fails for non-positive sizes
	l, err := lru.New[uint64, SampledPath](size)
	if err != nil {
		panic(err)
	}
	return &Cache{lru: l}
}

// Compute returns the cached result for the given inputs, computing it
// if necessary.  The returned value shares its slices with the cache and
// must not be modified.
func (c *Cache) Compute(p Path, f Field, opt *Options) SampledPath {
	key := Fingerprint(p, f, opt)
	if res, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return res
	}
	c.misses.Add(1)
	res := Compute(p, f, opt)
	if c.lru.Add(key, res) {
		c.evictions.Add(1)
	}
	return res
}

// Stats returns the current cache statistics.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries:   c.lru.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Clear removes all entries.  The statistics are kept.
func (c *Cache) Clear() {
	c.lru.Purge()
}
