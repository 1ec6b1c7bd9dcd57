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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Node is an anchor point of a path, together with optional Bézier
// control handles.
type Node struct {
	Anchor vec.Vec2
	In     *vec.Vec2 // handle of the segment ending at this node
	Out    *vec.Vec2 // handle of the segment starting at this node
}

// Style holds presentation metadata of a path.
// The geometry pipeline ignores it.
type Style struct {
	Label string
	Width float64
}

// Path is a chain of nodes, joined by cubic Bézier segments.
type Path struct {
	Nodes  []Node
	Closed bool
	Style  Style
}

// Corner returns a node without handles.
func Corner(x, y float64) Node {
	return Node{Anchor: vec.Vec2{X: x, Y: y}}
}

// Smooth returns a node at (x, y) with handles placed symmetrically at
// (x-dx, y-dy) and (x+dx, y+dy).
func Smooth(x, y, dx, dy float64) Node {
	in := vec.Vec2{X: x - dx, Y: y - dy}
	out := vec.Vec2{X: x + dx, Y: y + dy}
	return Node{Anchor: vec.Vec2{X: x, Y: y}, In: &in, Out: &out}
}

// segment is a cubic Bézier segment between two consecutive nodes.
type segment [4]vec.Vec2

func cubicBetween(a, b Node) segment {
	c1 := a.Anchor
	if a.Out != nil {
		c1 = *a.Out
	}
	c2 := b.Anchor
	if b.In != nil {
		c2 = *b.In
	}
	return segment{a.Anchor, c1, c2, b.Anchor}
}

// normalized returns the nodes and the effective closed flag of p.
// For closed paths a final node which repeats the first anchor is merged
// into the first node, and closed paths with fewer than three remaining
// nodes are treated as open.
func (p Path) normalized(eps float64) ([]Node, bool) {
	nodes := p.Nodes
	closed := p.Closed
	if closed && len(nodes) > 1 {
		first, last := nodes[0], nodes[len(nodes)-1]
		if last.Anchor.Sub(first.Anchor).Length() <= eps {
			merged := make([]Node, len(nodes)-1)
			copy(merged, nodes)
			merged[0].In = last.In
			nodes = merged
		}
	}
	if closed && len(nodes) < 3 {
		closed = false
	}
	return nodes, closed
}

// segments returns the Bézier segments of the path.
func (p Path) segments(eps float64) ([]segment, bool) {
	nodes, closed := p.normalized(eps)
	if len(nodes) < 2 {
		return nil, closed
	}
	n := len(nodes) - 1
	if closed {
		n++
	}
	segs := make([]segment, 0, n)
	for i := range n {
		segs = append(segs, cubicBetween(nodes[i], nodes[(i+1)%len(nodes)]))
	}
	return segs, closed
}

// Data converts the path into path data.
// Segments without handles become straight lines.
func (p Path) Data() *path.Data {
	res := &path.Data{}
	nodes, closed := p.normalized(0)
	if len(nodes) == 0 {
		return res
	}
	res = res.MoveTo(nodes[0].Anchor)
	segs, _ := p.segments(0)
	for _, s := range segs {
		if s[1] == s[0] && s[2] == s[3] {
			res = res.LineTo(s[3])
		} else {
			res = res.CubeTo(s[1], s[2], s[3])
		}
	}
	if closed {
		res = res.Close()
	}
	return res
}

// FromData converts path data into a list of paths, one per subpath.
// Quadratic segments are elevated to cubics.
func FromData(d *path.Data) []Path {
	if d == nil {
		return nil
	}

	var res []Path
	var cur *Path
	var subpath vec.Vec2
	flush := func() {
		if cur != nil && len(cur.Nodes) > 0 {
			res = append(res, *cur)
		}
		cur = nil
	}
	last := func() *Node {
		return &cur.Nodes[len(cur.Nodes)-1]
	}
	// drawing after Close continues from the start of the closed subpath
	start := func() {
		if cur == nil {
			cur = &Path{Nodes: []Node{{Anchor: subpath}}}
		}
	}

	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			subpath = d.Coords[k]
			cur = &Path{Nodes: []Node{{Anchor: subpath}}}
			k++
		case path.CmdLineTo:
			start()
			cur.Nodes = append(cur.Nodes, Node{Anchor: d.Coords[k]})
			k++
		case path.CmdQuadTo:
			start()
			p0 := last().Anchor
			q, p3 := d.Coords[k], d.Coords[k+1]
			c1 := p0.Add(q.Sub(p0).Mul(2.0 / 3))
			c2 := p3.Add(q.Sub(p3).Mul(2.0 / 3))
			last().Out = &c1
			cur.Nodes = append(cur.Nodes, Node{Anchor: p3, In: &c2})
			k += 2
		case path.CmdCubeTo:
			start()
			c1, c2 := d.Coords[k], d.Coords[k+1]
			last().Out = &c1
			cur.Nodes = append(cur.Nodes, Node{Anchor: d.Coords[k+2], In: &c2})
			k += 3
		case path.CmdClose:
			if cur != nil {
				cur.Closed = true
				flush()
			}
		}
	}
	flush()
	return res
}
