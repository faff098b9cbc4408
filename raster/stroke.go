// seehuhn.de/go/doodle - a freehand drawing surface
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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a non-degenerate line segment of a flattened path.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// reversed returns the segment traversed from B to A.
func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// Line returns the path consisting of the single segment a→b.
func Line(a, b vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{a}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{b})
	}
}

// Stroke computes the coverage of the outline of p, using the Width, Cap,
// Join and MiterLimit fields.  Only MoveTo, LineTo and Close commands are
// used, curve commands are ignored.  A subpath which has no extent is drawn
// as a dot if Cap is graphics.LineCapRound.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}

	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	// All outlines are filled together with the nonzero rule, so that
	// overlapping parts of the stroke are painted only once.
	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			start := len(r.stroke)
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, start)
		}
	}

	for i := range r.segsOffsets {
		segs := r.subpath(i)
		if r.subpathClosed[i] {
			r.strokeClosed(segs, d)
		} else {
			r.strokeOpen(segs, d)
		}
	}

	r.fillStroke(emit)
}

// subpath returns the segments of the i-th flattened subpath.
func (r *Rasterizer) subpath(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

// flattenPath splits p into subpaths of line segments, stored in r.segs.
// Subpaths without any segment of positive length go to
// r.degeneratePoints instead.
func (r *Rasterizer) flattenPath(p path.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, start vec.Vec2
	startIdx := 0
	open := false  // inside a subpath
	drawn := false // the subpath has a LineTo, possibly of zero length

	finish := func(closed bool) {
		switch {
		case len(r.segs) > startIdx:
			r.segsOffsets = append(r.segsOffsets, startIdx)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.degeneratePoints = append(r.degeneratePoints, start)
		}
		startIdx = len(r.segs)
		open = false
		drawn = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			current = pts[0]
			start = current
			open = true

		case path.CmdLineTo:
			if !open {
				continue
			}
			drawn = true
			r.addStrokeSegment(current, pts[0])
			current = pts[0]

		case path.CmdClose:
			if !open {
				continue
			}
			if current != start {
				r.addStrokeSegment(current, start)
			}
			finish(true)
			current = start
		}
	}
	if open {
		finish(false)
	}
}

// addStrokeSegment appends a→b to r.segs, unless it has zero length.
func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeOpen appends the outline of an open subpath as a single polygon:
// start cap, the +N side forwards, end cap, the -N side backwards.
func (r *Rasterizer) strokeOpen(segs []strokeSegment, d float64) {
	start := len(r.stroke)
	first := segs[0]
	last := segs[len(segs)-1]

	r.addCap(first.A, first.T.Mul(-1), d)
	r.offsetSide(segs, false, d)
	r.addCap(last.B, last.T, d)

	r.offsetSide(r.reverse(segs), false, d)

	r.closePolygon(start)
}

// strokeClosed appends the outline of a closed subpath as two rings, one
// on each side of the path.  The rings have opposite orientation, so that
// the nonzero rule fills only the area between them.
func (r *Rasterizer) strokeClosed(segs []strokeSegment, d float64) {
	start := len(r.stroke)
	r.offsetSide(segs, true, d)
	r.closePolygon(start)

	start = len(r.stroke)
	r.offsetSide(r.reverse(segs), true, d)
	r.closePolygon(start)
}

// reverse returns segs in opposite order and direction.  The result is
// stored in a buffer which is reused by the next call.
func (r *Rasterizer) reverse(segs []strokeSegment) []strokeSegment {
	r.backSegs = r.backSegs[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		r.backSegs = append(r.backSegs, segs[i].reversed())
	}
	return r.backSegs
}

// closePolygon records the vertices from start onwards as one polygon, or
// discards them if they cannot enclose any area.
func (r *Rasterizer) closePolygon(start int) {
	if len(r.stroke)-start < 3 {
		r.stroke = r.stroke[:start]
		return
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}

// offsetSide appends the vertices of the line at distance d on the +N side
// of segs.  Corners where this side is the outer side get a join, inner
// corners are cut at the intersection of the two offset lines.  For closed
// paths the corner between the last and the first segment is included and
// the start point is omitted.
func (r *Rasterizer) offsetSide(segs []strokeSegment, closed bool, d float64) {
	n := len(segs)
	if !closed {
		r.stroke = append(r.stroke, segs[0].A.Add(segs[0].N.Mul(d)))
	}

	corners := n - 1
	if closed {
		corners = n
	}
	for i := range corners {
		a := &segs[i]
		b := &segs[(i+1)%n]
		r.addCorner(a, b, d)
	}

	if !closed {
		r.stroke = append(r.stroke, segs[n-1].B.Add(segs[n-1].N.Mul(d)))
	}
}

// addCorner appends the +N side vertices at the point where a ends and b
// starts.
func (r *Rasterizer) addCorner(a, b *strokeSegment, d float64) {
	P := a.B
	cos := a.T.Dot(b.T)
	sin := a.T.X*b.T.Y - a.T.Y*b.T.X

	switch {
	case cos < cuspCosineThreshold:
		// the path turns back onto itself
		r.stroke = append(r.stroke, P.Add(a.N.Mul(d)))
		r.addCap(P, a.T, d)
		r.stroke = append(r.stroke, P.Add(b.N.Mul(d)))

	case math.Abs(sin) < collinearityThreshold:
		r.stroke = append(r.stroke, P.Add(a.N.Mul(d)))

	case sin > 0:
		// +N is the inner side of the turn
		if q, ok := innerIntersection(P, a.T, b.T, d); ok {
			r.stroke = append(r.stroke, q)
		} else {
			r.stroke = append(r.stroke, P.Add(a.N.Mul(d)), P.Add(b.N.Mul(d)))
		}

	default:
		// +N is the outer side of the turn
		r.stroke = append(r.stroke, P.Add(a.N.Mul(d)))
		r.addJoin(P, a.T, b.T, d)
		r.stroke = append(r.stroke, P.Add(b.N.Mul(d)))
	}
}

// innerIntersection returns the point where the +N offset lines of two
// segments with tangents T1 and T2 meet, for a corner at P which turns
// towards +N.
func innerIntersection(P, T1, T2 vec.Vec2, d float64) (vec.Vec2, bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cos) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * cosHalf))), true
}

// addCap appends the cap at the path end P.  T points away from the path.
// The vertices run from the +N side of the incoming direction to the -N
// side.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
	// butt caps need no extra vertices
}

// addJoin appends the vertices strictly between the two offset points of
// an outer corner at P, where the tangent turns from T1 to T2 away from +N.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cos := T1.Dot(T2)
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter tip is at distance d/cos(θ/2) from P, where θ is the
		// angle between the tangents.
		cosHalf := math.Sqrt((1 + cos) / 2)
		const eps = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+eps {
			bisector := N1.Add(N2)
			if l := bisector.Length(); l > zeroLengthThreshold {
				r.stroke = append(r.stroke, P.Add(bisector.Mul(d/(l*cosHalf))))
			}
		}
		// beyond the miter limit the corner is bevelled

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		r.addArc(P, d, N1, -angle, false)
	}
	// bevel joins need no extra vertices
}

// addArc appends points on the circle around center with the given radius,
// starting in direction startDir and sweeping by sweep radians (positive
// is counter-clockwise in a y-up system).  The end point is always
// included, the start point only if includeStart is set.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	// A chord spanning the angle θ deviates from the circle by
	// radius*(1-cos(θ/2)); choose θ so that this equals Flatness.
	step := math.Pi / 2
	if radius > r.Flatness {
		step = min(step, 2*math.Acos(1-r.Flatness/radius))
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)

	first := 1
	if includeStart {
		first = 0
	}
	dt := sweep / float64(n)
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}

// fillStroke converts the collected outline polygons into edges and fills
// them.
func (r *Rasterizer) fillStroke(emit EmitFunc) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}

	r.fillEdges(emit)
}
