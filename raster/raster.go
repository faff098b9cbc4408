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

// Package raster turns stroked line paths into anti-aliased pixel coverage.
//
// All coordinates are device pixels.  Coverage is delivered one scanline at
// a time through a callback, so the caller decides how to composite it.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  Coverage[i] is the
// fraction of pixel (xMin+i, y) covered by the shape, in the range [0, 1].
// The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer computes pixel coverage for stroked paths.
// Internal buffers are kept between calls, so a single Rasterizer can be
// reused for many strokes without allocating.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip limits output to this rectangle.  The coordinates must be
	// integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between an arc and the
	// polygon used to approximate it.  Must be positive.
	Flatness float64

	// Width is the stroke width in pixels.  Must be positive.
	Width float64

	// Cap is the style used at the two ends of an open subpath.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments of a subpath meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins.  Must be at least 1.
	MiterLimit float64

	// smallPathThreshold is the largest bounding box area (in pixels) which
	// is accumulated into a full 2D buffer.  Larger shapes are scanned with
	// an active edge list instead.
	smallPathThreshold int

	cover         []float32
	area          []float32
	edges         []edge
	activeIdx     []int
	rowHasEdges   []bool
	crossings     []float64
	stroke        []vec.Vec2 // outline vertices of all polygons
	strokeOffsets []int      // start of each polygon in stroke

	segs             []strokeSegment
	backSegs         []strokeSegment
	segsOffsets      []int
	subpathClosed    []bool
	degeneratePoints []vec.Vec2

	bboxEmpty bool
	bboxXMin  float64
	bboxXMax  float64
	bboxYMin  float64
	bboxYMax  float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.
// The stroke parameters are set to a one pixel wide line with round caps
// and round joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// The internal buffers keep their capacity.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	r.MiterLimit = defaultMiterLimit
	r.smallPathThreshold = smallPathThreshold

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowHasEdges = r.rowHasEdges[:0]
	r.crossings = r.crossings[:0]
	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]
	r.segs = r.segs[:0]
	r.backSegs = r.backSegs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]
}

// addEdge appends the polygon edge p0→p1 and grows the bounding box.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	xLo, xHi := min(p0.X, p1.X), max(p0.X, p1.X)
	yLo, yHi := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = xLo, xHi
		r.bboxYMin, r.bboxYMax = yLo, yHi
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, xLo)
	r.bboxXMax = max(r.bboxXMax, xHi)
	r.bboxYMin = min(r.bboxYMin, yLo)
	r.bboxYMax = max(r.bboxYMax, yHi)
}

// clippedBBox returns the integer pixel range touched by the collected
// edges, intersected with the clip rectangle.
func (r *Rasterizer) clippedBBox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Every pixel keeps two accumulators.  "cover" is the signed height of all
// edge pieces crossing the pixel, "area" is the same height weighted by the
// fraction of the pixel to the right of the crossing.  Scanning a row from
// left to right, the coverage of a pixel is the running sum of "cover" over
// the pixels to its left plus its own "area".

// accumulateEdge adds the part of e inside scanline y to cover and area.
// The buffers are indexed by x-bboxXMin.  Contributions left of the buffer
// are folded into its first pixel, contributions to the right are dropped.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixRight < bboxXMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= bboxXMax:
		return
	case pixLeft == pixRight:
		r.accumulatePiece(e, yTop, yBot, sign, cover, area, bboxXMin, bboxXMax)
		return
	}

	// The edge crosses several pixel columns inside this row: split it
	// where it crosses the vertical pixel boundaries.
	dydx := 1 / e.dxdy
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		r.accumulatePiece(e, y0, y1, sign, cover, area, bboxXMin, bboxXMax)
	}
}

// accumulatePiece handles a piece of e between yTop and yBot which lies
// inside a single pixel column.
func (r *Rasterizer) accumulatePiece(e *edge, yTop, yBot float64, sign float32, cover, area []float32, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	pix := int(math.Floor(xMid))
	switch {
	case pix < bboxXMin:
		cover[0] += c
		area[0] += c
	case pix < bboxXMax:
		idx := pix - bboxXMin
		cover[idx] += c
		area[idx] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrateNonZero turns the accumulators of one row into coverage values,
// using the nonzero winding rule.  The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros strips leading and trailing zeros from coverage.
// If all values are zero, trimmed is nil.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillEdges rasterises the collected edges with the nonzero rule.
func (r *Rasterizer) fillEdges(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.clippedBBox()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// fillSmall accumulates all edges into a 2D buffer covering the bounding
// box, then integrates row by row.
func (r *Rasterizer) fillSmall(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		eyMin := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		eyMax := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := eyMin; y < eyMax; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// fillLarge scans the bounding box one row at a time, keeping a list of
// the edges which intersect the current row.
func (r *Rasterizer) fillLarge(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yBot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yTop {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, lo := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+lo, trimmed)
		}
	}
}

const (
	// defaultFlatness is small enough that the polygon approximation of
	// round caps is not visible.
	defaultFlatness = 0.25

	// defaultMiterLimit is the PDF default, which bevels corners sharper
	// than about 11.5 degrees.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold selects between fillSmall and fillLarge.
	smallPathThreshold = 65536

	zeroLengthThreshold = 1e-10

	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path reversing onto itself, cos(179.43°).
	cuspCosineThreshold = -0.9999
)
