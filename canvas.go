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

package doodle

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/doodle/raster"
)

// ErrInvalidDimension is returned when a canvas would have a width or
// height smaller than one pixel.
var ErrInvalidDimension = errors.New("invalid canvas dimension")

// Canvas is the persistent pixel buffer which strokes are drawn into.
// Pixels are stored as non-premultiplied RGBA, so that content survives a
// PNG round trip unchanged.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.NRGBA

	// Density is the number of device pixels per style unit.  Values which
	// are not positive are treated as 1.
	Density float64

	r *raster.Rasterizer
}

// NewCanvas allocates a fully transparent canvas.
func NewCanvas(w, h int) (*Canvas, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("canvas %dx%d: %w", w, h, ErrInvalidDimension)
	}
	return &Canvas{
		img:     image.NewNRGBA(image.Rect(0, 0, w, h)),
		Density: 1,
	}, nil
}

// Resize returns a new canvas of the given size, with the content of c
// stretched to fill it.  The aspect ratio is not preserved.  If c is nil,
// a blank canvas is returned.
func (c *Canvas) Resize(w, h int) (*Canvas, error) {
	res, err := NewCanvas(w, h)
	if err != nil || c == nil {
		return res, err
	}
	res.Density = c.Density
	res.Load(c.img)
	return res, nil
}

// Bounds returns the canvas rectangle.  The minimum point is always (0, 0).
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// At returns the color of one pixel.  Coordinates outside the canvas give
// transparent black.
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// Clear sets every pixel to transparent black.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Snapshot returns a copy of the canvas pixels.
func (c *Canvas) Snapshot() *image.NRGBA {
	res := &image.NRGBA{
		Pix:    make([]byte, len(c.img.Pix)),
		Stride: c.img.Stride,
		Rect:   c.img.Rect,
	}
	copy(res.Pix, c.img.Pix)
	return res
}

// Load replaces the canvas content by img.  If the sizes differ, img is
// stretched to the canvas size.  Non-premultiplied and opaque images of the
// same size are copied exactly.
func (c *Canvas) Load(img image.Image) {
	src := img.Bounds()
	dst := c.img.Rect
	if src.Dx() != dst.Dx() || src.Dy() != dst.Dy() {
		clear(c.img.Pix)
		draw.BiLinear.Scale(c.img, dst, img, src, draw.Src, nil)
		return
	}

	if n, ok := img.(*image.NRGBA); ok {
		rowLen := 4 * dst.Dx()
		for y := range dst.Dy() {
			i := n.PixOffset(src.Min.X, src.Min.Y+y)
			copy(c.img.Pix[y*c.img.Stride:y*c.img.Stride+rowLen], n.Pix[i:i+rowLen])
		}
		return
	}
	draw.Draw(c.img, dst, img, src.Min, draw.Src)
}

// DrawLine paints seg with the given style, using round caps.  Endpoints
// are clamped to the canvas.  The stroke width in device pixels is
// s.Width times the canvas density, but at least one pixel.
//
// The returned rectangle contains every pixel which was modified.
func (c *Canvas) DrawLine(seg Segment, s Style) image.Rectangle {
	bounds := c.img.Rect
	clip := rect.Rect{URx: float64(bounds.Dx()), URy: float64(bounds.Dy())}
	a := clampPoint(seg.From, clip)
	b := clampPoint(seg.To, clip)

	if c.r == nil {
		c.r = raster.NewRasterizer(clip)
	} else {
		c.r.Reset(clip)
	}
	density := c.Density
	if !(density > 0) {
		density = 1
	}
	c.r.Width = s.deviceWidth(density)
	c.r.Cap = s.Cap()
	c.r.Join = s.Join()

	dirty := image.Rect(
		int(math.Floor(min(a.X, b.X))),
		int(math.Floor(min(a.Y, b.Y))),
		int(math.Floor(max(a.X, b.X)))+1,
		int(math.Floor(max(a.Y, b.Y)))+1,
	)

	ink := s.Color
	inkA := float32(ink.A) / 255
	c.r.Stroke(raster.Line(a, b), func(y, xMin int, coverage []float32) {
		dirty = dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
		if inkA == 0 {
			return
		}
		row := c.img.Pix[y*c.img.Stride+4*xMin:]
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			compositeOver(row[4*i:4*i+4], ink, inkA*min(cov, 1))
		}
	})

	return dirty.Intersect(bounds)
}

// compositeOver blends ink with effective opacity alpha over the
// non-premultiplied pixel px.
func compositeOver(px []byte, ink color.NRGBA, alpha float32) {
	if alpha >= 1 {
		px[0], px[1], px[2], px[3] = ink.R, ink.G, ink.B, 0xff
		return
	}
	dA := float32(px[3]) / 255
	rest := dA * (1 - alpha)
	outA := alpha + rest
	if outA <= 0 {
		return
	}
	px[0] = uint8((float32(ink.R)*alpha+float32(px[0])*rest)/outA + 0.5)
	px[1] = uint8((float32(ink.G)*alpha+float32(px[1])*rest)/outA + 0.5)
	px[2] = uint8((float32(ink.B)*alpha+float32(px[2])*rest)/outA + 0.5)
	px[3] = uint8(outA*255 + 0.5)
}
