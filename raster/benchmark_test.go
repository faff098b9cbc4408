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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkStrokeLine benchmarks a single diagonal stroke with butt caps.
func BenchmarkStrokeLine(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			s := float64(size)
			a := vec.Vec2{X: 0.1 * s, Y: 0.2 * s}
			c := vec.Vec2{X: 0.9 * s, Y: 0.7 * s}
			width := 0.05 * s

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = width
				r.Cap = graphics.LineCapButt
				r.Stroke(Line(a, c), func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorLine draws the outline of the same stroke with
// x/image/vector.
func BenchmarkVectorLine(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			s := float64(size)
			a := vec.Vec2{X: 0.1 * s, Y: 0.2 * s}
			c := vec.Vec2{X: 0.9 * s, Y: 0.7 * s}
			d := c.Sub(a)
			n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(0.025 * s / d.Length())
			quad := []vec.Vec2{a.Add(n), c.Add(n), c.Sub(n), a.Sub(n)}

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				z.MoveTo(float32(quad[0].X), float32(quad[0].Y))
				for _, p := range quad[1:] {
					z.LineTo(float32(p.X), float32(p.Y))
				}
				z.ClosePath()
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeRound measures the cost of round caps, which is what the
// drawing surface uses for every segment.
func BenchmarkStrokeRound(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			s := float64(size)
			a := vec.Vec2{X: 0.3 * s, Y: 0.3 * s}
			c := vec.Vec2{X: 0.6 * s, Y: 0.4 * s}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = 0.1 * s
				r.Stroke(Line(a, c), func(y, xMin int, coverage []float32) {})
			}
		})
	}
}
