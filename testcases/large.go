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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// largeCases contain segments whose bounding boxes exceed 65536 pixels,
// which makes the rasterizer switch to its active edge list.
var largeCases = []Scenario{
	{
		Name:       "large_diagonal",
		Width:      512,
		Height:     512,
		StrokeSize: 120,
		Events:     stroke(pt(64, 64), pt(448, 448)),
	},
	{
		Name:       "large_density",
		Width:      512,
		Height:     384,
		StrokeSize: 20,
		Density:    4,
		Events:     stroke(pt(40, 300), pt(256, 80), pt(470, 300)),
	},
	{
		Name:       "large_spiral",
		Width:      512,
		Height:     512,
		StrokeSize: 6,
		Events:     stroke(spiral(256, 256, 10, 240, 5, 180)...),
	},
	{
		Name:       "large_clipped",
		Width:      512,
		Height:     512,
		StrokeSize: 300,
		Events:     stroke(pt(-100, 256), pt(612, 256)),
	},
}

// spiral samples an Archimedean spiral with n points and the given number
// of turns.
func spiral(cx, cy, r0, r1 float64, turns float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		r := r0 + t*(r1-r0)
		sin, cos := math.Sincos(2 * math.Pi * turns * t)
		pts[i] = pt(cx+r*cos, cy+r*sin)
	}
	return pts
}
