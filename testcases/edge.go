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

// edgeCases use pointer positions outside the canvas, which are clamped.
var edgeCases = []Scenario{
	{
		Name:       "clamp_horizontal",
		Width:      48,
		Height:     32,
		StrokeSize: 4,
		Events:     stroke(pt(-100, 16), pt(200, 16)),
	},
	{
		Name:       "clamp_corner",
		Width:      48,
		Height:     32,
		StrokeSize: 6,
		Events:     stroke(pt(24, 16), pt(-5, -5)),
	},
	{
		Name:       "along_border",
		Width:      48,
		Height:     32,
		StrokeSize: 3,
		Events:     stroke(pt(0, 0), pt(48, 0), pt(48, 32), pt(0, 32), pt(0, 0)),
	},
	{
		Name:       "tiny_canvas",
		Width:      1,
		Height:     1,
		StrokeSize: 1,
		Events:     stroke(pt(0, 0), pt(1, 1)),
	},
}
