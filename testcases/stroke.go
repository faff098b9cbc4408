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
	"image/color"

	"seehuhn.de/go/doodle"
)

var strokeCases = []Scenario{
	{
		Name:       "line",
		Width:      64,
		Height:     64,
		StrokeSize: 4,
		Events:     stroke(pt(10, 32), pt(54, 32)),
	},
	{
		Name:       "diagonal",
		Width:      64,
		Height:     64,
		StrokeSize: 3,
		Events:     stroke(pt(8, 8), pt(56, 50)),
	},
	{
		Name:       "polyline",
		Width:      64,
		Height:     64,
		StrokeSize: 6,
		Events:     stroke(pt(10, 50), pt(32, 14), pt(54, 50), pt(54, 58)),
	},
	{
		Name:       "zigzag",
		Width:      96,
		Height:     48,
		StrokeSize: 2,
		Events: stroke(pt(4, 40), pt(16, 8), pt(28, 40), pt(40, 8), pt(52, 40),
			pt(64, 8), pt(76, 40), pt(88, 8)),
	},
	{
		Name:       "hairline",
		Width:      32,
		Height:     32,
		StrokeSize: 0,
		Events:     stroke(pt(4, 4), pt(28, 20)),
	},
	{
		Name:       "density",
		Width:      64,
		Height:     64,
		StrokeSize: 2,
		Density:    3,
		Events:     stroke(pt(12, 12), pt(52, 52)),
	},
	{
		Name:       "tap",
		Width:      32,
		Height:     32,
		StrokeSize: 8,
		// a stroke needs at least one move to paint anything
		Events: []doodle.Event{
			{Phase: doodle.Down, Contacts: 1, X: 16, Y: 16},
			{Phase: doodle.Up, X: 16, Y: 16},
		},
		Blank: true,
	},
	{
		Name:       "dot",
		Width:      32,
		Height:     32,
		StrokeSize: 8,
		Events:     stroke(pt(16, 16), pt(16, 16)),
	},
	{
		Name:       "two_strokes",
		Width:      64,
		Height:     64,
		Ink:        color.NRGBA{R: 0x20, G: 0x40, B: 0xc0, A: 0xff},
		StrokeSize: 5,
		Events: append(
			stroke(pt(8, 16), pt(56, 16)),
			stroke(pt(8, 48), pt(56, 48))...),
	},
	{
		Name:       "translucent",
		Width:      64,
		Height:     64,
		Ink:        color.NRGBA{R: 0xff, A: 0x80},
		StrokeSize: 10,
		Events:     stroke(pt(8, 32), pt(56, 32), pt(32, 8), pt(32, 56)),
	},
}
