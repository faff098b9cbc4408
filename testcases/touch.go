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

import "seehuhn.de/go/doodle"

// touchCases check the single-pointer rules of the stroke tracker.
var touchCases = []Scenario{
	{
		Name:       "multi_touch",
		Width:      64,
		Height:     64,
		StrokeSize: 4,
		Events: []doodle.Event{
			{Phase: doodle.Down, Contacts: 2, X: 10, Y: 10},
			{Phase: doodle.Move, Contacts: 2, X: 30, Y: 30},
			{Phase: doodle.Move, Contacts: 2, X: 50, Y: 10},
			{Phase: doodle.Up, X: 50, Y: 10},
		},
		Blank: true,
	},
	{
		Name:       "move_without_down",
		Width:      64,
		Height:     64,
		StrokeSize: 4,
		Events: []doodle.Event{
			{Phase: doodle.Move, Contacts: 1, X: 10, Y: 10},
			{Phase: doodle.Move, Contacts: 1, X: 50, Y: 50},
		},
		Blank: true,
	},
	{
		Name:       "second_finger",
		Width:      64,
		Height:     64,
		StrokeSize: 4,
		// the second pointer neither restarts nor ends the stroke
		Events: []doodle.Event{
			{Phase: doodle.Down, Contacts: 1, X: 10, Y: 32},
			{Phase: doodle.Move, Contacts: 1, X: 30, Y: 32},
			{Phase: doodle.Down, Contacts: 2, X: 50, Y: 50},
			{Phase: doodle.Move, Contacts: 2, X: 54, Y: 32},
			{Phase: doodle.Up, X: 54, Y: 32},
		},
	},
	{
		Name:       "lift_and_move",
		Width:      64,
		Height:     64,
		StrokeSize: 4,
		Events: append(stroke(pt(10, 20), pt(54, 20)),
			doodle.Event{Phase: doodle.Move, Contacts: 1, X: 10, Y: 50}),
	},
}
