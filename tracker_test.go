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
	"encoding/json"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var testBounds = rect.Rect{URx: 100, URy: 50}

func TestTrackerSingleStroke(t *testing.T) {
	var tr Tracker
	events := []Event{
		{Phase: Down, Contacts: 1, X: 10, Y: 10},
		{Phase: Move, Contacts: 1, X: 20, Y: 10},
		{Phase: Move, Contacts: 1, X: 20, Y: 30},
		{Phase: Move, Contacts: 1, X: 5, Y: 30},
		{Phase: Up, Contacts: 0, X: 5, Y: 30},
	}
	var segs []Segment
	for _, ev := range events {
		if seg, ok := tr.Handle(ev, testBounds); ok {
			segs = append(segs, seg)
		}
	}
	want := []Segment{
		{vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 20, Y: 10}},
		{vec.Vec2{X: 20, Y: 10}, vec.Vec2{X: 20, Y: 30}},
		{vec.Vec2{X: 20, Y: 30}, vec.Vec2{X: 5, Y: 30}},
	}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segs), len(want))
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d: got %v, want %v", i, segs[i], want[i])
		}
		if i > 0 && segs[i].From != segs[i-1].To {
			t.Errorf("segment %d does not start where %d ended", i, i-1)
		}
	}
	if tr.Drawing() {
		t.Error("tracker still drawing after Up")
	}
}

func TestTrackerIgnoredEvents(t *testing.T) {
	cases := []struct {
		name   string
		events []Event
	}{
		{"multi-touch down", []Event{
			{Phase: Down, Contacts: 2, X: 1, Y: 1},
			{Phase: Move, Contacts: 2, X: 9, Y: 9},
		}},
		{"move while idle", []Event{
			{Phase: Move, Contacts: 1, X: 9, Y: 9},
		}},
		{"after up", []Event{
			{Phase: Down, Contacts: 1, X: 1, Y: 1},
			{Phase: Up, Contacts: 0, X: 1, Y: 1},
			{Phase: Move, Contacts: 1, X: 9, Y: 9},
		}},
		{"up while idle", []Event{
			{Phase: Up, Contacts: 0, X: 1, Y: 1},
			{Phase: Move, Contacts: 1, X: 9, Y: 9},
		}},
		{"unknown phase", []Event{
			{Phase: 0, Contacts: 1, X: 1, Y: 1},
			{Phase: Move, Contacts: 1, X: 9, Y: 9},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tr Tracker
			for _, ev := range tc.events {
				if seg, ok := tr.Handle(ev, testBounds); ok {
					t.Errorf("unexpected segment %v for %v", seg, ev)
				}
			}
		})
	}
}

func TestTrackerDownWhileDrawing(t *testing.T) {
	var tr Tracker
	tr.Handle(Event{Phase: Down, Contacts: 1, X: 1, Y: 1}, testBounds)
	tr.Handle(Event{Phase: Down, Contacts: 1, X: 40, Y: 40}, testBounds)
	seg, ok := tr.Handle(Event{Phase: Move, Contacts: 1, X: 2, Y: 2}, testBounds)
	if !ok {
		t.Fatal("stroke was interrupted by a second Down")
	}
	if seg.From != (vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("segment starts at %v, want (1,1)", seg.From)
	}
}

func TestTrackerSecondFingerDuringStroke(t *testing.T) {
	var tr Tracker
	tr.Handle(Event{Phase: Down, Contacts: 1, X: 1, Y: 1}, testBounds)
	tr.Handle(Event{Phase: Down, Contacts: 2, X: 60, Y: 40}, testBounds)
	if _, ok := tr.Handle(Event{Phase: Move, Contacts: 2, X: 3, Y: 3}, testBounds); !ok {
		t.Error("a second pointer must not end the stroke")
	}
}

func TestTrackerClamp(t *testing.T) {
	var tr Tracker
	tr.Handle(Event{Phase: Down, Contacts: 1, X: -5, Y: 70}, testBounds)
	seg, _ := tr.Handle(Event{Phase: Move, Contacts: 1, X: 1e9, Y: math.NaN()}, testBounds)
	if seg.From != (vec.Vec2{X: 0, Y: 50}) {
		t.Errorf("From = %v, want (0,50)", seg.From)
	}
	if seg.To != (vec.Vec2{X: 100, Y: 0}) {
		t.Errorf("To = %v, want (100,0)", seg.To)
	}
}

func TestTrackerReset(t *testing.T) {
	var tr Tracker
	tr.Handle(Event{Phase: Down, Contacts: 1, X: 1, Y: 1}, testBounds)
	tr.Reset()
	if _, ok := tr.Handle(Event{Phase: Move, Contacts: 1, X: 2, Y: 2}, testBounds); ok {
		t.Error("Reset did not abandon the stroke")
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{Down: "down", Move: "move", Up: "up", 9: "Phase(9)"} {
		if got := p.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(p), got, want)
		}
	}
}

func TestEventJSON(t *testing.T) {
	in := `[{"phase":"down","contacts":1,"x":1.5,"y":2},{"phase":"up","contacts":0,"x":3,"y":4}]`
	var events []Event
	if err := json.Unmarshal([]byte(in), &events); err != nil {
		t.Fatal(err)
	}
	want := []Event{
		{Phase: Down, Contacts: 1, X: 1.5, Y: 2},
		{Phase: Up, Contacts: 0, X: 3, Y: 4},
	}
	if len(events) != 2 || events[0] != want[0] || events[1] != want[1] {
		t.Fatalf("got %+v", events)
	}

	out, err := json.Marshal(events)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("got %s", out)
	}

	if err := json.Unmarshal([]byte(`{"phase":"hover"}`), new(Event)); err == nil {
		t.Error("unknown phase accepted")
	}
	if _, err := json.Marshal(Event{}); err == nil {
		t.Error("zero phase marshalled")
	}
}

func TestTrackerTwoSegments(t *testing.T) {
	var tr Tracker
	var segs []Segment
	for _, ev := range []Event{
		{Phase: Down, Contacts: 1, X: 10, Y: 10},
		{Phase: Move, Contacts: 1, X: 20, Y: 20},
		{Phase: Move, Contacts: 1, X: 30, Y: 10},
		{Phase: Up, X: 30, Y: 10},
	} {
		if seg, ok := tr.Handle(ev, testBounds); ok {
			segs = append(segs, seg)
		}
	}
	want := []Segment{
		{From: vec.Vec2{X: 10, Y: 10}, To: vec.Vec2{X: 20, Y: 20}},
		{From: vec.Vec2{X: 20, Y: 20}, To: vec.Vec2{X: 30, Y: 10}},
	}
	if len(segs) != 2 || segs[0] != want[0] || segs[1] != want[1] {
		t.Errorf("got %v, want %v", segs, want)
	}
}

func TestTrackerClampFarOutside(t *testing.T) {
	var tr Tracker
	tr.Handle(Event{Phase: Down, Contacts: 1, X: 50, Y: 25}, testBounds)
	seg, ok := tr.Handle(Event{Phase: Move, Contacts: 1, X: -50, Y: testBounds.URy + 999}, testBounds)
	if !ok {
		t.Fatal("clamped event was dropped")
	}
	if seg.To != (vec.Vec2{X: 0, Y: testBounds.URy}) {
		t.Errorf("got %v, want (0,%g)", seg.To, testBounds.URy)
	}
}
