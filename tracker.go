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
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Phase identifies the kind of pointer event.
type Phase int

// These are the pointer event phases.
const (
	Down Phase = iota + 1
	Move
	Up
)

func (p Phase) String() string {
	switch p {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (p Phase) MarshalText() ([]byte, error) {
	switch p {
	case Down, Move, Up:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("invalid phase %d", int(p))
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "down":
		*p = Down
	case "move":
		*p = Move
	case "up":
		*p = Up
	default:
		return fmt.Errorf("invalid phase %q", text)
	}
	return nil
}

// Event is a pointer event in canvas pixel coordinates.
type Event struct {
	Phase Phase `json:"phase"`

	// Contacts is the number of pointers currently touching the surface.
	Contacts int `json:"contacts"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a straight piece of a stroke, from one sampled pointer
// position to the next.
type Segment struct {
	From, To vec.Vec2
}

// Tracker turns a stream of pointer events into segments.
// Only one stroke is tracked at a time, and a stroke starts only when
// exactly one pointer goes down.
//
// The zero value is an idle tracker.
type Tracker struct {
	last    vec.Vec2
	drawing bool
}

// Handle processes one event.  If the event extends the current stroke,
// the new segment is returned together with true.  Coordinates are clamped
// to bounds before use.
func (t *Tracker) Handle(ev Event, bounds rect.Rect) (Segment, bool) {
	p := clampPoint(vec.Vec2{X: ev.X, Y: ev.Y}, bounds)
	switch ev.Phase {
	case Down:
		if t.drawing || ev.Contacts != 1 {
			return Segment{}, false
		}
		t.last = p
		t.drawing = true
	case Move:
		if !t.drawing {
			return Segment{}, false
		}
		seg := Segment{From: t.last, To: p}
		t.last = p
		return seg, true
	case Up:
		t.drawing = false
	}
	return Segment{}, false
}

// Drawing reports whether a stroke is in progress.
func (t *Tracker) Drawing() bool {
	return t.drawing
}

// Reset abandons any stroke in progress.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// clampPoint moves p into the closed rectangle r.  NaN coordinates map to
// the lower-left corner.
func clampPoint(p vec.Vec2, r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: clamp(p.X, r.LLx, r.URx), Y: clamp(p.Y, r.LLy, r.URy)}
}

func clamp(x, lo, hi float64) float64 {
	if !(x > lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
