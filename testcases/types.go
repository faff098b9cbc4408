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

// Package testcases contains scripted drawing sessions.  Each scenario is a
// sequence of pointer events replayed against a freshly sized surface.
package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/doodle"
)

// Scenario is a single scripted drawing session.
type Scenario struct {
	Name   string `json:"name"` // lowercase a-z, 0-9 and _ only
	Width  int    `json:"width"`
	Height int    `json:"height"`

	Ink        color.NRGBA `json:"ink"` // zero means the default ink
	StrokeSize float64     `json:"stroke_size"`
	Density    float64     `json:"density,omitempty"` // zero means 1

	Events []doodle.Event `json:"events"`

	// Blank is set if the session must not paint any pixels.
	Blank bool `json:"blank,omitempty"`
}

// Options returns the surface options for the scenario.
func (sc *Scenario) Options() []doodle.Option {
	ink := sc.Ink
	if ink == (color.NRGBA{}) {
		ink = doodle.DefaultInkColor
	}
	opts := []doodle.Option{
		doodle.WithInkColor(ink),
		doodle.WithStrokeSize(sc.StrokeSize),
	}
	if sc.Density > 0 {
		opts = append(opts, doodle.WithDensity(sc.Density))
	}
	return opts
}

// Replay runs the scenario on a new surface and returns it.  The extra
// options are applied after the scenario's own.
func (sc *Scenario) Replay(extra ...doodle.Option) (*doodle.Surface, error) {
	s := doodle.NewSurface(append(sc.Options(), extra...)...)
	if err := s.Resize(sc.Width, sc.Height); err != nil {
		return nil, err
	}
	for _, ev := range sc.Events {
		s.HandleEvent(ev)
	}
	return s, nil
}

// Segments returns the segments which the scenario draws, in order.
func (sc *Scenario) Segments() []doodle.Segment {
	var tr doodle.Tracker
	bounds := canvasRect(sc.Width, sc.Height)
	var res []doodle.Segment
	for _, ev := range sc.Events {
		if seg, ok := tr.Handle(ev, bounds); ok {
			res = append(res, seg)
		}
	}
	return res
}

func canvasRect(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

// stroke returns the events of a single-pointer stroke through pts.
func stroke(pts ...vec.Vec2) []doodle.Event {
	res := make([]doodle.Event, 0, len(pts)+1)
	for i, p := range pts {
		phase := doodle.Move
		if i == 0 {
			phase = doodle.Down
		}
		res = append(res, doodle.Event{Phase: phase, Contacts: 1, X: p.X, Y: p.Y})
	}
	last := pts[len(pts)-1]
	return append(res, doodle.Event{Phase: doodle.Up, X: last.X, Y: last.Y})
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
