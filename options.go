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
	"image"
	"image/color"
)

// Option configures a [Surface].
type Option func(*options)

type options struct {
	ink        color.Color
	strokeSize float64
	density    float64
	invalidate func(image.Rectangle)
}

func defaultOptions() options {
	return options{
		ink:        DefaultInkColor,
		strokeSize: DefaultStrokeSize,
		density:    1,
	}
}

// WithInkColor sets the initial ink color.  The default is opaque black.
func WithInkColor(c color.Color) Option {
	return func(o *options) {
		o.ink = c
	}
}

// WithStrokeSize sets the initial stroke width in device-independent
// units.  The default is 1.
func WithStrokeSize(w float64) Option {
	return func(o *options) {
		o.strokeSize = w
	}
}

// WithDensity sets the number of device pixels per device-independent
// unit.  Values which are not positive are ignored.
func WithDensity(d float64) Option {
	return func(o *options) {
		if d > 0 {
			o.density = d
		}
	}
}

// WithInvalidate registers a function which is called with the region of
// the canvas that needs to be redrawn, whenever pixels change.
//
// The function is called without any locks held, so it may call back into
// the surface.
func WithInvalidate(fn func(image.Rectangle)) Option {
	return func(o *options) {
		o.invalidate = fn
	}
}
