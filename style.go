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
	"image/color"
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// DefaultStrokeSize is the stroke width used when none is configured, in
// device-independent units.
const DefaultStrokeSize = 1.0

// DefaultInkColor is opaque black.
var DefaultInkColor = color.NRGBA{A: 0xff}

// Style describes how segments are painted.  Style is a value type.  The
// With* methods return modified copies and leave the receiver unchanged.
//
// The zero Style paints transparent hairlines; use [NewStyle] or
// [DefaultStyle] to get a useful value.
type Style struct {
	Color color.NRGBA

	// Width is the stroke width in device-independent units.  Negative
	// and NaN values are treated as zero.
	Width float64
}

// NewStyle returns a style with the given ink color and stroke width.
func NewStyle(c color.Color, width float64) Style {
	return Style{Color: toNRGBA(c), Width: sanitizeWidth(width)}
}

// DefaultStyle returns black ink at [DefaultStrokeSize].
func DefaultStyle() Style {
	return Style{Color: DefaultInkColor, Width: DefaultStrokeSize}
}

// WithColor returns a copy of s with the ink color replaced.
func (s Style) WithColor(c color.Color) Style {
	s.Color = toNRGBA(c)
	return s
}

// WithWidth returns a copy of s with the stroke width replaced.
func (s Style) WithWidth(w float64) Style {
	s.Width = sanitizeWidth(w)
	return s
}

// Cap returns the line cap style.  Strokes always use round caps, so that
// consecutive segments of one stroke join seamlessly.
func (s Style) Cap() graphics.LineCapStyle {
	return graphics.LineCapRound
}

// Join returns the line join style.
func (s Style) Join() graphics.LineJoinStyle {
	return graphics.LineJoinRound
}

// deviceWidth converts the stroke width to device pixels.  Widths below one
// pixel are drawn as one-pixel hairlines.
func (s Style) deviceWidth(density float64) float64 {
	return max(sanitizeWidth(s.Width)*density, 1)
}

func sanitizeWidth(w float64) float64 {
	if !(w > 0) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return DefaultInkColor
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
