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
	"testing"

	"seehuhn.de/go/pdf/graphics"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Color != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("default color %v, want opaque black", s.Color)
	}
	if s.Width != 1 {
		t.Errorf("default width %g, want 1", s.Width)
	}
	if s.Cap() != graphics.LineCapRound {
		t.Errorf("cap %v, want round", s.Cap())
	}
	if s.Join() != graphics.LineJoinRound {
		t.Errorf("join %v, want round", s.Join())
	}
}

func TestStyleIsValue(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	s := DefaultStyle()
	t2 := s.WithColor(red).WithWidth(7)

	if s != DefaultStyle() {
		t.Errorf("With* modified the receiver: %+v", s)
	}
	if t2.Color != red || t2.Width != 7 {
		t.Errorf("got %+v", t2)
	}
}

func TestStyleWidth(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{3.5, 3.5},
		{0, 0},
		{-2, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tc := range cases {
		if got := NewStyle(color.Black, tc.in).Width; got != tc.want {
			t.Errorf("NewStyle(_, %g).Width = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestDeviceWidth(t *testing.T) {
	cases := []struct {
		width, density, want float64
	}{
		{1, 1, 1},
		{4, 2.5, 10},
		{0, 3, 1},
		{0.2, 2, 1},
	}
	for _, tc := range cases {
		s := NewStyle(color.Black, tc.width)
		if got := s.deviceWidth(tc.density); got != tc.want {
			t.Errorf("width %g at density %g: got %g, want %g",
				tc.width, tc.density, got, tc.want)
		}
	}
}

func TestStyleColorConversion(t *testing.T) {
	// premultiplied half-transparent white
	s := NewStyle(color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}, 1)
	want := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
	if s.Color != want {
		t.Errorf("got %v, want %v", s.Color, want)
	}
}
